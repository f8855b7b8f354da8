package domain

import "time"

type EventKind string

const (
	EventKindFree EventKind = "free"
	EventKindPaid EventKind = "paid"
)

type Category string

const (
	CategoryMusic   Category = "musica"
	CategorySport   Category = "deporte"
	CategoryArt     Category = "arte"
	CategoryFood    Category = "gastronomia"
	CategoryCulture Category = "cultura"
	CategoryOther   Category = "otro"
)

var Categories = []Category{
	CategoryMusic,
	CategorySport,
	CategoryArt,
	CategoryFood,
	CategoryCulture,
	CategoryOther,
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Place       string    `json:"place"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Kind        EventKind `json:"kind"`
	Price       string    `json:"price,omitempty"`
	Image       string    `json:"image"`
	Category    Category  `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DuplicateKey is the tuple two submissions must share to count as the same event.
// Price, image and category are not part of it.
type DuplicateKey struct {
	Title       string
	Place       string
	Description string
	Date        string
}

func (e *Event) Key() DuplicateKey {
	return DuplicateKey{
		Title:       e.Title,
		Place:       e.Place,
		Description: e.Description,
		Date:        e.Date,
	}
}

type EventFilter struct {
	Query    string
	Category Category
}

type MergeResult string

const (
	MergeAdded     MergeResult = "added"
	MergeDuplicate MergeResult = "duplicate"
	MergeIgnored   MergeResult = "ignored"
)
