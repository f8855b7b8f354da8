package domain

import "strings"

// EventForm is the state of the "create event" form between keystrokes.
type EventForm struct {
	Title       string    `json:"title"       validate:"required"`
	Place       string    `json:"place"       validate:"required"`
	Description string    `json:"description" validate:"required"`
	Date        string    `json:"date"        validate:"required"`
	Kind        EventKind `json:"kind"        validate:"required,oneof=free paid"`
	Price       string    `json:"price"       validate:"required_if=Kind paid"`
	Image       string    `json:"image"       validate:"required"`
	Category    Category  `json:"category"    validate:"required,category"`
}

func NewEventForm() *EventForm {
	return &EventForm{Kind: EventKindFree}
}

func (f *EventForm) ToggleKind() {
	if f.Kind == EventKindPaid {
		f.Kind = EventKindFree
		return
	}
	f.Kind = EventKindPaid
}

// Normalize trims every text field; a blank kind falls back to free.
func (f *EventForm) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Place = strings.TrimSpace(f.Place)
	f.Description = strings.TrimSpace(f.Description)
	f.Date = strings.TrimSpace(f.Date)
	f.Price = strings.TrimSpace(f.Price)
	f.Image = strings.TrimSpace(f.Image)
	f.Category = Category(strings.TrimSpace(string(f.Category)))
	if strings.TrimSpace(string(f.Kind)) == "" {
		f.Kind = EventKindFree
	}
}

func (f *EventForm) Reset() {
	*f = EventForm{Kind: EventKindFree}
}

// Values returns the current text of every field keyed by JSON name.
func (f *EventForm) Values() map[string]string {
	return map[string]string{
		"title":       f.Title,
		"place":       f.Place,
		"description": f.Description,
		"date":        f.Date,
		"kind":        string(f.Kind),
		"price":       f.Price,
		"image":       f.Image,
		"category":    string(f.Category),
	}
}

type FieldState string

const (
	FieldStateEmpty  FieldState = "empty"
	FieldStateFilled FieldState = "filled"
	FieldStateError  FieldState = "error"
)

// StateOf picks the inline style of a field. An error wins over content.
func StateOf(value, errMsg string) FieldState {
	switch {
	case errMsg != "":
		return FieldStateError
	case strings.TrimSpace(value) != "":
		return FieldStateFilled
	default:
		return FieldStateEmpty
	}
}

type FieldStatus struct {
	State FieldState `json:"state"`
	Error string     `json:"error,omitempty"`
}

func IsCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
