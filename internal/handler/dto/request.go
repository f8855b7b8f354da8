package dto

import "github.com/anderssondelao/eventos-locales-app/internal/domain"

type EventFormRequest struct {
	Title       string `json:"title"`
	Place       string `json:"place"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

type ListEventsQuery struct {
	Query    string `form:"q"`
	Category string `form:"category"`
}

func (r EventFormRequest) ToForm() *domain.EventForm {
	return &domain.EventForm{
		Title:       r.Title,
		Place:       r.Place,
		Description: r.Description,
		Date:        r.Date,
		Kind:        domain.EventKind(r.Kind),
		Price:       r.Price,
		Image:       r.Image,
		Category:    domain.Category(r.Category),
	}
}
