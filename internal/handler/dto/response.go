package dto

import (
	"time"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Place       string `json:"place"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Price       string `json:"price,omitempty"`
	Image       string `json:"image"`
	Category    string `json:"category,omitempty"`
	Label       string `json:"label"`
	CreatedAt   string `json:"created_at"`
}

type DeliverResponse struct {
	Status string `json:"status"`
}

type CheckResponse struct {
	Fields map[string]domain.FieldStatus `json:"fields"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Place:       e.Place,
		Description: e.Description,
		Date:        e.Date,
		Kind:        string(e.Kind),
		Price:       e.Price,
		Image:       e.Image,
		Category:    string(e.Category),
		Label:       PriceLabel(e),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

// PriceLabel is the badge text shown on an event card.
func PriceLabel(e *domain.Event) string {
	if e.Kind == domain.EventKindPaid {
		return "PAGO - $" + e.Price
	}
	return "GRATIS"
}
