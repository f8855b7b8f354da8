package ports

import (
	"context"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
)

type EventRepo interface {
	// Merge prepends e unless an event with the same ID is already stored.
	Merge(ctx context.Context, e *domain.Event) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List returns every event, newest first.
	List(ctx context.Context) ([]*domain.Event, error)
	// Create stores e unless an event with the same ID or the same duplicate
	// key is already stored. Both checks and the insert happen atomically.
	Create(ctx context.Context, e *domain.Event) (bool, error)
	Count(ctx context.Context) (int, error)
}
