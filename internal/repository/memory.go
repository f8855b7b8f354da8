package repository

import (
	"context"
	"sync"
	"time"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
)

// MemoryEventRepo keeps events in process memory, newest first.
type MemoryEventRepo struct {
	mu     sync.RWMutex
	events []*domain.Event
	byID   map[string]*domain.Event
	now    func() time.Time
}

func NewMemoryEventRepo() *MemoryEventRepo {
	return &MemoryEventRepo{
		byID: make(map[string]*domain.Event),
		now:  time.Now,
	}
}

func (r *MemoryEventRepo) Merge(_ context.Context, e *domain.Event) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; ok {
		return false, nil
	}
	r.prepend(e)

	return true, nil
}

func (r *MemoryEventRepo) Create(_ context.Context, e *domain.Event) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; ok {
		return false, nil
	}
	key := e.Key()
	for _, stored := range r.events {
		if stored.Key() == key {
			return false, nil
		}
	}
	r.prepend(e)

	return true, nil
}

// prepend must be called with mu held.
func (r *MemoryEventRepo) prepend(e *domain.Event) {
	stored := *e
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}

	r.events = append([]*domain.Event{&stored}, r.events...)
	r.byID[stored.ID] = &stored
}

func (r *MemoryEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	res := *e

	return &res, nil
}

func (r *MemoryEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Event, 0, len(r.events))
	for _, e := range r.events {
		cp := *e
		res = append(res, &cp)
	}

	return res, nil
}

func (r *MemoryEventRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.events), nil
}
