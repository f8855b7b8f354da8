package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"github.com/anderssondelao/eventos-locales-app/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo      ports.EventRepo
	announcer ports.EventAnnouncer
	metrics   ports.EventMetrics
	validator *FormValidator
	logger    logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	announcer ports.EventAnnouncer,
	metrics ports.EventMetrics,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:      repo,
		announcer: announcer,
		metrics:   metrics,
		validator: NewFormValidator(),
		logger:    logger,
	}
}

// Submit validates the form and pushes the new event through the same decode
// path as Deliver. The repository rejects it when an event with the same
// title, place, description and date exists. The form is cleared on success only.
func (s *EventService) Submit(ctx context.Context, form *domain.EventForm) (*domain.Event, error) {
	form.Normalize()
	if errs := s.validator.Validate(form); errs != nil {
		return nil, errs
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Place:       form.Place,
		Description: form.Description,
		Date:        form.Date,
		Kind:        form.Kind,
		Price:       form.Price,
		Image:       form.Image,
		Category:    form.Category,
		CreatedAt:   time.Now().UTC(),
	}
	if event.Kind == domain.EventKindFree {
		event.Price = ""
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}

	result, err := s.deliver(ctx, payload, s.repo.Create)
	if err != nil {
		return nil, fmt.Errorf("deliver event: %w", err)
	}
	if result != domain.MergeAdded {
		return nil, domain.ErrDuplicateEvent
	}

	s.metrics.EventCreated()
	form.Reset()

	return event, nil
}

// Deliver merges one serialized event into the repository. Delivering the
// same payload again is a no-op. Unparseable payloads are logged and dropped.
func (s *EventService) Deliver(ctx context.Context, payload []byte) (domain.MergeResult, error) {
	return s.deliver(ctx, payload, s.repo.Merge)
}

type storeFunc func(ctx context.Context, e *domain.Event) (bool, error)

func (s *EventService) deliver(ctx context.Context, payload []byte, store storeFunc) (domain.MergeResult, error) {
	event, err := decodeEvent(payload)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "event payload dropped",
			logger.String("error", err.Error()),
			logger.Int("size", len(payload)),
		)
		s.metrics.PayloadDelivered(domain.MergeIgnored)
		return domain.MergeIgnored, err
	}

	added, err := store(ctx, event)
	if err != nil {
		return domain.MergeIgnored, fmt.Errorf("merge event: %w", err)
	}
	if !added {
		s.logger.LogAttrs(ctx, logger.DebugLevel, "event already listed",
			logger.String("event_id", event.ID),
		)
		s.metrics.PayloadDelivered(domain.MergeDuplicate)
		return domain.MergeDuplicate, nil
	}

	s.metrics.PayloadDelivered(domain.MergeAdded)
	s.announcer.AnnounceEvent(ctx, event)

	return domain.MergeAdded, nil
}

// Check reports the inline state of every field without submitting.
func (s *EventService) Check(form domain.EventForm) map[string]domain.FieldStatus {
	form.Normalize()
	errs := s.validator.Validate(&form)

	res := make(map[string]domain.FieldStatus)
	for field, value := range form.Values() {
		msg := errs[field]
		res[field] = domain.FieldStatus{
			State: domain.StateOf(value, msg),
			Error: msg,
		}
	}

	return res
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	res := FilterEvents(events, filter)
	s.metrics.EventsListed(len(res))

	return res, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Categories() []domain.Category {
	res := make([]domain.Category, len(domain.Categories))
	copy(res, domain.Categories)
	return res
}

// decodeEvent accepts a JSON object, the object serialized as a JSON string,
// or an array whose first element is either of those. Each wrapper is
// unwrapped at most once.
func decodeEvent(payload []byte) (*domain.Event, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrPayloadParse)
	}

	if payload[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(payload, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPayloadParse, err)
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("%w: empty payload list", domain.ErrPayloadParse)
		}
		payload = bytes.TrimSpace(items[0])
	}

	if len(payload) > 0 && payload[0] == '"' {
		var text string
		if err := json.Unmarshal(payload, &text); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrPayloadParse, err)
		}
		payload = bytes.TrimSpace([]byte(text))
		if len(payload) == 0 {
			return nil, fmt.Errorf("%w: empty payload", domain.ErrPayloadParse)
		}
	}

	var e domain.Event
	if err := json.Unmarshal(payload, &e); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("%w: malformed json at offset %d", domain.ErrPayloadParse, syntaxErr.Offset)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPayloadParse, err)
	}
	if e.ID == "" {
		return nil, fmt.Errorf("%w: missing id", domain.ErrPayloadParse)
	}

	return &e, nil
}
