package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"github.com/anderssondelao/eventos-locales-app/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// maxPayloadBytes bounds a delivered navigation payload.
const maxPayloadBytes = 64 << 10

type EventSvc interface {
	Submit(ctx context.Context, form *domain.EventForm) (*domain.Event, error)
	Deliver(ctx context.Context, payload []byte) (domain.MergeResult, error)
	Check(form domain.EventForm) map[string]domain.FieldStatus
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	Categories() []domain.Category
}

type Handler struct {
	eventService EventSvc
}

func NewHandler(eventService EventSvc) *Handler {
	return &Handler{
		eventService: eventService,
	}
}

// Form

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Submit(c.Request.Context(), req.ToForm())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) CheckEvent(c *ginext.Context) {
	var req dto.EventFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.CheckResponse{
		Fields: h.eventService.Check(*req.ToForm()),
	})
}

// Navigation payloads

func (h *Handler) DeliverEvent(c *ginext.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes)
	payload, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read body"})
		return
	}

	result, err := h.eventService.Deliver(c.Request.Context(), payload)
	if err != nil && !errors.Is(err, domain.ErrPayloadParse) {
		h.handleError(c, err)
		return
	}
	if err != nil {
		// dropped payloads are not the caller's failure
		c.Set("error", err.Error())
	}

	c.JSON(http.StatusOK, dto.DeliverResponse{Status: string(result)})
}

// Listing

func (h *Handler) ListEvents(c *ginext.Context) {
	var q dto.ListEventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	events, err := h.eventService.List(c.Request.Context(), domain.EventFilter{
		Query:    q.Query,
		Category: domain.Category(q.Category),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListCategories(c *ginext.Context) {
	c.JSON(http.StatusOK, h.eventService.Categories())
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var fieldErrs domain.FieldErrors
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateEvent):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:  domain.ErrValidation.Error(),
			Fields: fieldErrs,
		})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
