package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
	"github.com/anderssondelao/eventos-locales-app/internal/handler/dto"
	hmocks "github.com/anderssondelao/eventos-locales-app/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)

	h := NewHandler(eventSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.POST("/events/check", h.CheckEvent)
		api.POST("/events/deliver", h.DeliverEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/categories", h.ListCategories)
	}

	return eventSvc, r
}

func doJSON(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Crear Evento ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, r := setupRouter(t)

	event := &domain.Event{
		ID:          "2b1c6f0e-7a55-4a4e-9d8e-0f3a2c1b9e11",
		Title:       "Concierto",
		Place:       "Teatro",
		Description: "Rock",
		Date:        "20/11/2026",
		Kind:        domain.EventKindPaid,
		Price:       "1500",
		Image:       "https://example.com/c.jpg",
		Category:    domain.CategoryMusic,
		CreatedAt:   time.Now(),
	}

	eventSvc.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(f *domain.EventForm) bool {
		return f.Title == "Concierto" && f.Kind == domain.EventKindPaid && f.Price == "1500"
	})).Return(event, nil)

	body, _ := json.Marshal(dto.EventFormRequest{
		Title:       "Concierto",
		Place:       "Teatro",
		Description: "Rock",
		Date:        "20/11/2026",
		Kind:        "paid",
		Price:       "1500",
		Image:       "https://example.com/c.jpg",
		Category:    "musica",
	})

	w := doJSON(r, http.MethodPost, "/api/events", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concierto", resp.Title)
	assert.Equal(t, "PAGO - $1500", resp.Label)
}

func TestHandler_CreateEvent_MalformedBody(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/events", []byte(`{"title":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_ValidationFields(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.FieldErrors{
		"title": "title is required",
		"price": "price is required",
	})

	w := doJSON(r, http.MethodPost, "/api/events", []byte(`{"kind":"paid"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation error", resp.Error)
	assert.Equal(t, "title is required", resp.Fields["title"])
	assert.Equal(t, "price is required", resp.Fields["price"])
}

func TestHandler_CreateEvent_Duplicate(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateEvent)

	w := doJSON(r, http.MethodPost, "/api/events", []byte(`{"title":"Feria"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckEvent(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Check(mock.MatchedBy(func(f domain.EventForm) bool {
		return f.Title == "Feria"
	})).Return(map[string]domain.FieldStatus{
		"title": {State: domain.FieldStateFilled},
		"place": {State: domain.FieldStateError, Error: "place is required"},
	})

	w := doJSON(r, http.MethodPost, "/api/events/check", []byte(`{"title":"Feria"}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.FieldStateFilled, resp.Fields["title"].State)
	assert.Equal(t, "place is required", resp.Fields["place"].Error)
}

// --- Navigation payloads ---

func TestHandler_DeliverEvent(t *testing.T) {
	tests := []struct {
		name   string
		result domain.MergeResult
		err    error
		code   int
		status string
	}{
		{name: "added", result: domain.MergeAdded, code: http.StatusOK, status: "added"},
		{name: "duplicate", result: domain.MergeDuplicate, code: http.StatusOK, status: "duplicate"},
		{
			name:   "malformed is dropped",
			result: domain.MergeIgnored,
			err:    fmt.Errorf("%w: missing id", domain.ErrPayloadParse),
			code:   http.StatusOK,
			status: "ignored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventSvc, r := setupRouter(t)

			payload := []byte(`{"id":"e1","title":"Feria"}`)
			eventSvc.EXPECT().Deliver(mock.Anything, payload).Return(tt.result, tt.err)

			w := doJSON(r, http.MethodPost, "/api/events/deliver", payload)

			assert.Equal(t, tt.code, w.Code)

			var resp dto.DeliverResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.status, resp.Status)
		})
	}
}

func TestHandler_DeliverEvent_RepoFailure(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Deliver(mock.Anything, mock.Anything).Return(domain.MergeIgnored, assert.AnError)

	w := doJSON(r, http.MethodPost, "/api/events/deliver", []byte(`{"id":"e1"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_DeliverEvent_TooLarge(t *testing.T) {
	_, r := setupRouter(t)

	body := append([]byte(`{"id":"e1","description":"`), bytes.Repeat([]byte("a"), maxPayloadBytes)...)
	body = append(body, []byte(`"}`)...)

	w := doJSON(r, http.MethodPost, "/api/events/deliver", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

// --- Inicio ---

func TestHandler_ListEvents_PassesFilter(t *testing.T) {
	eventSvc, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "1", Title: "Feria", Place: "Plaza", Kind: domain.EventKindFree, Category: domain.CategoryCulture, CreatedAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything, domain.EventFilter{
		Query:    "pla",
		Category: domain.CategoryCulture,
	}).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?q=pla&category=cultura", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "GRATIS", resp[0].Label)
}

func TestHandler_ListEvents_Empty(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, domain.EventFilter{}).Return(nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListEvents_UnknownCategory(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, domain.EventFilter{Category: "cine"}).Return([]*domain.Event{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events?category=cine", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Get(mock.Anything, "e1").Return(&domain.Event{ID: "e1", Title: "Feria", CreatedAt: time.Now()}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/e1", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "e1", resp.ID)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListCategories(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Categories().Return([]domain.Category{domain.CategoryMusic, domain.CategoryOther})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["musica","otro"]`, w.Body.String())
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, r := setupRouter(t)

	eventSvc.EXPECT().Get(mock.Anything, "e1").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/e1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
