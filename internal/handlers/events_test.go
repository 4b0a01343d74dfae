package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"eventpass/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_CreateEvent(t *testing.T) {
	t.Run("creates event", func(t *testing.T) {
		eventService := &stubEventService{
			createEvent: func(req *models.EventCreateRequest) (*models.Event, error) {
				return &models.Event{
					ID:       1,
					Name:     req.Name,
					Date:     req.Date,
					Location: req.Location,
					Price:    req.Price,
					Currency: req.Currency,
					FeeModel: req.FeeModel,
				}, nil
			},
		}
		handler := NewEventHandler(eventService, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Post("/api/events", handler.CreateEvent)
		}, http.MethodPost, "/api/events", models.EventCreateRequest{
			Name:     "Tech Conference",
			Date:     "2026-10-01",
			Location: "Nairobi",
			Price:    29900,
			Currency: "USD",
			FeeModel: models.FeePassOn,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		event := decodeBody[models.Event](t, rec)
		assert.Equal(t, int64(1), event.ID)
		assert.Equal(t, "Tech Conference", event.Name)
		assert.Equal(t, 29900, event.Price)
	})

	t.Run("invalid input is a 400", func(t *testing.T) {
		eventService := &stubEventService{
			createEvent: func(req *models.EventCreateRequest) (*models.Event, error) {
				return nil, fmt.Errorf("%w: event name is required", models.ErrInvalidInput)
			},
		}
		handler := NewEventHandler(eventService, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Post("/api/events", handler.CreateEvent)
		}, http.MethodPost, "/api/events", models.EventCreateRequest{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorMessage(t, rec), "event name is required")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		handler := NewEventHandler(&stubEventService{}, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Post("/api/events", handler.CreateEvent)
		}, http.MethodPost, "/api/events", "not-an-object")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventHandler_ListEvents(t *testing.T) {
	t.Run("empty catalog returns an empty array", func(t *testing.T) {
		eventService := &stubEventService{
			listEvents: func() ([]*models.Event, error) { return nil, nil },
		}
		handler := NewEventHandler(eventService, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Get("/api/events", handler.ListEvents)
		}, http.MethodGet, "/api/events", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("returns events", func(t *testing.T) {
		eventService := &stubEventService{
			listEvents: func() ([]*models.Event, error) {
				return []*models.Event{{ID: 1, Name: "One"}, {ID: 2, Name: "Two"}}, nil
			},
		}
		handler := NewEventHandler(eventService, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Get("/api/events", handler.ListEvents)
		}, http.MethodGet, "/api/events", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		events := decodeBody[[]*models.Event](t, rec)
		require.Len(t, events, 2)
		assert.Equal(t, "One", events[0].Name)
	})
}

func TestEventHandler_GetEvent(t *testing.T) {
	t.Run("returns event", func(t *testing.T) {
		eventService := &stubEventService{
			getEvent: func(id int64) (*models.Event, error) {
				return &models.Event{ID: id, Name: "Tech Conference"}, nil
			},
		}
		handler := NewEventHandler(eventService, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Get("/api/events/{id}", handler.GetEvent)
		}, http.MethodGet, "/api/events/7", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		event := decodeBody[models.Event](t, rec)
		assert.Equal(t, int64(7), event.ID)
	})

	t.Run("unknown event is a 404", func(t *testing.T) {
		eventService := &stubEventService{
			getEvent: func(id int64) (*models.Event, error) {
				return nil, models.ErrEventNotFound
			},
		}
		handler := NewEventHandler(eventService, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Get("/api/events/{id}", handler.GetEvent)
		}, http.MethodGet, "/api/events/999", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id is a 400", func(t *testing.T) {
		handler := NewEventHandler(&stubEventService{}, nil)

		rec := serveJSON(t, func(r chi.Router) {
			r.Get("/api/events/{id}", handler.GetEvent)
		}, http.MethodGet, "/api/events/abc", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid event id", errorMessage(t, rec))
	})
}

func TestEventHandler_EventTickets(t *testing.T) {
	t.Run("returns the event's tickets", func(t *testing.T) {
		eventService := &stubEventService{
			getEvent: func(id int64) (*models.Event, error) {
				return &models.Event{ID: id}, nil
			},
		}
		ticketService := &stubTicketService{
			listTicketsByEvent: func(eventID int64) ([]*models.Ticket, error) {
				return []*models.Ticket{{ID: "tkt_a", EventID: eventID}}, nil
			},
		}
		handler := NewEventHandler(eventService, ticketService)

		rec := serveJSON(t, func(r chi.Router) {
			r.Get("/api/events/{id}/tickets", handler.EventTickets)
		}, http.MethodGet, "/api/events/3/tickets", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		tickets := decodeBody[[]*models.Ticket](t, rec)
		require.Len(t, tickets, 1)
		assert.Equal(t, int64(3), tickets[0].EventID)
	})

	t.Run("unknown event is a 404, not an empty list", func(t *testing.T) {
		eventService := &stubEventService{
			getEvent: func(id int64) (*models.Event, error) {
				return nil, models.ErrEventNotFound
			},
		}
		handler := NewEventHandler(eventService, &stubTicketService{})

		rec := serveJSON(t, func(r chi.Router) {
			r.Get("/api/events/{id}/tickets", handler.EventTickets)
		}, http.MethodGet, "/api/events/999/tickets", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
