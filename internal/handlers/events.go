package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"eventpass/internal/models"
	"eventpass/internal/services"

	"github.com/go-chi/chi/v5"
)

// EventHandler handles the event catalog endpoints
type EventHandler struct {
	eventService  services.EventServiceInterface
	ticketService services.TicketServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService services.EventServiceInterface, ticketService services.TicketServiceInterface) *EventHandler {
	return &EventHandler{
		eventService:  eventService,
		ticketService: ticketService,
	}
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.eventService.CreateEvent(&req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// ListEvents handles GET /api/events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if events == nil {
		events = []*models.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// GetEvent handles GET /api/events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// EventTickets handles GET /api/events/{id}/tickets
func (h *EventHandler) EventTickets(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	// 404 for an event that was never created
	if _, err := h.eventService.GetEvent(id); err != nil {
		writeServiceError(w, err)
		return
	}

	tickets, err := h.ticketService.ListTicketsByEvent(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

// eventIDParam parses the {id} URL parameter, writing a 400 on failure
func eventIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return 0, false
	}
	return id, true
}
