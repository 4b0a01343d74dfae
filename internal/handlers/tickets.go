package handlers

import (
	"encoding/json"
	"net/http"

	"eventpass/internal/models"
	"eventpass/internal/services"

	"github.com/go-chi/chi/v5"
)

// TicketHandler handles the ticket ledger endpoints
type TicketHandler struct {
	ticketService services.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService services.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// batchResultResponse is the JSON shape of one batch entry's outcome
type batchResultResponse struct {
	Ticket *models.Ticket `json:"ticket,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// IssueTicket handles POST /api/tickets
func (h *TicketHandler) IssueTicket(w http.ResponseWriter, r *http.Request) {
	var req models.TicketIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ticket, err := h.ticketService.IssueTicket(req.EventID, req.CustomerName, req.CustomerEmail)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ticket)
}

// IssueBatch handles POST /api/tickets/batch
func (h *TicketHandler) IssueBatch(w http.ResponseWriter, r *http.Request) {
	var req models.TicketBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.EventID <= 0 {
		writeError(w, http.StatusBadRequest, "event id is required")
		return
	}
	if len(req.Entries) == 0 {
		writeError(w, http.StatusBadRequest, "at least one entry is required")
		return
	}

	results, err := h.ticketService.IssueBatch(req.EventID, req.Entries)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// One response per entry, in input order
	response := make([]batchResultResponse, len(results))
	for i, res := range results {
		response[i].Ticket = res.Ticket
		if res.Err != nil {
			response[i].Error = res.Err.Error()
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.ticketService.ListTickets()
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if tickets == nil {
		tickets = []*models.Ticket{}
	}
	writeJSON(w, http.StatusOK, tickets)
}

// GetTicket handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ticket, err := h.ticketService.GetTicket(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}
