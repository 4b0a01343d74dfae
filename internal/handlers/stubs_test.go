package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"eventpass/internal/models"
	"eventpass/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Function-backed stubs so each test supplies only the calls it expects.
// A call with no function set panics, which fails the test loudly.

type stubEventService struct {
	createEvent func(req *models.EventCreateRequest) (*models.Event, error)
	getEvent    func(id int64) (*models.Event, error)
	listEvents  func() ([]*models.Event, error)
}

func (s *stubEventService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	return s.createEvent(req)
}

func (s *stubEventService) GetEvent(id int64) (*models.Event, error) {
	return s.getEvent(id)
}

func (s *stubEventService) ListEvents() ([]*models.Event, error) {
	return s.listEvents()
}

type stubTicketService struct {
	issueTicket        func(eventID int64, customerName, customerEmail string) (*models.Ticket, error)
	issueBatch         func(eventID int64, entries []models.BatchEntry) ([]services.BatchResult, error)
	getTicket          func(id string) (*models.Ticket, error)
	listTickets        func() ([]*models.Ticket, error)
	listTicketsByEvent func(eventID int64) ([]*models.Ticket, error)
}

func (s *stubTicketService) IssueTicket(eventID int64, customerName, customerEmail string) (*models.Ticket, error) {
	return s.issueTicket(eventID, customerName, customerEmail)
}

func (s *stubTicketService) IssueBatch(eventID int64, entries []models.BatchEntry) ([]services.BatchResult, error) {
	return s.issueBatch(eventID, entries)
}

func (s *stubTicketService) GetTicket(id string) (*models.Ticket, error) {
	return s.getTicket(id)
}

func (s *stubTicketService) ListTickets() ([]*models.Ticket, error) {
	return s.listTickets()
}

func (s *stubTicketService) ListTicketsByEvent(eventID int64) ([]*models.Ticket, error) {
	return s.listTicketsByEvent(eventID)
}

type stubVerificationService struct {
	verify func(ticketID string) (*models.VerificationResult, error)
}

func (s *stubVerificationService) Verify(ticketID string) (*models.VerificationResult, error) {
	return s.verify(ticketID)
}

type stubStatsService struct {
	stats        func() (*models.Stats, error)
	statsByEvent func() ([]*models.EventStats, error)
}

func (s *stubStatsService) Stats() (*models.Stats, error) {
	return s.stats()
}

func (s *stubStatsService) StatsByEvent() ([]*models.EventStats, error) {
	return s.statsByEvent()
}

// serveJSON routes a request through a chi router so URL params resolve
func serveJSON(t *testing.T, register func(chi.Router), method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router := chi.NewRouter()
	register(router)
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[errorResponse](t, rec).Error
}
