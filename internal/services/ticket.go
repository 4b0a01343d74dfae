package services

import (
	"errors"
	"fmt"
	"time"

	"eventpass/internal/fees"
	"eventpass/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// TicketRepository interface for ticket ledger data operations
type TicketRepository interface {
	Create(ticket *models.Ticket) error
	GetByID(id string) (*models.Ticket, error)
	List() ([]*models.Ticket, error)
	ListByEvent(eventID int64) ([]*models.Ticket, error)
}

const (
	// maxIDAttempts bounds the generate-and-check retry loop for ticket ids
	maxIDAttempts = 5
	// batchConcurrency caps in-flight issuances per batch call
	batchConcurrency = 8
)

// TicketService owns ticket issuance: id generation, fee snapshotting and
// the atomic append to the ledger
type TicketService struct {
	eventRepo  EventRepository
	ticketRepo TicketRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(eventRepo EventRepository, ticketRepo TicketRepository) *TicketService {
	return &TicketService{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
	}
}

// BatchResult is the outcome for one entry of a batch issuance. Exactly one
// of Ticket and Err is set.
type BatchResult struct {
	Ticket *models.Ticket
	Err    error
}

// IssueTicket issues a single ticket against an event. The event's current
// price, currency and fee model are read once and the computed fee split is
// frozen onto the ticket.
func (s *TicketService) IssueTicket(eventID int64, customerName, customerEmail string) (*models.Ticket, error) {
	if err := models.ValidateCustomer(customerName, customerEmail); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	breakdown := fees.Compute(event.Price, event.Currency, event.FeeModel)

	ticket := &models.Ticket{
		EventID:       event.ID,
		EventName:     event.Name,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Status:        models.TicketUnused,
		CreatedAt:     time.Now().UTC(),
		PricePaid:     breakdown.PricePaid,
		PlatformFee:   breakdown.PlatformFee,
		NetRevenue:    breakdown.NetRevenue,
	}

	// Generate-and-check: a collision surfaces as a duplicate key on insert,
	// in which case we retry with a fresh id rather than touching the
	// existing ticket
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		ticket.ID = newTicketID()
		err = s.ticketRepo.Create(ticket)
		if err == nil {
			return ticket, nil
		}
		if !errors.Is(err, models.ErrDuplicateTicketID) {
			return nil, fmt.Errorf("failed to issue ticket: %w", err)
		}
	}

	return nil, fmt.Errorf("failed to issue ticket after %d id attempts: %w", maxIDAttempts, err)
}

// IssueBatch issues tickets for several customers against one event. Entries
// are processed in parallel but results keep the input order, and one bad
// entry does not stop the others.
func (s *TicketService) IssueBatch(eventID int64, entries []models.BatchEntry) ([]BatchResult, error) {
	// Fail the whole batch only when the event itself is unknown
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(entries))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			ticket, err := s.IssueTicket(eventID, entry.Name, entry.Email)
			// Each entry fails independently; record the error in its slot
			results[i] = BatchResult{Ticket: ticket, Err: err}
			return nil
		})
	}
	_ = g.Wait() // per-entry errors live in results, never in the group

	return results, nil
}

// GetTicket retrieves a ticket by ID
func (s *TicketService) GetTicket(id string) (*models.Ticket, error) {
	return s.ticketRepo.GetByID(id)
}

// ListTickets retrieves all tickets in issuance order
func (s *TicketService) ListTickets() ([]*models.Ticket, error) {
	return s.ticketRepo.List()
}

// ListTicketsByEvent retrieves all tickets issued against an event
func (s *TicketService) ListTicketsByEvent(eventID int64) ([]*models.Ticket, error) {
	return s.ticketRepo.ListByEvent(eventID)
}

// newTicketID generates an opaque, collision-resistant ticket token
func newTicketID() string {
	return "tkt_" + uuid.NewString()
}
