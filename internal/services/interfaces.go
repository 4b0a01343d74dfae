package services

import "eventpass/internal/models"

// EventServiceInterface defines the interface for the event catalog
type EventServiceInterface interface {
	CreateEvent(req *models.EventCreateRequest) (*models.Event, error)
	GetEvent(id int64) (*models.Event, error)
	ListEvents() ([]*models.Event, error)
}

// TicketServiceInterface defines the interface for the ticket ledger
type TicketServiceInterface interface {
	IssueTicket(eventID int64, customerName, customerEmail string) (*models.Ticket, error)
	IssueBatch(eventID int64, entries []models.BatchEntry) ([]BatchResult, error)
	GetTicket(id string) (*models.Ticket, error)
	ListTickets() ([]*models.Ticket, error)
	ListTicketsByEvent(eventID int64) ([]*models.Ticket, error)
}

// VerificationServiceInterface defines the interface for check-in
type VerificationServiceInterface interface {
	Verify(ticketID string) (*models.VerificationResult, error)
}

// StatsServiceInterface defines the interface for stats derivation
type StatsServiceInterface interface {
	Stats() (*models.Stats, error)
	StatsByEvent() ([]*models.EventStats, error)
}
