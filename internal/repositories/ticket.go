package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventpass/internal/models"

	"github.com/lib/pq"
)

// TicketRepository handles the ticket ledger data operations
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

const ticketColumns = `id, event_id, event_name, customer_name, customer_email, status, created_at, used_at, price_paid, platform_fee, net_revenue`

// Create appends a ticket to the ledger. The whole record, including the
// three money snapshot fields, is written in a single insert so a ticket is
// either fully visible or absent. Returns models.ErrDuplicateTicketID when
// the generated id already exists, so the caller can retry with a fresh id.
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	query := `
		INSERT INTO tickets (id, event_id, event_name, customer_name, customer_email, status, created_at, used_at, price_paid, platform_fee, net_revenue)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(
		query,
		ticket.ID,
		ticket.EventID,
		ticket.EventName,
		ticket.CustomerName,
		ticket.CustomerEmail,
		ticket.Status,
		ticket.CreatedAt,
		ticket.UsedAt,
		ticket.PricePaid,
		ticket.PlatformFee,
		ticket.NetRevenue,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateTicketID
		}
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id string) (*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket := &models.Ticket{}
	err := scanTicket(r.db.QueryRow(query, id), ticket)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

// List retrieves all tickets in issuance order
func (r *TicketRepository) List() ([]*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at, id`
	return r.queryTickets(query)
}

// ListByEvent retrieves all tickets issued against an event
func (r *TicketRepository) ListByEvent(eventID int64) ([]*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE event_id = $1 ORDER BY created_at, id`
	return r.queryTickets(query, eventID)
}

// Redeem flips a ticket from unused to used as a single compare-and-swap.
// Under concurrent calls for the same id exactly one caller gets the ticket
// back; everyone else gets (nil, nil) and must re-read to find out why.
func (r *TicketRepository) Redeem(id string, usedAt time.Time) (*models.Ticket, error) {
	query := `
		UPDATE tickets
		SET status = $2, used_at = $3
		WHERE id = $1 AND status = $4
		RETURNING ` + ticketColumns

	ticket := &models.Ticket{}
	err := scanTicket(r.db.QueryRow(query, id, models.TicketUsed, usedAt, models.TicketUnused), ticket)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to redeem ticket: %w", err)
	}

	return ticket, nil
}

// Totals computes the ledger-wide ticket counts and money sums in one query
func (r *TicketRepository) Totals() (*models.Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'used'),
			COALESCE(SUM(price_paid), 0),
			COALESCE(SUM(net_revenue), 0),
			COALESCE(SUM(platform_fee), 0)
		FROM tickets`

	stats := &models.Stats{}
	err := r.db.QueryRow(query).Scan(
		&stats.TotalTickets,
		&stats.TicketsUsed,
		&stats.GrossSales,
		&stats.NetRevenue,
		&stats.TotalFeesCollected,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute ticket totals: %w", err)
	}

	return stats, nil
}

// TotalsByEvent computes the per-event rollup for the organizer dashboard
func (r *TicketRepository) TotalsByEvent() ([]*models.EventStats, error) {
	query := `
		SELECT
			event_id,
			event_name,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'used'),
			COALESCE(SUM(price_paid), 0),
			COALESCE(SUM(net_revenue), 0),
			COALESCE(SUM(platform_fee), 0)
		FROM tickets
		GROUP BY event_id, event_name
		ORDER BY event_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compute event totals: %w", err)
	}
	defer rows.Close()

	var totals []*models.EventStats
	for rows.Next() {
		es := &models.EventStats{}
		err := rows.Scan(
			&es.EventID,
			&es.EventName,
			&es.TicketsIssued,
			&es.TicketsUsed,
			&es.GrossSales,
			&es.NetRevenue,
			&es.FeesCollected,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event totals: %w", err)
		}
		totals = append(totals, es)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event totals: %w", err)
	}

	return totals, nil
}

func (r *TicketRepository) queryTickets(query string, args ...any) ([]*models.Ticket, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		if err := scanTicket(rows, ticket); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}

	return tickets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner, ticket *models.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&ticket.EventName,
		&ticket.CustomerName,
		&ticket.CustomerEmail,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UsedAt,
		&ticket.PricePaid,
		&ticket.PlatformFee,
		&ticket.NetRevenue,
	)
}

// isUniqueViolation reports whether err is a Postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
