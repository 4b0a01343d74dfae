package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"eventpass/internal/models"
)

// EventRepository handles event catalog data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event and returns it with its assigned id
func (r *EventRepository) Create(req *models.EventCreateRequest) (*models.Event, error) {
	query := `
		INSERT INTO events (name, date, location, price, currency, fee_model, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, date, location, price, currency, fee_model, description, created_at`

	event := &models.Event{}
	err := r.db.QueryRow(
		query,
		req.Name,
		req.Date,
		req.Location,
		req.Price,
		req.Currency,
		req.FeeModel,
		req.Description,
		time.Now().UTC(),
	).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Price,
		&event.Currency,
		&event.FeeModel,
		&event.Description,
		&event.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(id int64) (*models.Event, error) {
	query := `
		SELECT id, name, date, location, price, currency, fee_model, description, created_at
		FROM events
		WHERE id = $1`

	event := &models.Event{}
	err := r.db.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Location,
		&event.Price,
		&event.Currency,
		&event.FeeModel,
		&event.Description,
		&event.CreatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// List retrieves all events in creation order
func (r *EventRepository) List() ([]*models.Event, error) {
	query := `
		SELECT id, name, date, location, price, currency, fee_model, description, created_at
		FROM events
		ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
			&event.Location,
			&event.Price,
			&event.Currency,
			&event.FeeModel,
			&event.Description,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, nil
}

// Count returns the number of events in the catalog
func (r *EventRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM events").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
