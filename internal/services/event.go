package services

import (
	"fmt"
	"strings"

	"eventpass/internal/models"
)

// EventRepository interface for event catalog data operations
type EventRepository interface {
	Create(req *models.EventCreateRequest) (*models.Event, error)
	GetByID(id int64) (*models.Event, error)
	List() ([]*models.Event, error)
	Count() (int, error)
}

// EventService handles the event catalog business logic
type EventService struct {
	eventRepo EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// CreateEvent validates and stores a new event
func (s *EventService) CreateEvent(req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	// Normalize the currency so the fee table lookup is case-insensitive
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))

	event, err := s.eventRepo.Create(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(id)
}

// ListEvents retrieves all events in creation order
func (s *EventService) ListEvents() ([]*models.Event, error) {
	return s.eventRepo.List()
}
