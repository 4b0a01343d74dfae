package services

import (
	"fmt"

	"eventpass/internal/models"
)

// StatsRepository is the aggregate view of the ticket ledger. Totals are
// recomputed from the stored tickets on every call; nothing is cached.
type StatsRepository interface {
	Totals() (*models.Stats, error)
	TotalsByEvent() ([]*models.EventStats, error)
}

// EventCounter counts events in the catalog
type EventCounter interface {
	Count() (int, error)
}

// StatsService derives platform totals from the ledger and catalog
type StatsService struct {
	eventRepo  EventCounter
	ticketRepo StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(eventRepo EventCounter, ticketRepo StatsRepository) *StatsService {
	return &StatsService{
		eventRepo:  eventRepo,
		ticketRepo: ticketRepo,
	}
}

// Stats recomputes the platform-wide totals
func (s *StatsService) Stats() (*models.Stats, error) {
	stats, err := s.ticketRepo.Totals()
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket totals: %w", err)
	}

	stats.TotalEvents, err = s.eventRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	return stats, nil
}

// StatsByEvent recomputes the per-event rollup
func (s *StatsService) StatsByEvent() ([]*models.EventStats, error) {
	return s.ticketRepo.TotalsByEvent()
}
