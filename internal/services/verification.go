package services

import (
	"errors"
	"fmt"
	"time"

	"eventpass/internal/models"
)

// Messages shown on the scanner for each verification outcome
const (
	MessageTicketValid   = "Ticket Valid & Checked In"
	MessageTicketUsed    = "Ticket Already Used"
	MessageTicketInvalid = "Invalid Ticket ID"
)

// VerificationRepository is the slice of the ticket ledger the verification
// engine needs: a point read and the atomic unused-to-used swap
type VerificationRepository interface {
	GetByID(id string) (*models.Ticket, error)
	Redeem(id string, usedAt time.Time) (*models.Ticket, error)
}

// VerificationService enforces single check-in per ticket
type VerificationService struct {
	ticketRepo VerificationRepository
}

// NewVerificationService creates a new verification service
func NewVerificationService(ticketRepo VerificationRepository) *VerificationService {
	return &VerificationService{ticketRepo: ticketRepo}
}

// Verify attempts to check a ticket in. The unused-to-used transition is a
// compare-and-swap keyed by ticket id, so under concurrent scans of the same
// ticket exactly one caller wins; the rest see the ticket as already used
// with its original check-in time. Unknown and already-used tickets are
// reported as invalid results, not errors; only storage failures return an
// error, and those never leave the ticket flipped.
func (s *VerificationService) Verify(ticketID string) (*models.VerificationResult, error) {
	ticket, err := s.ticketRepo.Redeem(ticketID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to verify ticket: %w", err)
	}

	if ticket != nil {
		// This caller won the transition
		return &models.VerificationResult{
			Valid:   true,
			Message: MessageTicketValid,
			UsedAt:  ticket.UsedAt,
			Ticket:  ticket,
		}, nil
	}

	// The swap found no unused row; re-read to distinguish an unknown ticket
	// from one redeemed earlier (or concurrently)
	ticket, err = s.ticketRepo.GetByID(ticketID)
	if err != nil {
		if errors.Is(err, models.ErrTicketNotFound) {
			return &models.VerificationResult{
				Valid:   false,
				Message: MessageTicketInvalid,
				Reason:  models.VerifyReasonNotFound,
			}, nil
		}
		return nil, fmt.Errorf("failed to verify ticket: %w", err)
	}

	if ticket.IsUsed() {
		return &models.VerificationResult{
			Valid:   false,
			Message: MessageTicketUsed,
			Reason:  models.VerifyReasonAlreadyUsed,
			UsedAt:  ticket.UsedAt,
			Ticket:  ticket,
		}, nil
	}

	// The row exists and is unused, yet the swap missed it. The store
	// contradicted itself; surface it instead of guessing.
	return nil, fmt.Errorf("ticket %s in inconsistent state", ticketID)
}
