package models

import "time"

// VerifyReason explains why a verification was rejected
type VerifyReason string

const (
	VerifyReasonNotFound    VerifyReason = "not_found"
	VerifyReasonAlreadyUsed VerifyReason = "already_used"
)

// VerificationResult is the outcome of a check-in attempt
type VerificationResult struct {
	Valid   bool         `json:"valid"`
	Message string       `json:"message"`
	Reason  VerifyReason `json:"reason,omitempty"`
	UsedAt  *time.Time   `json:"used_at,omitempty"`
	Ticket  *Ticket      `json:"ticket,omitempty"`
}

// VerifyRequest represents a check-in request from a scanner
type VerifyRequest struct {
	TicketID string `json:"ticket_id"`
}
