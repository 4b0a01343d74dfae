package models

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// TicketStatus represents the status of a ticket
type TicketStatus string

const (
	TicketUnused TicketStatus = "unused"
	TicketUsed   TicketStatus = "used"
)

// Email validation regex
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Ticket represents an issued admission ticket. The money fields are
// snapshots computed at issuance and never change afterwards, even if
// the event's price is edited later.
type Ticket struct {
	ID            string       `json:"id" db:"id"`
	EventID       int64        `json:"event_id" db:"event_id"`
	EventName     string       `json:"event_name" db:"event_name"`
	CustomerName  string       `json:"customer_name" db:"customer_name"`
	CustomerEmail string       `json:"customer_email" db:"customer_email"`
	Status        TicketStatus `json:"status" db:"status"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UsedAt        *time.Time   `json:"used_at,omitempty" db:"used_at"`
	PricePaid     int          `json:"price_paid" db:"price_paid"`       // Amount in cents
	PlatformFee   int          `json:"platform_fee" db:"platform_fee"`   // Amount in cents
	NetRevenue    int          `json:"net_revenue" db:"net_revenue"`     // Amount in cents
}

// TicketIssueRequest represents a request to issue a single ticket
type TicketIssueRequest struct {
	EventID       int64  `json:"event_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// BatchEntry is one customer in a batch issuance request
type BatchEntry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TicketBatchRequest represents a request to issue tickets in bulk
type TicketBatchRequest struct {
	EventID int64        `json:"event_id"`
	Entries []BatchEntry `json:"entries"`
}

// Validate validates ticket issuance data
func (req *TicketIssueRequest) Validate() error {
	if req.EventID <= 0 {
		return errors.New("event id is required")
	}

	return ValidateCustomer(req.CustomerName, req.CustomerEmail)
}

// ValidateCustomer validates customer details for a ticket
func ValidateCustomer(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("customer name is required")
	}

	if len(name) > 200 {
		return errors.New("customer name must be less than 200 characters")
	}

	if err := validateEmail(email); err != nil {
		return err
	}

	return nil
}

// validateEmail validates a customer email address
func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}

	if len(email) > 255 {
		return errors.New("email must be less than 255 characters")
	}

	if !emailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}

	return nil
}

// IsUsed returns true if the ticket has been used
func (t *Ticket) IsUsed() bool {
	return t.Status == TicketUsed
}

// CanBeUsed returns true if the ticket can still be checked in
func (t *Ticket) CanBeUsed() bool {
	return t.Status == TicketUnused
}

// PricePaidInCurrency returns the amount paid in the major currency unit
func (t *Ticket) PricePaidInCurrency() float64 {
	return float64(t.PricePaid) / 100.0
}
