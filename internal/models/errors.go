package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrTicketAlreadyUsed = errors.New("ticket already used")
	ErrDuplicateTicketID = errors.New("duplicate ticket id")
	ErrInvalidInput      = errors.New("invalid input")
)
