package models

import (
	"errors"
	"strings"
	"time"
)

// FeeModel determines who pays the platform fee for an event's tickets
type FeeModel string

const (
	// FeeAbsorb deducts the platform fee from the organizer's revenue
	FeeAbsorb FeeModel = "absorb"
	// FeePassOn adds the platform fee on top of the ticket price
	FeePassOn FeeModel = "pass_on"
)

// Event represents a ticketed event
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Date        string    `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	Price       int       `json:"price" db:"price"` // Price in cents
	Currency    string    `json:"currency" db:"currency"`
	FeeModel    FeeModel  `json:"fee_model" db:"fee_model"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// EventCreateRequest represents the data needed to create an event
type EventCreateRequest struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Price       int      `json:"price"` // Price in cents
	Currency    string   `json:"currency"`
	FeeModel    FeeModel `json:"fee_model"`
	Description string   `json:"description"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	if err := validateEventName(req.Name); err != nil {
		return err
	}

	if err := validateEventDate(req.Date); err != nil {
		return err
	}

	if err := validateEventLocation(req.Location); err != nil {
		return err
	}

	if err := validateEventPrice(req.Price); err != nil {
		return err
	}

	if err := validateCurrency(req.Currency); err != nil {
		return err
	}

	if err := validateFeeModel(req.FeeModel); err != nil {
		return err
	}

	if err := validateEventDescription(req.Description); err != nil {
		return err
	}

	return nil
}

// PriceInCurrency returns the event price in the major currency unit
func (e *Event) PriceInCurrency() float64 {
	return float64(e.Price) / 100.0
}

// validateEventName validates an event name
func validateEventName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("event name is required")
	}

	if len(name) > 200 {
		return errors.New("event name must be less than 200 characters")
	}

	return nil
}

// validateEventDate validates an event date
func validateEventDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return errors.New("event date is required")
	}

	return nil
}

// validateEventLocation validates an event location
func validateEventLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return errors.New("event location is required")
	}

	if len(location) > 200 {
		return errors.New("event location must be less than 200 characters")
	}

	return nil
}

// validateEventPrice validates an event ticket price
func validateEventPrice(price int) error {
	if price < 0 {
		return errors.New("event price cannot be negative")
	}

	return nil
}

// validateCurrency validates a currency code
func validateCurrency(currency string) error {
	code := strings.TrimSpace(currency)
	if code == "" {
		return errors.New("currency is required")
	}

	if len(code) != 3 {
		return errors.New("currency must be a 3-letter code")
	}

	return nil
}

// validateFeeModel validates a fee model
func validateFeeModel(model FeeModel) error {
	switch model {
	case FeeAbsorb, FeePassOn:
		return nil
	default:
		return errors.New("fee model must be either absorb or pass_on")
	}
}

// validateEventDescription validates an event description
func validateEventDescription(description string) error {
	// Description is optional, but if provided, it should not be too long
	if len(description) > 2000 {
		return errors.New("event description must be less than 2000 characters")
	}

	return nil
}
