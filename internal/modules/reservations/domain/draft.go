package domain

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const (
	MinPartySize = 1
	MaxPartySize = 8

	// DateLayout is the wire format for reservation dates.
	DateLayout = "2006-01-02"
)

// ErrInvalidDraft is the base error every draft validation failure wraps.
var ErrInvalidDraft = errors.New("invalid reservation draft")

var (
	ErrMissingDate      = fmt.Errorf("%w: missing or malformed date", ErrInvalidDraft)
	ErrInvalidTimeSlot  = fmt.Errorf("%w: time is not an offered slot", ErrInvalidDraft)
	ErrInvalidPartySize = fmt.Errorf("%w: party size out of range", ErrInvalidDraft)
	ErrUnknownTable     = fmt.Errorf("%w: unknown table", ErrInvalidDraft)
	ErrTableTooSmall    = fmt.Errorf("%w: table does not seat the party", ErrInvalidDraft)
	ErrMissingContact   = fmt.Errorf("%w: missing contact field", ErrInvalidDraft)
	ErrInvalidEmail     = fmt.Errorf("%w: malformed email address", ErrInvalidDraft)
)

// Contact is the customer contact block; all three fields are required
// before a draft may advance.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Draft captures a reservation being composed. Once submitted to the order
// flow it becomes the immutable input to checkout.
type Draft struct {
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Guests  int     `json:"guests"`
	TableID int     `json:"tableId"`
	Contact Contact `json:"contact"`
}

// Validate checks every field against the inventory and contact requirements.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Date) == "" {
		return ErrMissingDate
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return ErrMissingDate
	}
	if !ValidTimeSlot(d.Time) {
		return ErrInvalidTimeSlot
	}
	if d.Guests < MinPartySize || d.Guests > MaxPartySize {
		return ErrInvalidPartySize
	}
	table, ok := FindTable(d.TableID)
	if !ok {
		return ErrUnknownTable
	}
	if table.Seats < d.Guests {
		return ErrTableTooSmall
	}
	if strings.TrimSpace(d.Contact.Name) == "" ||
		strings.TrimSpace(d.Contact.Email) == "" ||
		strings.TrimSpace(d.Contact.Phone) == "" {
		return ErrMissingContact
	}
	if _, err := mail.ParseAddress(d.Contact.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
