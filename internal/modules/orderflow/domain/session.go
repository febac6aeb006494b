package domain

import (
	"errors"
	"time"

	cart "savoria/internal/modules/cart/domain"
	reservations "savoria/internal/modules/reservations/domain"
)

// State is the position of a session in the reservation -> cart -> checkout ->
// confirmation pipeline. Abandonment has no explicit state; sessions simply
// expire out of the store.
type State string

const (
	StateDrafting    State = "drafting"
	StateReserved    State = "reserved"
	StateOrdering    State = "ordering"
	StateCheckingOut State = "checking_out"
	StateConfirmed   State = "confirmed"
)

var (
	// ErrNoReservation gates checkout on a submitted reservation.
	ErrNoReservation = errors.New("no reservation")
	// ErrEmptyCart gates checkout on at least one cart line.
	ErrEmptyCart = errors.New("empty cart")
	// ErrNotConfirmed rejects confirmation reads before a completed checkout.
	ErrNotConfirmed = errors.New("order not confirmed")
	// ErrReservationLocked rejects reservation changes once checkout started.
	ErrReservationLocked = errors.New("reservation locked")
)

// Session is the server-side order-flow context that replaces the original
// navigation payload: every step reads and advances the same handle instead
// of trusting state forwarded by the client.
type Session struct {
	ID            string              `json:"id"`
	State         State               `json:"state"`
	Reservation   *reservations.Draft `json:"reservation,omitempty"`
	Cart          cart.Cart           `json:"cart"`
	PaymentMethod PaymentMethod       `json:"paymentMethod,omitempty"`
	OrderID       string              `json:"orderId,omitempty"`
	OrderNumber   int64               `json:"orderNumber,omitempty"`
	CustomerNotes string              `json:"customerNotes,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, State: StateDrafting, CreatedAt: now, UpdatedAt: now}
}

// SubmitReservation validates the draft and attaches it to the session.
// Resubmission is allowed while browsing, but the draft is immutable once
// checkout has begun.
func (s *Session) SubmitReservation(draft reservations.Draft, now time.Time) error {
	if s.State == StateCheckingOut || s.State == StateConfirmed {
		return ErrReservationLocked
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	s.Reservation = &draft
	if s.State == StateDrafting {
		s.State = StateReserved
	}
	s.UpdatedAt = now
	return nil
}

// MarkOrdering records that the customer is browsing the menu with a
// reservation in hand. Cart mutations without a reservation stay in drafting;
// the gate is at checkout, not here.
func (s *Session) MarkOrdering(now time.Time) {
	if s.State == StateReserved {
		s.State = StateOrdering
	}
	s.UpdatedAt = now
}

// BeginCheckout verifies the checkout preconditions and advances the session.
// The caller maps ErrNoReservation and ErrEmptyCart to redirects toward the
// screen that can fix them.
func (s *Session) BeginCheckout(now time.Time) error {
	if s.Reservation == nil {
		return ErrNoReservation
	}
	if s.Cart.IsEmpty() {
		return ErrEmptyCart
	}
	s.State = StateCheckingOut
	s.UpdatedAt = now
	return nil
}

// Confirm records the successful checkout outcome. The order identifier and
// number are store-issued, never generated here.
func (s *Session) Confirm(method PaymentMethod, orderID string, orderNumber int64, now time.Time) error {
	if s.Reservation == nil {
		return ErrNoReservation
	}
	if s.Cart.IsEmpty() {
		return ErrEmptyCart
	}
	s.PaymentMethod = method
	s.OrderID = orderID
	s.OrderNumber = orderNumber
	s.State = StateConfirmed
	s.UpdatedAt = now
	return nil
}

// ConfirmationReady reports whether the confirmation screen may render.
func (s *Session) ConfirmationReady() bool {
	return s.State == StateConfirmed && s.Reservation != nil && s.OrderNumber != 0
}
