package port

import (
	"context"
	"errors"

	"savoria/internal/modules/orderflow/domain"
)

// ErrSessionNotFound is returned when the session id is unknown or the
// session has expired out of the store.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists order-flow sessions. Implementations apply a TTL so
// abandoned sessions expire without an explicit cancel step.
type SessionStore interface {
	Load(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// BookingStore persists the per-customer reservation history.
type BookingStore interface {
	List(ctx context.Context, sessionID string) ([]domain.Booking, error)
	Save(ctx context.Context, sessionID string, bookings []domain.Booking) error
}

// PaymentGateway settles a checkout charge. Amount is in minor units.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int64, method domain.PaymentMethod) error
}

// QRRenderer encodes the public lookup URL for an order number as a PNG.
type QRRenderer interface {
	Render(orderNumber int64) ([]byte, error)
}
