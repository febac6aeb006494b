package usecase

import (
	"context"
	"errors"
	"time"

	"savoria/internal/modules/orderflow/application/port"
	"savoria/internal/modules/orderflow/domain"
)

// ErrBookingNotFound is returned when a cancel targets an unknown booking id.
var ErrBookingNotFound = errors.New("booking not found")

// BookingsUseCase serves the customer's reservation history. First-time
// visitors are seeded with example entries so the page is never empty.
type BookingsUseCase struct {
	store port.BookingStore
	now   func() time.Time
}

func NewBookingsUseCase(store port.BookingStore) *BookingsUseCase {
	return &BookingsUseCase{store: store, now: time.Now}
}

// List returns the history for the session, seeding it on first access.
func (uc *BookingsUseCase) List(ctx context.Context, sessionID string) ([]domain.Booking, error) {
	bookings, err := uc.store.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		bookings = domain.SeedBookings(uc.now().UTC())
		if err := uc.store.Save(ctx, sessionID, bookings); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}

// Cancel marks an upcoming booking cancelled.
func (uc *BookingsUseCase) Cancel(ctx context.Context, sessionID, bookingID string) ([]domain.Booking, error) {
	bookings, err := uc.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	updated, found := domain.CancelBooking(bookings, bookingID)
	if !found {
		return nil, ErrBookingNotFound
	}
	if err := uc.store.Save(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
