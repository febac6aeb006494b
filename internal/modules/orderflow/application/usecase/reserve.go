package usecase

import (
	"context"
	"time"

	"savoria/internal/modules/orderflow/application/port"
	"savoria/internal/modules/orderflow/domain"
	reservations "savoria/internal/modules/reservations/domain"
)

// ReserveUseCase handles the reservation step of the flow: offering tables
// for a party size and attaching a validated draft to the session.
type ReserveUseCase struct {
	store port.SessionStore
	now   func() time.Time
}

func NewReserveUseCase(store port.SessionStore) *ReserveUseCase {
	return &ReserveUseCase{store: store, now: time.Now}
}

// Options lists the selectable time slots and the tables that can seat the
// party. partySize values outside the allowed range yield no tables.
type Options struct {
	TimeSlots []string             `json:"timeSlots"`
	Tables    []reservations.Table `json:"tables"`
	MinGuests int                  `json:"minGuests"`
	MaxGuests int                  `json:"maxGuests"`
}

func (uc *ReserveUseCase) Options(partySize int) Options {
	return Options{
		TimeSlots: reservations.TimeSlots(),
		Tables:    reservations.TablesFor(partySize),
		MinGuests: reservations.MinPartySize,
		MaxGuests: reservations.MaxPartySize,
	}
}

// Submit validates the draft against the session and persists the result.
func (uc *ReserveUseCase) Submit(ctx context.Context, sessionID string, draft reservations.Draft) (*domain.Session, error) {
	session, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.SubmitReservation(draft, uc.now().UTC()); err != nil {
		return nil, err
	}
	if err := uc.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
