package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"savoria/internal/modules/orderflow/application/port"
	"savoria/internal/modules/orderflow/domain"
)

// SessionUseCase issues and loads order-flow sessions. Sessions are the
// server-side handle every later step operates on.
type SessionUseCase struct {
	store port.SessionStore
	now   func() time.Time
}

func NewSessionUseCase(store port.SessionStore) *SessionUseCase {
	return &SessionUseCase{store: store, now: time.Now}
}

// Start creates and persists a fresh drafting session.
func (uc *SessionUseCase) Start(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(uuid.NewString(), uc.now().UTC())
	if err := uc.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get loads an existing session.
func (uc *SessionUseCase) Get(ctx context.Context, id string) (*domain.Session, error) {
	return uc.store.Load(ctx, id)
}
