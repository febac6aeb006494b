package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"savoria/internal/modules/orderflow/application/port"
	"savoria/internal/modules/orderflow/domain"
)

const (
	sessionKeyPrefix = "session:"
	bookingKeyPrefix = "bookings:"

	defaultSessionTTL = 30 * time.Minute
	bookingTTL        = 24 * time.Hour
)

// RedisSessionStore persists sessions as JSON values with a TTL. Expiry is the
// abandonment mechanism: a session that stops progressing simply disappears,
// and the next request starts a fresh flow.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Save writes the session back and refreshes the TTL, so every step the
// customer takes extends the abandonment window.
func (s *RedisSessionStore) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.ID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// RedisBookingStore keeps the per-session reservation history. History
// outlives the session TTL so past visits stay visible after the flow ends.
type RedisBookingStore struct {
	client *redis.Client
}

func NewRedisBookingStore(client *redis.Client) *RedisBookingStore {
	return &RedisBookingStore{client: client}
}

func (s *RedisBookingStore) List(ctx context.Context, sessionID string) ([]domain.Booking, error) {
	raw, err := s.client.Get(ctx, bookingKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	var bookings []domain.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

func (s *RedisBookingStore) Save(ctx context.Context, sessionID string, bookings []domain.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := s.client.Set(ctx, bookingKeyPrefix+sessionID, raw, bookingTTL).Err(); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}
