package port

import (
	"context"
	"errors"
	"time"

	"savoria/internal/modules/orders/domain"
)

var (
	// ErrOrderNotFound is returned when no record matches the identifier.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStatusConflict is returned when the record's stored status no longer
	// matches the status the caller decided against.
	ErrStatusConflict = errors.New("order status changed concurrently")
)

// Repository is the backing store of record for orders. Records are inserted
// once at checkout and mutated only through UpdateStatus; they are never
// deleted.
type Repository interface {
	// Insert stores a new order and fills the store-issued OrderNumber,
	// CreatedAt and UpdatedAt on the passed record.
	Insert(ctx context.Context, order *domain.Order) error
	// Get loads one order by id.
	Get(ctx context.Context, id string) (domain.Order, error)
	// GetByNumber loads one order by its human-facing order number.
	GetByNumber(ctx context.Context, number int64) (domain.Order, error)
	// List returns all orders, newest first.
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus updates {status, admin_notes, updated_at} on the single
	// record whose stored status still equals expected.
	UpdateStatus(ctx context.Context, id string, expected, next domain.Status, adminNotes string, updatedAt time.Time) error
}
