package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"savoria/internal/modules/orders/application/port"
	"savoria/internal/modules/orders/domain"
	realtime "savoria/internal/modules/realtime/domain"
)

type fakeRepo struct {
	orders map[string]domain.Order
}

func newFakeRepo(seed ...domain.Order) *fakeRepo {
	repo := &fakeRepo{orders: make(map[string]domain.Order)}
	for _, order := range seed {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeRepo) Insert(_ context.Context, order *domain.Order) error {
	order.OrderNumber = int64(100000 + len(r.orders))
	r.orders[order.ID] = *order
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, port.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeRepo) GetByNumber(_ context.Context, number int64) (domain.Order, error) {
	for _, order := range r.orders {
		if order.OrderNumber == number {
			return order, nil
		}
	}
	return domain.Order{}, port.ErrOrderNotFound
}

func (r *fakeRepo) List(context.Context) ([]domain.Order, error) {
	items := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		items = append(items, order)
	}
	return items, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, expected, next domain.Status, adminNotes string, updatedAt time.Time) error {
	order, ok := r.orders[id]
	if !ok {
		return port.ErrOrderNotFound
	}
	if order.Status != expected {
		return port.ErrStatusConflict
	}
	// Mirrors the SQL UPDATE: admin_notes is overwritten unconditionally.
	order.Status = next
	order.AdminNotes = adminNotes
	order.UpdatedAt = updatedAt
	r.orders[id] = order
	return nil
}

type capturingPublisher struct {
	messages []*realtime.Message
}

func (p *capturingPublisher) Publish(_ context.Context, msg *realtime.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

func TestApprove(t *testing.T) {
	t.Run("pending order approves and publishes", func(t *testing.T) {
		repo := newFakeRepo(domain.Order{ID: "ord-1", Status: domain.StatusPending})
		publisher := &capturingPublisher{}
		uc := NewReviewUseCase(repo, publisher)

		order, err := uc.Approve(context.Background(), "ord-1", "table ready")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != domain.StatusApproved {
			t.Fatalf("expected approved, got %q", order.Status)
		}
		if order.AdminNotes != "table ready" {
			t.Fatalf("expected admin note stored, got %q", order.AdminNotes)
		}
		stored, _ := repo.Get(context.Background(), "ord-1")
		if stored.Status != domain.StatusApproved {
			t.Fatalf("expected repo updated, got %q", stored.Status)
		}
		if len(publisher.messages) != 1 || publisher.messages[0].Topic != "orders.updated" {
			t.Fatalf("expected one orders.updated event, got %+v", publisher.messages)
		}
	})

	t.Run("approving an approved order is rejected", func(t *testing.T) {
		repo := newFakeRepo(domain.Order{ID: "ord-1", Status: domain.StatusApproved})
		uc := NewReviewUseCase(repo, &capturingPublisher{})

		if _, err := uc.Approve(context.Background(), "ord-1", ""); !errors.Is(err, domain.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		uc := NewReviewUseCase(newFakeRepo(), &capturingPublisher{})
		if _, err := uc.Approve(context.Background(), "missing", ""); !errors.Is(err, port.ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestDeny(t *testing.T) {
	repo := newFakeRepo(domain.Order{ID: "ord-2", Status: domain.StatusPending})
	uc := NewReviewUseCase(repo, &capturingPublisher{})

	order, err := uc.Deny(context.Background(), "ord-2", "kitchen closed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.StatusDenied {
		t.Fatalf("expected denied, got %q", order.Status)
	}
}

func TestComplete(t *testing.T) {
	t.Run("approved order completes", func(t *testing.T) {
		repo := newFakeRepo(domain.Order{ID: "ord-3", Status: domain.StatusApproved})
		uc := NewReviewUseCase(repo, &capturingPublisher{})

		order, err := uc.Complete(context.Background(), "ord-3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != domain.StatusCompleted {
			t.Fatalf("expected completed, got %q", order.Status)
		}
	})

	t.Run("keeps the approval note", func(t *testing.T) {
		repo := newFakeRepo(domain.Order{ID: "ord-3", Status: domain.StatusPending})
		uc := NewReviewUseCase(repo, &capturingPublisher{})

		if _, err := uc.Approve(context.Background(), "ord-3", "table ready"); err != nil {
			t.Fatalf("approve: %v", err)
		}
		order, err := uc.Complete(context.Background(), "ord-3")
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if order.AdminNotes != "table ready" {
			t.Fatalf("expected returned note kept, got %q", order.AdminNotes)
		}
		stored, _ := repo.Get(context.Background(), "ord-3")
		if stored.AdminNotes != "table ready" {
			t.Fatalf("expected stored note kept, got %q", stored.AdminNotes)
		}
	})

	t.Run("pending order cannot complete", func(t *testing.T) {
		repo := newFakeRepo(domain.Order{ID: "ord-3", Status: domain.StatusPending})
		uc := NewReviewUseCase(repo, &capturingPublisher{})

		if _, err := uc.Complete(context.Background(), "ord-3"); !errors.Is(err, domain.ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})
}
