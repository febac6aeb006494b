package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"savoria/internal/modules/orders/application/port"
	"savoria/internal/modules/orders/domain"
	realtime "savoria/internal/modules/realtime/domain"
)

// ReviewUseCase carries the admin decisions over submitted orders. A decision
// only lands when the stored status still allows it; stale admin views get an
// error instead of silently clobbering a concurrent decision.
type ReviewUseCase struct {
	repo      port.Repository
	publisher port.EventPublisher
}

func NewReviewUseCase(repo port.Repository, publisher port.EventPublisher) *ReviewUseCase {
	return &ReviewUseCase{repo: repo, publisher: publisher}
}

// Approve moves a pending order to approved, storing the optional admin note.
func (uc *ReviewUseCase) Approve(ctx context.Context, orderID, note string) (domain.Order, error) {
	return uc.decide(ctx, orderID, domain.StatusApproved, note)
}

// Deny moves a pending order to denied, storing the optional admin note.
func (uc *ReviewUseCase) Deny(ctx context.Context, orderID, note string) (domain.Order, error) {
	return uc.decide(ctx, orderID, domain.StatusDenied, note)
}

// Complete marks an approved order as fulfilled after the visit. The note
// stored at approval time is kept.
func (uc *ReviewUseCase) Complete(ctx context.Context, orderID string) (domain.Order, error) {
	return uc.decide(ctx, orderID, domain.StatusCompleted, "")
}

func (uc *ReviewUseCase) decide(ctx context.Context, orderID string, next domain.Status, note string) (domain.Order, error) {
	order, err := uc.repo.Get(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.Status.CanTransitionTo(next) {
		return domain.Order{}, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatusTransition, order.Status, next)
	}

	// The store overwrites admin_notes unconditionally; an empty note keeps
	// the existing one so completing an order does not erase the approval note.
	if note == "" {
		note = order.AdminNotes
	}

	now := time.Now().UTC()
	if err := uc.repo.UpdateStatus(ctx, orderID, order.Status, next, note, now); err != nil {
		return domain.Order{}, err
	}

	order.Status = next
	order.AdminNotes = note
	order.UpdatedAt = now

	uc.publish(ctx, order)
	return order, nil
}

func (uc *ReviewUseCase) publish(ctx context.Context, order domain.Order) {
	if uc.publisher == nil {
		return
	}
	msg := &realtime.Message{
		Topic:      realtime.UpdatedTopic(realtime.OrdersEntity),
		Entity:     realtime.OrdersEntity,
		Action:     realtime.ActionUpdated,
		ResourceID: order.ID,
		Metadata:   map[string]string{"status": string(order.Status)},
		Data:       order,
		Timestamp:  order.UpdatedAt,
	}
	if err := uc.publisher.Publish(ctx, msg); err != nil {
		slog.Warn("order update event publish failed", slog.String("orderId", order.ID), slog.Any("error", err))
	}
}
