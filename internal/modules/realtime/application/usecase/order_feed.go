package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"savoria/internal/modules/realtime/application/port"
	"savoria/internal/modules/realtime/domain"
)

// OrderFeedUseCase pushes full order-list snapshots to admin clients. Every
// refresh carries a monotonic sequence taken before the fetch; a slower fetch
// finishing after a newer one is discarded so the displayed list can never
// regress.
type OrderFeedUseCase struct {
	fetcher   port.OrderSnapshotFetcher
	broadcast *BroadcastUseCase

	mu          sync.Mutex
	nextSeq     uint64
	lastApplied uint64
}

func NewOrderFeedUseCase(fetcher port.OrderSnapshotFetcher, broadcast *BroadcastUseCase) *OrderFeedUseCase {
	return &OrderFeedUseCase{fetcher: fetcher, broadcast: broadcast}
}

// Refresh refetches the order list and broadcasts it on orders.list unless a
// newer refresh already applied.
func (uc *OrderFeedUseCase) Refresh(ctx context.Context) {
	uc.mu.Lock()
	uc.nextSeq++
	seq := uc.nextSeq
	uc.mu.Unlock()

	list, err := uc.fetcher.FetchOrders(ctx)
	if err != nil {
		slog.Warn("order feed refresh failed", slog.Uint64("seq", seq), slog.Any("error", err))
		return
	}

	uc.mu.Lock()
	if seq <= uc.lastApplied {
		uc.mu.Unlock()
		slog.Debug("order feed discarded stale refresh", slog.Uint64("seq", seq))
		return
	}
	uc.lastApplied = seq

	msg := &domain.Message{
		Topic:  domain.ListTopic(domain.OrdersEntity),
		Entity: domain.OrdersEntity,
		Action: domain.ActionList,
		Data: map[string]any{
			"items": list.Items,
			"total": list.Total,
			"seq":   seq,
		},
		Timestamp: time.Now().UTC(),
	}
	// Broadcast while still holding the guard: releasing it first would let a
	// refresh that passed the check get overtaken and push its older snapshot
	// after a newer one.
	uc.broadcast.Execute(ctx, msg)
	uc.mu.Unlock()
}
