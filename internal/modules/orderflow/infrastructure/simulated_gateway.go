package infrastructure

import (
	"context"
	"log/slog"
	"time"

	"savoria/internal/modules/orderflow/domain"
	"savoria/internal/shared/money"
)

// SimulatedGateway stands in for a real payment processor: it waits a
// configurable settlement delay and approves every charge. The delay keeps the
// checkout path honest about being asynchronous.
type SimulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	if delay <= 0 {
		delay = 1500 * time.Millisecond
	}
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount int64, method domain.PaymentMethod) error {
	if method == domain.PaymentPayAtRestaurant {
		return nil
	}
	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	slog.Info("simulated charge settled",
		slog.String("amount", money.Format(amount)),
		slog.String("method", string(method)))
	return nil
}
