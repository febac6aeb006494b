package port

import (
	"context"

	realtime "savoria/internal/modules/realtime/domain"
)

// EventPublisher emits order change events. Implementations ship them over
// the broker or dispatch in-process; failures are surfaced so callers can log
// them, but a lost event never fails the triggering operation.
type EventPublisher interface {
	Publish(ctx context.Context, msg *realtime.Message) error
}
