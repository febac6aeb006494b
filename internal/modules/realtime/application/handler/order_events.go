package handler

import (
	"context"
	"log/slog"
	"strings"

	orders "savoria/internal/modules/orders/domain"
	"savoria/internal/modules/realtime/application/port"
	"savoria/internal/modules/realtime/application/usecase"
	"savoria/internal/modules/realtime/domain"
)

// OrderEventsHandler forwards order change events from a broker topic to the
// websocket clients and triggers a sequenced list refresh after each one, so
// the admin view stays current without polling. Broker payloads arrive as
// loose JSON maps; created/updated events are normalized into a typed order
// projection before broadcasting.
type OrderEventsHandler struct {
	brokerTopic    string
	allowedActions map[string]struct{}
	broadcastUC    *usecase.BroadcastUseCase
	feedUC         *usecase.OrderFeedUseCase
}

func NewOrderEventsHandler(brokerTopic string, allowedActions []string, broadcastUC *usecase.BroadcastUseCase, feedUC *usecase.OrderFeedUseCase) *OrderEventsHandler {
	actionSet := make(map[string]struct{}, len(allowedActions))
	for _, a := range allowedActions {
		if v := strings.TrimSpace(strings.ToLower(a)); v != "" {
			actionSet[v] = struct{}{}
		}
	}
	return &OrderEventsHandler{
		brokerTopic:    brokerTopic,
		allowedActions: actionSet,
		broadcastUC:    broadcastUC,
		feedUC:         feedUC,
	}
}

func (h *OrderEventsHandler) Topic() string { return h.brokerTopic }

func (h *OrderEventsHandler) Handle(ctx context.Context, msg *domain.Message) error {
	if len(h.allowedActions) > 0 {
		if _, ok := h.allowedActions[strings.ToLower(msg.Action)]; !ok {
			return nil
		}
	}
	if msg.Entity == "" {
		msg.Entity = domain.OrdersEntity
	}
	if msg.Topic == "" || msg.Topic == h.brokerTopic {
		msg.Topic = msg.Entity + "." + msg.Action
	}
	if strings.EqualFold(msg.Action, domain.ActionCreated) || strings.EqualFold(msg.Action, domain.ActionUpdated) {
		if detail, ok := orders.BuildOrderDetail(msg.Data); ok {
			msg.Data = detail
			if msg.ResourceID == "" {
				msg.ResourceID = detail.ID
			}
		}
	}
	h.broadcastUC.Execute(ctx, msg)

	if h.feedUC != nil && !strings.EqualFold(msg.Action, domain.ActionList) {
		slog.Info("order feed refresh", slog.String("action", msg.Action), slog.String("resourceId", msg.ResourceID))
		h.feedUC.Refresh(ctx)
	}
	return nil
}

var _ port.TopicHandler = (*OrderEventsHandler)(nil)
