package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"savoria/internal/modules/realtime/application/usecase"
	domain "savoria/internal/modules/realtime/domain"
	"savoria/internal/modules/realtime/infrastructure"
	"savoria/internal/shared/auth"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

var orderFeedTopics = []string{
	domain.CreatedTopic(domain.OrdersEntity),
	domain.UpdatedTopic(domain.OrdersEntity),
	domain.ListTopic(domain.OrdersEntity),
	domain.ErrorTopic(domain.OrdersEntity),
}

// NewOrderFeedHandler exposes /ws/orders/:token for the admin dashboard. The
// token may also arrive via query parameter or Authorization header. After the
// upgrade the client receives a system.connected envelope followed by an
// initial sequenced order-list snapshot.
func NewOrderFeedHandler(
	hub *infrastructure.Hub,
	validator auth.TokenValidator,
	feedUC *usecase.OrderFeedUseCase,
	adminRole string,
) func(echo.Context) error {
	if strings.TrimSpace(adminRole) == "" {
		adminRole = "ADMIN"
	}

	return func(c echo.Context) error {
		token := strings.TrimSpace(c.Param("token"))
		if token == "" {
			token = strings.TrimSpace(c.QueryParam("token"))
		}
		if token == "" {
			token = auth.ExtractBearerToken(c.Request())
		}

		claims, err := validator.Validate(token)
		if err != nil {
			slog.Warn("order feed token rejected", slog.Any("error", err))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if !claims.HasRole(adminRole) {
			slog.Warn("order feed role rejected", slog.String("userId", claims.RegisteredClaims.Subject), slog.Any("roles", claims.Roles))
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("order feed upgrade failed", slog.Any("error", err))
			return err
		}

		userID := claims.RegisteredClaims.Subject
		sessionID := claims.SessionID
		client := infrastructure.NewClient(hub, conn, userID, sessionID, 8)
		hub.AttachClient(client, orderFeedTopics)

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(&domain.Message{
			Topic:  domain.TopicSystemConnected,
			Entity: domain.SystemEntity,
			Action: domain.ActionConnected,
			Metadata: map[string]string{
				"userId":    userID,
				"sessionId": sessionID,
			},
			Data: map[string]any{
				"allowedTopics": orderFeedTopics,
				"roles":         claims.Roles,
			},
			Timestamp: time.Now().UTC(),
		})
		slog.Info("order feed connected", slog.String("userId", userID), slog.String("sessionId", sessionID))

		// Initial snapshot so the dashboard renders without waiting for a
		// change. The request context dies once the handler returns, so the
		// refresh runs on its own context.
		go feedUC.Refresh(context.Background())

		return nil
	}
}
