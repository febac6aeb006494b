package transport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"savoria/internal/modules/orders/application/port"
	"savoria/internal/modules/orders/application/usecase"
	"savoria/internal/modules/orders/domain"
	"savoria/internal/shared/auth"
	"savoria/internal/shared/httputil"
)

// AdminHandler exposes the order review API. Every route requires a JWT
// carrying the admin role.
type AdminHandler struct {
	review    *usecase.ReviewUseCase
	list      *usecase.ListOrdersUseCase
	validator auth.TokenValidator
	adminRole string
	mapper    *httputil.ErrorMapper
}

func NewAdminHandler(review *usecase.ReviewUseCase, list *usecase.ListOrdersUseCase, validator auth.TokenValidator, adminRole string) *AdminHandler {
	if strings.TrimSpace(adminRole) == "" {
		adminRole = "ADMIN"
	}
	mapper := httputil.NewErrorMapper().
		WithMapping(port.ErrOrderNotFound, http.StatusNotFound, "order not found").
		WithMapping(domain.ErrInvalidStatusTransition, http.StatusConflict, "").
		WithMapping(port.ErrStatusConflict, http.StatusConflict, "order was updated by another admin").
		WithDefault(http.StatusInternalServerError, "failed to update order")
	return &AdminHandler{
		review:    review,
		list:      list,
		validator: validator,
		adminRole: adminRole,
		mapper:    mapper,
	}
}

// Register mounts the admin routes under /api/admin.
func (h *AdminHandler) Register(e *echo.Echo) {
	group := e.Group("/api/admin", h.requireAdmin)
	group.GET("/orders", h.listOrders)
	group.POST("/orders/:id/approve", h.approve)
	group.POST("/orders/:id/deny", h.deny)
	group.POST("/orders/:id/complete", h.complete)
}

func (h *AdminHandler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := h.validator.Validate(auth.ExtractBearerToken(c.Request()))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		if !claims.HasRole(h.adminRole) {
			slog.Warn("admin api role rejected", slog.String("userId", claims.RegisteredClaims.Subject), slog.Any("roles", claims.Roles))
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
		c.Set("claims", claims)
		return next(c)
	}
}

func (h *AdminHandler) listOrders(c echo.Context) error {
	list, err := h.list.Execute(c.Request().Context())
	if err != nil {
		slog.Error("admin list orders failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to fetch orders"})
	}
	return c.JSON(http.StatusOK, list)
}

type reviewRequest struct {
	Notes string `json:"notes"`
}

func (h *AdminHandler) approve(c echo.Context) error {
	return h.decide(c, h.review.Approve)
}

func (h *AdminHandler) deny(c echo.Context) error {
	return h.decide(c, h.review.Deny)
}

func (h *AdminHandler) complete(c echo.Context) error {
	order, err := h.review.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) decide(c echo.Context, action func(ctx context.Context, id, note string) (domain.Order, error)) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	order, err := action(c.Request().Context(), c.Param("id"), strings.TrimSpace(req.Notes))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) respondError(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	message := info.Message
	if message == "" {
		message = err.Error()
	}
	if info.Status >= http.StatusInternalServerError {
		slog.Error("admin order action failed", slog.String("orderId", c.Param("id")), slog.Any("error", err))
	} else {
		slog.Warn("admin order action rejected", slog.String("orderId", c.Param("id")), slog.Any("error", err))
	}
	return c.JSON(info.Status, map[string]string{"error": message})
}
