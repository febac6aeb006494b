package transport

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	menu "savoria/internal/modules/menu/domain"
	"savoria/internal/modules/orderflow/application/port"
	"savoria/internal/modules/orderflow/application/usecase"
	"savoria/internal/modules/orderflow/domain"
	ordersport "savoria/internal/modules/orders/application/port"
	reservations "savoria/internal/modules/reservations/domain"
	"savoria/internal/shared/httputil"
)

// SessionHeader carries the order-flow session id on every customer request.
const SessionHeader = "X-Session-ID"

// FlowHandler exposes the customer pipeline: session issue, reservation,
// menu, cart, checkout, confirmation, and booking history.
type FlowHandler struct {
	sessions *usecase.SessionUseCase
	reserve  *usecase.ReserveUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	bookings *usecase.BookingsUseCase
	orders   ordersport.Repository
	qr       port.QRRenderer
	mapper   *httputil.ErrorMapper
}

func newFlowErrorMapper() *httputil.ErrorMapper {
	return httputil.NewErrorMapper().
		WithRedirect(port.ErrSessionNotFound, http.StatusConflict, "session expired", "reservations").
		WithRedirect(domain.ErrNoReservation, http.StatusConflict, "reservation required before checkout", "reservations").
		WithRedirect(domain.ErrEmptyCart, http.StatusConflict, "cart is empty", "menu").
		WithRedirect(domain.ErrNotConfirmed, http.StatusConflict, "checkout not completed", "menu").
		WithMapping(domain.ErrReservationLocked, http.StatusConflict, "reservation can no longer change").
		WithMapping(reservations.ErrInvalidDraft, http.StatusBadRequest, "").
		WithMapping(domain.ErrUnknownPaymentMethod, http.StatusBadRequest, "").
		WithMapping(domain.ErrMissingCardFields, http.StatusBadRequest, "").
		WithMapping(usecase.ErrUnknownMenuItem, http.StatusNotFound, "").
		WithMapping(usecase.ErrBookingNotFound, http.StatusNotFound, "").
		WithMapping(ordersport.ErrOrderNotFound, http.StatusNotFound, "").
		WithDefault(http.StatusInternalServerError, "internal server error")
}

func NewFlowHandler(
	sessions *usecase.SessionUseCase,
	reserve *usecase.ReserveUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	bookings *usecase.BookingsUseCase,
	orders ordersport.Repository,
	qr port.QRRenderer,
) *FlowHandler {
	return &FlowHandler{
		sessions: sessions,
		reserve:  reserve,
		cart:     cart,
		checkout: checkout,
		bookings: bookings,
		orders:   orders,
		qr:       qr,
		mapper:   newFlowErrorMapper(),
	}
}

// Register mounts the customer routes under /api.
func (h *FlowHandler) Register(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/session", h.startSession)
	api.GET("/session", h.getSession)

	api.GET("/reservations/options", h.reservationOptions)
	api.POST("/reservations", h.submitReservation)

	api.GET("/menu", h.menu)

	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.addCartItem)
	api.PATCH("/cart/items/:itemId", h.setCartQuantity)
	api.DELETE("/cart/items/:itemId", h.removeCartItem)

	api.POST("/checkout", h.beginCheckout)
	api.POST("/checkout/confirm", h.confirmCheckout)
	api.GET("/confirmation", h.confirmation)

	api.GET("/bookings", h.listBookings)
	api.POST("/bookings/:id/cancel", h.cancelBooking)

	api.GET("/orders/:number/qr", h.orderQR)
}

func (h *FlowHandler) startSession(c echo.Context) error {
	session, err := h.sessions.Start(c.Request().Context())
	if err != nil {
		slog.Error("session start failed", slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to start session"})
	}
	return c.JSON(http.StatusCreated, session)
}

func (h *FlowHandler) getSession(c echo.Context) error {
	session, err := h.sessions.Get(c.Request().Context(), h.sessionID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *FlowHandler) reservationOptions(c echo.Context) error {
	partySize, err := strconv.Atoi(c.QueryParam("partySize"))
	if err != nil || partySize < 1 {
		partySize = reservations.MinPartySize
	}
	return c.JSON(http.StatusOK, h.reserve.Options(partySize))
}

func (h *FlowHandler) submitReservation(c echo.Context) error {
	var draft reservations.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	session, err := h.reserve.Submit(c.Request().Context(), h.sessionID(c), draft)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *FlowHandler) menu(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"categories": menu.Catalog()})
}

func (h *FlowHandler) getCart(c echo.Context) error {
	view, err := h.cart.Get(c.Request().Context(), h.sessionID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

type addItemRequest struct {
	ItemID int `json:"itemId"`
}

func (h *FlowHandler) addCartItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	view, err := h.cart.AddItem(c.Request().Context(), h.sessionID(c), req.ItemID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *FlowHandler) setCartQuantity(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	view, err := h.cart.SetQuantity(c.Request().Context(), h.sessionID(c), itemID, req.Quantity)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *FlowHandler) removeCartItem(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	view, err := h.cart.RemoveItem(c.Request().Context(), h.sessionID(c), itemID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *FlowHandler) beginCheckout(c echo.Context) error {
	summary, err := h.checkout.Begin(c.Request().Context(), h.sessionID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *FlowHandler) confirmCheckout(c echo.Context) error {
	var req usecase.ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	confirmation, err := h.checkout.Confirm(c.Request().Context(), h.sessionID(c), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, confirmation)
}

func (h *FlowHandler) confirmation(c echo.Context) error {
	confirmation, err := h.checkout.Confirmation(c.Request().Context(), h.sessionID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, confirmation)
}

func (h *FlowHandler) listBookings(c echo.Context) error {
	bookings, err := h.bookings.List(c.Request().Context(), h.sessionID(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"bookings": bookings})
}

func (h *FlowHandler) cancelBooking(c echo.Context) error {
	bookings, err := h.bookings.Cancel(c.Request().Context(), h.sessionID(c), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"bookings": bookings})
}

func (h *FlowHandler) orderQR(c echo.Context) error {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order number")
	}
	if _, err := h.orders.GetByNumber(c.Request().Context(), number); err != nil {
		return h.respondError(c, err)
	}
	png, err := h.qr.Render(number)
	if err != nil {
		slog.Error("qr render failed", slog.Int64("orderNumber", number), slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to render qr"})
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *FlowHandler) sessionID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(SessionHeader))
}

func (h *FlowHandler) respondError(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	message := info.Message
	if message == "" {
		message = err.Error()
	}
	if info.Status >= http.StatusInternalServerError {
		slog.Error("order flow request failed", slog.String("path", c.Path()), slog.Any("error", err))
	}
	body := map[string]string{"error": message}
	if info.Redirect != "" {
		body["redirect"] = info.Redirect
	}
	return c.JSON(info.Status, body)
}
