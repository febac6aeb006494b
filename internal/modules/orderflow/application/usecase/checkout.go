package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cart "savoria/internal/modules/cart/domain"
	"savoria/internal/modules/orderflow/application/port"
	"savoria/internal/modules/orderflow/domain"
	ordersport "savoria/internal/modules/orders/application/port"
	orders "savoria/internal/modules/orders/domain"
	realtime "savoria/internal/modules/realtime/domain"
	reservations "savoria/internal/modules/reservations/domain"
	"savoria/internal/shared/money"
)

// CheckoutSummary is the checkout page projection: the immutable reservation,
// the cart lines, and the full breakdown including the service fee.
type CheckoutSummary struct {
	Reservation reservations.Draft `json:"reservation"`
	Lines       []cart.Line        `json:"lines"`
	Totals      money.Totals       `json:"totals"`
}

// Confirmation is the post-checkout projection rendered to the customer.
type Confirmation struct {
	OrderID       string               `json:"orderId"`
	OrderNumber   int64                `json:"orderNumber"`
	Reference     string               `json:"reference"`
	Reservation   reservations.Draft   `json:"reservation"`
	Lines         []cart.Line          `json:"lines"`
	Totals        money.Totals         `json:"totals"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

// ConfirmRequest carries the checkout form submission.
type ConfirmRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Card          domain.CardDetails   `json:"card"`
	CustomerNotes string               `json:"customerNotes"`
}

// CheckoutUseCase drives the checkout step: gate checks, payment, durable
// order creation, and the created event.
type CheckoutUseCase struct {
	sessions  port.SessionStore
	bookings  port.BookingStore
	gateway   port.PaymentGateway
	orders    ordersport.Repository
	publisher ordersport.EventPublisher
	now       func() time.Time
}

func NewCheckoutUseCase(sessions port.SessionStore, bookings port.BookingStore, gateway port.PaymentGateway, repo ordersport.Repository, publisher ordersport.EventPublisher) *CheckoutUseCase {
	return &CheckoutUseCase{
		sessions:  sessions,
		bookings:  bookings,
		gateway:   gateway,
		orders:    repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Begin verifies the checkout gates, advances the session, and returns the
// summary the checkout screen renders.
func (uc *CheckoutUseCase) Begin(ctx context.Context, sessionID string) (CheckoutSummary, error) {
	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return CheckoutSummary{}, err
	}
	if err := session.BeginCheckout(uc.now().UTC()); err != nil {
		return CheckoutSummary{}, err
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return CheckoutSummary{}, err
	}
	return CheckoutSummary{
		Reservation: *session.Reservation,
		Lines:       session.Cart.Lines,
		Totals:      session.Cart.CheckoutTotals(),
	}, nil
}

// Confirm settles the payment and creates the durable order record. The gates
// are re-checked here so a stale client cannot confirm around them; nothing is
// charged or stored when any check fails.
func (uc *CheckoutUseCase) Confirm(ctx context.Context, sessionID string, req ConfirmRequest) (Confirmation, error) {
	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return Confirmation{}, err
	}
	if session.ConfirmationReady() {
		// Resubmitted confirmation returns the existing outcome instead of
		// charging twice.
		return uc.loadConfirmation(ctx, session)
	}
	if session.Reservation == nil {
		return Confirmation{}, domain.ErrNoReservation
	}
	if session.Cart.IsEmpty() {
		return Confirmation{}, domain.ErrEmptyCart
	}
	if err := domain.ValidatePayment(req.PaymentMethod, req.Card); err != nil {
		return Confirmation{}, err
	}

	totals := session.Cart.CheckoutTotals()
	if err := uc.gateway.Charge(ctx, totals.Total, req.PaymentMethod); err != nil {
		return Confirmation{}, err
	}

	now := uc.now().UTC()
	order := orders.Order{
		ID:              uuid.NewString(),
		CustomerID:      session.ID,
		CustomerName:    session.Reservation.Contact.Name,
		CustomerEmail:   session.Reservation.Contact.Email,
		ReservationDate: session.Reservation.Date,
		ReservationTime: session.Reservation.Time,
		Guests:          session.Reservation.Guests,
		TableID:         session.Reservation.TableID,
		Items:           orderItems(session.Cart.Lines),
		TotalAmount:     totals.Total,
		Status:          orders.StatusPending,
		PaymentMethod:   string(req.PaymentMethod),
		CustomerNotes:   req.CustomerNotes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.orders.Insert(ctx, &order); err != nil {
		return Confirmation{}, fmt.Errorf("insert order: %w", err)
	}

	session.CustomerNotes = req.CustomerNotes
	if err := session.Confirm(req.PaymentMethod, order.ID, order.OrderNumber, now); err != nil {
		return Confirmation{}, err
	}

	uc.appendBooking(ctx, session, totals.Total)

	// The flow is done with the cart; the order record is the source of truth
	// from here on.
	session.Cart.Clear()
	if err := uc.sessions.Save(ctx, session); err != nil {
		return Confirmation{}, err
	}

	uc.publishCreated(ctx, order)

	return confirmationFromOrder(session, order), nil
}

// Confirmation returns the stored outcome, rejecting sessions that have not
// completed checkout.
func (uc *CheckoutUseCase) Confirmation(ctx context.Context, sessionID string) (Confirmation, error) {
	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return Confirmation{}, err
	}
	if !session.ConfirmationReady() {
		return Confirmation{}, domain.ErrNotConfirmed
	}
	return uc.loadConfirmation(ctx, session)
}

func (uc *CheckoutUseCase) loadConfirmation(ctx context.Context, session *domain.Session) (Confirmation, error) {
	order, err := uc.orders.Get(ctx, session.OrderID)
	if err != nil {
		return Confirmation{}, err
	}
	return confirmationFromOrder(session, order), nil
}

func confirmationFromOrder(session *domain.Session, order orders.Order) Confirmation {
	lines := cartLines(order.Items)
	rebuilt := cart.Cart{Lines: lines}
	return Confirmation{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Reference:     fmt.Sprintf("ORD-%d", order.OrderNumber),
		Reservation:   *session.Reservation,
		Lines:         lines,
		Totals:        rebuilt.CheckoutTotals(),
		PaymentMethod: session.PaymentMethod,
	}
}

func (uc *CheckoutUseCase) appendBooking(ctx context.Context, session *domain.Session, total int64) {
	history, err := uc.bookings.List(ctx, session.ID)
	if err != nil {
		slog.Warn("booking history load failed", slog.String("sessionId", session.ID), slog.Any("error", err))
		history = nil
	}
	history = append(history, domain.BookingFromSession(session, total))
	if err := uc.bookings.Save(ctx, session.ID, history); err != nil {
		slog.Warn("booking history save failed", slog.String("sessionId", session.ID), slog.Any("error", err))
	}
}

func (uc *CheckoutUseCase) publishCreated(ctx context.Context, order orders.Order) {
	msg := &realtime.Message{
		Topic:      realtime.CreatedTopic(realtime.OrdersEntity),
		Entity:     realtime.OrdersEntity,
		Action:     realtime.ActionCreated,
		ResourceID: order.ID,
		Data:       map[string]any{"order": order},
		Timestamp:  uc.now().UTC(),
	}
	if err := uc.publisher.Publish(ctx, msg); err != nil {
		slog.Error("order created event publish failed", slog.String("orderId", order.ID), slog.Any("error", err))
	}
}

func orderItems(lines []cart.Line) []orders.Item {
	items := make([]orders.Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, orders.Item{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}
	return items
}

func cartLines(items []orders.Item) []cart.Line {
	lines := make([]cart.Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, cart.Line{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return lines
}
