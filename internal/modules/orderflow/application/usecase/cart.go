package usecase

import (
	"context"
	"errors"
	"time"

	cart "savoria/internal/modules/cart/domain"
	menu "savoria/internal/modules/menu/domain"
	"savoria/internal/modules/orderflow/application/port"
	"savoria/internal/shared/money"
)

// ErrUnknownMenuItem rejects cart mutations that reference an item id not in
// the catalog.
var ErrUnknownMenuItem = errors.New("unknown menu item")

// CartView is the cart page projection: the lines plus the running totals.
type CartView struct {
	Lines  []cart.Line  `json:"lines"`
	Totals money.Totals `json:"totals"`
}

// CartUseCase mutates the session cart against the static menu catalog.
type CartUseCase struct {
	store port.SessionStore
	now   func() time.Time
}

func NewCartUseCase(store port.SessionStore) *CartUseCase {
	return &CartUseCase{store: store, now: time.Now}
}

// Get returns the current cart with totals.
func (uc *CartUseCase) Get(ctx context.Context, sessionID string) (CartView, error) {
	session, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Lines: session.Cart.Lines, Totals: session.Cart.Totals()}, nil
}

// AddItem adds one unit of the catalog item to the cart.
func (uc *CartUseCase) AddItem(ctx context.Context, sessionID string, itemID int) (CartView, error) {
	item, ok := menu.FindItem(itemID)
	if !ok {
		return CartView{}, ErrUnknownMenuItem
	}
	session, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	session.Cart.Add(item.ID, item.Name, item.Price)
	session.MarkOrdering(uc.now().UTC())
	if err := uc.store.Save(ctx, session); err != nil {
		return CartView{}, err
	}
	return CartView{Lines: session.Cart.Lines, Totals: session.Cart.Totals()}, nil
}

// SetQuantity replaces the quantity of a cart line; zero removes the line.
func (uc *CartUseCase) SetQuantity(ctx context.Context, sessionID string, itemID, quantity int) (CartView, error) {
	if _, ok := menu.FindItem(itemID); !ok {
		return CartView{}, ErrUnknownMenuItem
	}
	session, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	session.Cart.SetQuantity(itemID, quantity)
	session.MarkOrdering(uc.now().UTC())
	if err := uc.store.Save(ctx, session); err != nil {
		return CartView{}, err
	}
	return CartView{Lines: session.Cart.Lines, Totals: session.Cart.Totals()}, nil
}

// RemoveItem drops a line from the cart. Removing an absent item succeeds.
func (uc *CartUseCase) RemoveItem(ctx context.Context, sessionID string, itemID int) (CartView, error) {
	session, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	session.Cart.Remove(itemID)
	session.MarkOrdering(uc.now().UTC())
	if err := uc.store.Save(ctx, session); err != nil {
		return CartView{}, err
	}
	return CartView{Lines: session.Cart.Lines, Totals: session.Cart.Totals()}, nil
}
