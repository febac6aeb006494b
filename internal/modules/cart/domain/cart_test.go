package domain

import (
	"reflect"
	"testing"
)

func TestAdd(t *testing.T) {
	t.Run("same id twice yields one line with quantity 2", func(t *testing.T) {
		var cart Cart
		cart.Add(1, "Bruschetta", 829)
		cart.Add(1, "Bruschetta", 829)
		if len(cart.Lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(cart.Lines))
		}
		if cart.Lines[0].Quantity != 2 {
			t.Fatalf("expected quantity 2, got %d", cart.Lines[0].Quantity)
		}
	})

	t.Run("different ids append in order", func(t *testing.T) {
		var cart Cart
		cart.Add(1, "Bruschetta", 829)
		cart.Add(2, "Calamari", 1079)
		if len(cart.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(cart.Lines))
		}
		if cart.Lines[0].ItemID != 1 || cart.Lines[1].ItemID != 2 {
			t.Fatalf("unexpected line order: %+v", cart.Lines)
		}
	})
}

func TestSetQuantity(t *testing.T) {
	seed := func() Cart {
		var cart Cart
		cart.Add(1, "Bruschetta", 829)
		cart.Add(2, "Calamari", 1079)
		return cart
	}

	t.Run("replaces quantity", func(t *testing.T) {
		cart := seed()
		cart.SetQuantity(2, 5)
		if got := cart.Quantity(2); got != 5 {
			t.Fatalf("expected quantity 5, got %d", got)
		}
	})

	t.Run("zero behaves as remove", func(t *testing.T) {
		viaSet := seed()
		viaSet.SetQuantity(1, 0)

		viaRemove := seed()
		viaRemove.Remove(1)

		if !reflect.DeepEqual(viaSet.Lines, viaRemove.Lines) {
			t.Fatalf("SetQuantity(id,0) != Remove(id): %+v vs %+v", viaSet.Lines, viaRemove.Lines)
		}
	})

	t.Run("negative behaves as remove", func(t *testing.T) {
		cart := seed()
		cart.SetQuantity(1, -3)
		if cart.Quantity(1) != 0 {
			t.Fatalf("expected line removed, got quantity %d", cart.Quantity(1))
		}
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		cart := seed()
		cart.SetQuantity(99, 3)
		if len(cart.Lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(cart.Lines))
		}
	})
}

func TestRemove(t *testing.T) {
	var cart Cart
	cart.Add(1, "Bruschetta", 829)
	cart.Add(2, "Calamari", 1079)

	cart.Remove(1)
	if len(cart.Lines) != 1 || cart.Lines[0].ItemID != 2 {
		t.Fatalf("unexpected lines after remove: %+v", cart.Lines)
	}

	// Idempotent.
	cart.Remove(1)
	if len(cart.Lines) != 1 {
		t.Fatalf("expected remove of absent id to be a no-op, got %+v", cart.Lines)
	}
}

func TestClear(t *testing.T) {
	var cart Cart
	cart.Add(1, "Bruschetta", 829)
	cart.Clear()
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart.Lines)
	}
}
