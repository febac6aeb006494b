package domain

import "testing"

func TestNormalizeOrder(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		raw := map[string]any{
			"id":          "ord-1",
			"orderNumber": float64(100042),
			"customerId":  "sess-1",
			"status":      "PENDING",
			"totalAmount": float64(2400),
			"items": []any{
				map[string]any{"itemId": float64(1), "name": "Bruschetta", "unitPrice": float64(829), "quantity": float64(2)},
			},
		}
		order, ok := NormalizeOrder(raw)
		if !ok {
			t.Fatalf("expected order to normalize")
		}
		if order.OrderNumber != 100042 {
			t.Fatalf("expected order number 100042, got %d", order.OrderNumber)
		}
		if order.Status != StatusPending {
			t.Fatalf("expected pending status, got %q", order.Status)
		}
		if len(order.Items) != 1 || order.Items[0].UnitPrice != 829 {
			t.Fatalf("unexpected items: %+v", order.Items)
		}
	})

	t.Run("missing id rejected", func(t *testing.T) {
		if _, ok := NormalizeOrder(map[string]any{"status": "pending"}); ok {
			t.Fatalf("expected normalization to fail without id")
		}
	})
}

func TestBuildOrderDetail(t *testing.T) {
	payload := map[string]any{
		"data": map[string]any{
			"order": map[string]any{"id": "ord-2", "status": "approved"},
		},
	}
	order, ok := BuildOrderDetail(payload)
	if !ok {
		t.Fatalf("expected detail to build")
	}
	if order.ID != "ord-2" || order.Status != StatusApproved {
		t.Fatalf("unexpected order: %+v", order)
	}

	if _, ok := BuildOrderDetail(nil); ok {
		t.Fatalf("expected nil payload to fail")
	}
}
