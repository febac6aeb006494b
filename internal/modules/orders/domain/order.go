package domain

import (
	"time"

	"savoria/internal/shared/normalization"
)

// Item is one pre-ordered line as frozen into the order record.
type Item struct {
	ItemID    int    `json:"itemId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// Order is the durable, admin-visible representation of a confirmed checkout,
// independent of the UI session that created it. TotalAmount is in minor
// units. Records are never deleted; only the admin review fields mutate.
type Order struct {
	ID              string    `json:"id"`
	OrderNumber     int64     `json:"orderNumber"`
	CustomerID      string    `json:"customerId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	ReservationDate string    `json:"reservationDate"`
	ReservationTime string    `json:"reservationTime"`
	Guests          int       `json:"guests"`
	TableID         int       `json:"tableId"`
	Items           []Item    `json:"items"`
	TotalAmount     int64     `json:"totalAmount"`
	Status          Status    `json:"status"`
	PaymentMethod   string    `json:"paymentMethod"`
	CustomerNotes   string    `json:"customerNotes,omitempty"`
	AdminNotes      string    `json:"adminNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// List aggregates orders for the admin view.
type List struct {
	Items []Order `json:"items"`
	Total int     `json:"total"`
}

// NormalizeOrder constructs an Order from a loosely typed map, as carried in
// broker event payloads.
func NormalizeOrder(raw map[string]any) (Order, bool) {
	id := normalization.AsString(raw["id"])
	if id == "" {
		return Order{}, false
	}

	order := Order{
		ID:              id,
		OrderNumber:     normalization.AsInt64(raw["orderNumber"]),
		CustomerID:      normalization.AsString(raw["customerId"]),
		CustomerName:    normalization.AsString(raw["customerName"]),
		CustomerEmail:   normalization.AsString(raw["customerEmail"]),
		ReservationDate: normalization.AsString(raw["reservationDate"]),
		ReservationTime: normalization.AsString(raw["reservationTime"]),
		Guests:          normalization.AsInt(raw["guests"]),
		TableID:         normalization.AsInt(raw["tableId"]),
		TotalAmount:     normalization.AsInt64(raw["totalAmount"]),
		PaymentMethod:   normalization.AsString(raw["paymentMethod"]),
		CustomerNotes:   normalization.AsString(raw["customerNotes"]),
		AdminNotes:      normalization.AsString(raw["adminNotes"]),
	}
	order.Status = NormalizeStatus(raw["status"])

	for _, entry := range normalization.AsInterfaceSlice(raw["items"]) {
		rawItem, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		order.Items = append(order.Items, Item{
			ItemID:    normalization.AsInt(rawItem["itemId"]),
			Name:      normalization.AsString(rawItem["name"]),
			UnitPrice: normalization.AsInt64(rawItem["unitPrice"]),
			Quantity:  normalization.AsInt(rawItem["quantity"]),
		})
	}

	return order, true
}

// BuildOrderDetail extracts a single order projection from an event payload,
// unwrapping a nested "order" envelope when present.
func BuildOrderDetail(payload any) (*Order, bool) {
	container := normalization.MapFromPayload(payload)
	if len(container) == 0 {
		return nil, false
	}
	if nested, ok := container["order"].(map[string]any); ok {
		container = nested
	}
	order, ok := NormalizeOrder(container)
	if !ok {
		return nil, false
	}
	return &order, true
}
