package domain

import (
	"fmt"
	"time"

	cart "savoria/internal/modules/cart/domain"
	reservations "savoria/internal/modules/reservations/domain"
)

// BookingStatus is the customer-facing lifecycle of a historical booking.
type BookingStatus string

const (
	BookingUpcoming  BookingStatus = "upcoming"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is one entry in the customer's reservation history. Total is in
// minor units.
type Booking struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Guests      int           `json:"guests"`
	TableID     int           `json:"tableId"`
	Name        string        `json:"name"`
	Status      BookingStatus `json:"status"`
	OrderNumber string        `json:"orderNumber"`
	Items       []cart.Line   `json:"items"`
	Total       int64         `json:"total"`
}

// SeedBookings returns the two example entries shown to a customer with no
// history yet: one upcoming visit and one past one. Totals follow the same
// checkout breakdown real bookings store: subtotal + 10% tax + 10% fee.
func SeedBookings(now time.Time) []Booking {
	return []Booking{
		{
			ID:          "1",
			Date:        now.AddDate(0, 0, 2).Format(reservations.DateLayout),
			Time:        "7:00 PM",
			Guests:      2,
			TableID:     3,
			Name:        "John Doe",
			Status:      BookingUpcoming,
			OrderNumber: "ORD-10001",
			Items: []cart.Line{
				{ItemID: 5, Name: "Grilled Salmon", UnitPrice: 2074, Quantity: 1},
				{ItemID: 1, Name: "Bruschetta", UnitPrice: 829, Quantity: 1},
			},
			Total: 3483,
		},
		{
			ID:          "2",
			Date:        now.AddDate(0, 0, -3).Format(reservations.DateLayout),
			Time:        "6:30 PM",
			Guests:      4,
			TableID:     5,
			Name:        "John Doe",
			Status:      BookingCompleted,
			OrderNumber: "ORD-10000",
			Items: []cart.Line{
				{ItemID: 4, Name: "Filet Mignon", UnitPrice: 2904, Quantity: 2},
				{ItemID: 6, Name: "Truffle Risotto", UnitPrice: 1825, Quantity: 1},
			},
			Total: 9159,
		},
	}
}

// BookingFromSession converts a confirmed session into a history entry.
func BookingFromSession(s *Session, total int64) Booking {
	return Booking{
		ID:          s.OrderID,
		Date:        s.Reservation.Date,
		Time:        s.Reservation.Time,
		Guests:      s.Reservation.Guests,
		TableID:     s.Reservation.TableID,
		Name:        s.Reservation.Contact.Name,
		Status:      BookingUpcoming,
		OrderNumber: fmt.Sprintf("ORD-%d", s.OrderNumber),
		Items:       append([]cart.Line{}, s.Cart.Lines...),
		Total:       total,
	}
}

// CancelBooking marks the matching entry cancelled, reporting whether it was
// found.
func CancelBooking(bookings []Booking, id string) ([]Booking, bool) {
	found := false
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = BookingCancelled
			found = true
		}
	}
	return bookings, found
}
