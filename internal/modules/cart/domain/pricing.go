package domain

import "savoria/internal/shared/money"

// Subtotal is the exact sum of unitPrice x quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var subtotal int64
	for _, line := range c.Lines {
		subtotal += line.UnitPrice * int64(line.Quantity)
	}
	return subtotal
}

// Totals derives the cart-page breakdown: subtotal plus the fixed 10% tax.
func (c *Cart) Totals() money.Totals {
	subtotal := c.Subtotal()
	tax := money.ApplyBps(subtotal, money.TaxRateBps)
	return money.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// CheckoutTotals derives the checkout breakdown: subtotal, tax, and a 10%
// service fee on the subtotal. The fee is itemized instead of compounding the
// tax a second time.
func (c *Cart) CheckoutTotals() money.Totals {
	subtotal := c.Subtotal()
	tax := money.ApplyBps(subtotal, money.TaxRateBps)
	fee := money.ApplyBps(subtotal, money.ServiceFeeRateBps)
	return money.Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		ServiceFee: fee,
		Total:      subtotal + tax + fee,
	}
}
