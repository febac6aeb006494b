package money

import "fmt"

// Amounts are carried as int64 minor units (cents) end to end; floats only
// ever appear at display time through Format.

const (
	// TaxRateBps is the fixed tax rate in basis points (10%).
	TaxRateBps = 1000
	// ServiceFeeRateBps is the checkout service fee rate in basis points (10%).
	ServiceFeeRateBps = 1000

	bpsScale = 10000
)

// Totals is the derived price breakdown for a set of line items. ServiceFee is
// zero everywhere except the checkout step.
type Totals struct {
	Subtotal   int64 `json:"subtotal"`
	Tax        int64 `json:"tax"`
	ServiceFee int64 `json:"serviceFee,omitempty"`
	Total      int64 `json:"total"`
}

// ApplyBps applies a basis-point rate to an amount, rounding half up.
func ApplyBps(amount, bps int64) int64 {
	if amount <= 0 || bps <= 0 {
		return 0
	}
	return (amount*bps + bpsScale/2) / bpsScale
}

// Format renders a minor-unit amount with exactly two decimals.
func Format(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
