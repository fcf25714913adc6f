// Package pricing computes order totals from cart contents. Totals are
// derived on every evaluation and never stored, so they cannot drift from
// the cart.
package pricing

import (
	"math"

	"github.com/ignacioainol/Mern-Amazona/internal/modules/cart"
)

const (
	// Orders strictly above this item total ship free.
	DefaultShippingThreshold = 100
	// Flat shipping price below the threshold.
	DefaultShippingFlat = 10
	// Tax applied to the item total.
	DefaultTaxRate = 0.15
)

// epsilon is the IEEE-754 machine epsilon (2^-52), added before rounding to
// counteract float representation error. Note it is deliberately tiny:
// 85.005*100 = 8500.499999999998 still rounds DOWN to 85.00. That behavior
// is the contract, not a bug.
const epsilon = 2.220446049250313e-16

// Totals is a derived order price breakdown, all fields rounded to cents.
type Totals struct {
	Items    float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Options override the pricing constants.
type Options struct {
	ShippingThreshold float64
	ShippingFlat      float64
	TaxRate           float64
}

// DefaultOptions returns the storefront defaults.
func DefaultOptions() Options {
	return Options{
		ShippingThreshold: DefaultShippingThreshold,
		ShippingFlat:      DefaultShippingFlat,
		TaxRate:           DefaultTaxRate,
	}
}

// Compute calculates totals for the given lines with the default options.
func Compute(lines []cart.Line) Totals {
	return ComputeWith(lines, DefaultOptions())
}

// ComputeWith calculates totals for the given lines.
//
// The total is the sum of the three already-rounded components and is NOT
// re-rounded; re-rounding the sum would diverge by a cent in edge cases.
// An item total exactly equal to the threshold is not free shipping.
func ComputeWith(lines []cart.Line, opts Options) Totals {
	if len(lines) == 0 {
		return Totals{}
	}

	items := 0.0
	for _, l := range lines {
		items += l.Price * float64(l.Quantity)
	}
	items = Round2(items)

	shipping := Round2(opts.ShippingFlat)
	if items > opts.ShippingThreshold {
		shipping = 0
	}

	tax := Round2(opts.TaxRate * items)

	return Totals{
		Items:    items,
		Shipping: shipping,
		Tax:      tax,
		Total:    items + shipping + tax,
	}
}

// Round2 rounds to two fractional digits, half up on the scaled value after
// the epsilon nudge.
func Round2(x float64) float64 {
	return math.Round(x*100+epsilon) / 100
}
