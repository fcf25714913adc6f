package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignacioainol/Mern-Amazona/internal/modules/cart"
)

func lines(ls ...cart.Line) []cart.Line { return ls }

func TestComputeEmptyCart(t *testing.T) {
	got := Compute(nil)
	assert.Equal(t, Totals{}, got)

	got = Compute([]cart.Line{})
	assert.Equal(t, Totals{}, got)
}

func TestComputeBasic(t *testing.T) {
	got := Compute(lines(
		cart.Line{Price: 20, Quantity: 2},
		cart.Line{Price: 5.5, Quantity: 1},
	))

	assert.Equal(t, 45.5, got.Items)
	assert.Equal(t, 10.0, got.Shipping)
	assert.Equal(t, 6.83, got.Tax) // round2(0.15 * 45.50)
	assert.Equal(t, got.Items+got.Shipping+got.Tax, got.Total)
}

func TestComputeThresholdIsExclusive(t *testing.T) {
	// Items exactly 100.00: NOT free shipping.
	got := Compute(lines(cart.Line{Price: 50, Quantity: 2}))
	assert.Equal(t, 100.0, got.Items)
	assert.Equal(t, 10.0, got.Shipping)

	// One cent over: free.
	got = Compute(lines(cart.Line{Price: 100.01, Quantity: 1}))
	assert.Equal(t, 0.0, got.Shipping)
}

func TestComputeEpsilonRoundingPolicy(t *testing.T) {
	// 30*2 + 25.005 = 85.005, whose float representation scales to
	// 8500.499999999998; the reference epsilon does not lift it to .5, so
	// it rounds down to 85.00.
	got := Compute(lines(
		cart.Line{Price: 30, Quantity: 2},
		cart.Line{Price: 25.005, Quantity: 1},
	))

	assert.Equal(t, 85.00, got.Items)
	assert.Equal(t, 10.0, got.Shipping)
	assert.Equal(t, Round2(0.15*85.00), got.Tax)
	assert.Equal(t, got.Items+got.Shipping+got.Tax, got.Total)
}

func TestComputeTotalIsExactSum(t *testing.T) {
	cases := [][]cart.Line{
		lines(cart.Line{Price: 0.01, Quantity: 1}),
		lines(cart.Line{Price: 19.99, Quantity: 3}),
		lines(cart.Line{Price: 123.45, Quantity: 2}, cart.Line{Price: 0.99, Quantity: 7}),
		lines(cart.Line{Price: 33.335, Quantity: 3}),
	}
	for _, c := range cases {
		got := Compute(c)
		assert.Equal(t, got.Items+got.Shipping+got.Tax, got.Total)
		assert.GreaterOrEqual(t, got.Items, 0.0)
		assert.GreaterOrEqual(t, got.Shipping, 0.0)
		assert.GreaterOrEqual(t, got.Tax, 0.0)
		assert.GreaterOrEqual(t, got.Total, 0.0)
	}
}

func TestComputeWithOverrides(t *testing.T) {
	got := ComputeWith(
		lines(cart.Line{Price: 10, Quantity: 1}),
		Options{ShippingThreshold: 5, ShippingFlat: 99, TaxRate: 0.5},
	)

	assert.Equal(t, 10.0, got.Items)
	assert.Equal(t, 0.0, got.Shipping) // 10 > 5
	assert.Equal(t, 5.0, got.Tax)
	assert.Equal(t, 15.0, got.Total)
}

func TestRound2(t *testing.T) {
	// 1.005*100 is 100.49999999999999 in float64; the epsilon does not lift
	// it over the half, so it rounds down. Same contract as the reference.
	assert.Equal(t, 1.00, Round2(1.005))
	assert.Equal(t, 2.67, Round2(2.675))
	assert.Equal(t, 1.01, Round2(1.0051))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 10.0, Round2(10))
}
