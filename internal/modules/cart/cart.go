// Package cart holds the client-side cart aggregate. The backend never sees
// it until an order is placed; between requests it lives in a signed cookie.
package cart

import "strings"

// Line is one product in the cart, snapshotted at add time.
type Line struct {
	ProductID string  `json:"product_id"`
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Address is the shipping address captured during checkout.
type Address struct {
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// IsSet reports whether an address has been captured. Checkout steps gate on
// this before rendering.
func (a Address) IsSet() bool {
	return strings.TrimSpace(a.Address) != ""
}

// Cart is the full cart snapshot.
type Cart struct {
	Lines []Line `json:"lines"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: []Line{}}
}

// Add puts a line in the cart. Adding a product already present replaces its
// quantity with the new one rather than accumulating.
func (c *Cart) Add(l Line) {
	if l.ProductID == "" || l.Quantity < 1 {
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == l.ProductID {
			c.Lines[i] = l
			return
		}
	}
	c.Lines = append(c.Lines, l)
}

// UpdateQuantity sets the quantity for a product. Zero or negative removes
// the line.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Remove drops a product from the cart.
func (c *Cart) Remove(productID string) {
	out := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	c.Lines = out
}

// Clear empties the cart. Shipping address and payment method are stored
// separately and survive.
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Checkout is the durable checkout progress: the shipping address and the
// chosen payment method name. It outlives order placement.
type Checkout struct {
	ShippingAddress Address `json:"shipping_address"`
	PaymentMethod   string  `json:"payment_method"`
}
