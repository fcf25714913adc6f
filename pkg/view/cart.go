package view

// CartItemVM is one cart row.
type CartItemVM struct {
	ProductID string
	Slug      string
	Name      string
	ImageURL  string
	Price     float64
	Quantity  int
}

// CartPageVM backs the cart page.
type CartPageVM struct {
	Items    []CartItemVM
	Count    int
	Subtotal float64
}
