package view

// ShippingForm carries the shipping address form values.
type ShippingForm struct {
	FullName   string
	Address    string
	City       string
	PostalCode string
	Country    string
}

// PaymentOption is one selectable payment method.
type PaymentOption struct {
	Name     string
	Selected bool
}

// OrderSummaryVM is the totals box on the place-order and order pages.
type OrderSummaryVM struct {
	Items    float64
	Shipping float64
	Tax      float64
	Total    float64
}

// PlaceOrderVM backs the place-order review page.
type PlaceOrderVM struct {
	FullName      string
	AddressLine   string
	PaymentMethod string
	Items         []CartItemVM
	Summary       OrderSummaryVM
	CanSubmit     bool
}

// OrderVM backs the order detail page.
type OrderVM struct {
	ID            string
	FullName      string
	AddressLine   string
	PaymentMethod string
	Items         []CartItemVM
	Summary       OrderSummaryVM
	IsPaid        bool
	IsDelivered   bool
}
