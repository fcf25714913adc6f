package api

// Product is the backend's product record.
type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Image        string  `json:"image"`
	Brand        string  `json:"brand"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	CountInStock int     `json:"countInStock"`
	Rating       float64 `json:"rating"`
	NumReviews   int     `json:"numReviews"`
}

// Page is one fetched batch of a paginated listing. A new fetch replaces the
// previous page wholesale; pages are never merged.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
}

// Address is the shipping address as sent to the order endpoint.
type Address struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderItem is one order line as sent to and returned by the backend.
type OrderItem struct {
	Product  string  `json:"product"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderInput is the order-creation body. The four price fields must satisfy
// TotalPrice = ItemsPrice + ShippingPrice + TaxPrice.
type OrderInput struct {
	OrderItems      []OrderItem `json:"orderItems"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	ItemsPrice      float64     `json:"itemsPrice"`
	ShippingPrice   float64     `json:"shippingPrice"`
	TaxPrice        float64     `json:"taxPrice"`
	TotalPrice      float64     `json:"totalPrice"`
}

// Order is a created order as returned by the backend.
type Order struct {
	ID              string      `json:"_id"`
	OrderItems      []OrderItem `json:"orderItems"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	ItemsPrice      float64     `json:"itemsPrice"`
	ShippingPrice   float64     `json:"shippingPrice"`
	TaxPrice        float64     `json:"taxPrice"`
	TotalPrice      float64     `json:"totalPrice"`
	IsPaid          bool        `json:"isPaid"`
	IsDelivered     bool        `json:"isDelivered"`
	CreatedAt       string      `json:"createdAt"`
}

// User is the session identity returned by sign-in. Token is opaque to this
// app and only ever forwarded.
type User struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// UploadResult is the hosted image reference returned by the upload endpoint.
type UploadResult struct {
	URL string `json:"secure_url"`
}
