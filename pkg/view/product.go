package view

// ProductCardVM is one product tile on the storefront grid.
type ProductCardVM struct {
	Name         string
	Slug         string
	ImageURL     string
	Brand        string
	Price        float64
	Rating       float64
	NumReviews   int
	CountInStock int
}

// ProductDetailVM backs the product detail page.
type ProductDetailVM struct {
	ID           string
	Name         string
	Slug         string
	ImageURL     string
	Brand        string
	Category     string
	Description  string
	Price        float64
	CountInStock int
	Rating       float64
	NumReviews   int
}

// AdminProductRow is one row of the admin product table.
type AdminProductRow struct {
	ID       string
	Name     string
	Price    float64
	Category string
	Brand    string
}

// ProductForm carries the admin edit form values, pre-filled from the fetch
// slice and re-displayed on validation failure.
type ProductForm struct {
	ID           string
	Name         string
	Slug         string
	Price        string
	Image        string
	Category     string
	Brand        string
	CountInStock string
	Description  string
}
