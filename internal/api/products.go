package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListParams are the optional storefront listing filters, passed through as
// query parameters.
type ListParams struct {
	Category string
	Query    string
	MinPrice float64
	MaxPrice float64
	Sort     string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if p.MinPrice > 0 {
		q.Set("minPrice", strconv.FormatFloat(p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice > 0 {
		q.Set("maxPrice", strconv.FormatFloat(p.MaxPrice, 'f', -1, 64))
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

// ListProducts fetches the storefront product list.
func (c *Client) ListProducts(ctx context.Context, params ListParams) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products", params.values(), "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches one product by id (admin edit pre-fill).
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	var out Product
	err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, "", nil, &out)
	return out, err
}

// GetProductBySlug fetches one product by slug (storefront detail page).
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (Product, error) {
	var out Product
	err := c.do(ctx, http.MethodGet, "/products/slug/"+url.PathEscape(slug), nil, "", nil, &out)
	return out, err
}

// adminPage is the wire shape of the admin listing response.
type adminPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}

// AdminProducts fetches one page of the admin catalog. page is 1-based.
func (c *Client) AdminProducts(ctx context.Context, token string, page int) (Page[Product], error) {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))

	var wire adminPage
	if err := c.do(ctx, http.MethodGet, "/products/admin", q, token, nil, &wire); err != nil {
		return Page[Product]{}, err
	}
	return Page[Product]{Items: wire.Products, Number: wire.Page, TotalPages: wire.Pages}, nil
}

// createdProduct is the wire shape of the create response.
type createdProduct struct {
	Product Product `json:"product"`
}

// CreateProduct creates a product with backend defaults and returns it.
func (c *Client) CreateProduct(ctx context.Context, token string) (Product, error) {
	var wire createdProduct
	if err := c.do(ctx, http.MethodPost, "/products", nil, token, struct{}{}, &wire); err != nil {
		return Product{}, err
	}
	return wire.Product, nil
}

// UpdateProduct sends the full product record to the backend.
func (c *Client) UpdateProduct(ctx context.Context, token string, p Product) error {
	return c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(p.ID), nil, token, p, nil)
}

// DeleteProduct deletes a product.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, token, nil, nil)
}
