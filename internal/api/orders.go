package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// createdOrder is the wire shape of the order-creation response.
type createdOrder struct {
	Order Order `json:"order"`
}

// CreateOrder places an order from the cart snapshot and returns the created
// order with its identifier. Each attempt carries a fresh idempotency key so
// the backend can drop a duplicate submit of the same attempt.
func (c *Client) CreateOrder(ctx context.Context, token string, in OrderInput) (Order, error) {
	var wire createdOrder
	err := c.do(ctx, http.MethodPost, "/orders", nil, token, in, &wire,
		withHeader("Idempotency-Key", uuid.NewString()))
	if err != nil {
		return Order{}, err
	}
	return wire.Order, nil
}

// GetOrder fetches one order for its detail view.
func (c *Client) GetOrder(ctx context.Context, token, id string) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, token, nil, &out)
	return out, err
}
