package api

import (
	"context"
	"net/http"
)

type signInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn exchanges credentials for a session identity. The returned token is
// carried opaquely; this app never decodes or refreshes it.
func (c *Client) SignIn(ctx context.Context, email, password string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodPost, "/users/signin", nil, "", signInInput{Email: email, Password: password}, &out)
	return out, err
}
