package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/render"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

// Catalog serves the public storefront: the product grid and detail pages.
type Catalog struct {
	api *api.Client
}

func NewCatalog(apiClient *api.Client) *Catalog {
	return &Catalog{api: apiClient}
}

// Home runs the product list fetch through its lifecycle slice and renders
// whatever state it ends in. A failed fetch still renders the page, with the
// error box where the grid would be.
func (h *Catalog) Home(c *gin.Context) {
	params := api.ListParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}

	st := async.Run(async.State[[]api.Product]{}, func() ([]api.Product, error) {
		return h.api.ListProducts(c.Request.Context(), params)
	})

	vm := async.Map(st, func(ps []api.Product) []view.ProductCardVM {
		cards := make([]view.ProductCardVM, 0, len(ps))
		for _, p := range ps {
			cards = append(cards, productCardVM(p))
		}
		return cards
	})

	render.Component(c, http.StatusOK, pages.Home(middleware.GetFlash(c), vm))
}

// ProductDetail fetches one product by slug. The page status mirrors the
// backend's when the fetch fails, so a missing slug is a real 404.
func (h *Catalog) ProductDetail(c *gin.Context) {
	slug := c.Param("slug")

	var callErr error
	st := async.Run(async.State[api.Product]{}, func() (api.Product, error) {
		p, err := h.api.GetProductBySlug(c.Request.Context(), slug)
		callErr = err
		return p, err
	})

	vm := async.Map(st, productDetailVM)

	status := http.StatusOK
	if st.Status == async.StatusFailed {
		status = http.StatusBadGateway
		var ae *api.Error
		if errors.As(callErr, &ae) && ae.Status > 0 {
			status = ae.Status
		}
	}
	render.Component(c, status, pages.ProductDetail(middleware.GetFlash(c), vm))
}
