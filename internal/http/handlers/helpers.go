// Package handlers holds the gin handlers, one struct per screen group.
package handlers

import (
	"strings"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/modules/cart"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// safeRedirect keeps post-login redirects on this site. Anything that is not
// a local path falls back to home.
func safeRedirect(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return "/"
	}
	return target
}

func productCardVM(p api.Product) view.ProductCardVM {
	return view.ProductCardVM{
		Name:         p.Name,
		Slug:         p.Slug,
		ImageURL:     p.Image,
		Brand:        p.Brand,
		Price:        p.Price,
		Rating:       p.Rating,
		NumReviews:   p.NumReviews,
		CountInStock: p.CountInStock,
	}
}

func productDetailVM(p api.Product) view.ProductDetailVM {
	return view.ProductDetailVM{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		ImageURL:     p.Image,
		Brand:        p.Brand,
		Category:     p.Category,
		Description:  p.Description,
		Price:        p.Price,
		CountInStock: p.CountInStock,
		Rating:       p.Rating,
		NumReviews:   p.NumReviews,
	}
}

func cartItemVMs(lines []cart.Line) []view.CartItemVM {
	items := make([]view.CartItemVM, 0, len(lines))
	for _, l := range lines {
		items = append(items, view.CartItemVM{
			ProductID: l.ProductID,
			Slug:      l.Slug,
			Name:      l.Name,
			ImageURL:  l.Image,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}
	return items
}

func orderItemVMs(items []api.OrderItem) []view.CartItemVM {
	out := make([]view.CartItemVM, 0, len(items))
	for _, it := range items {
		out = append(out, view.CartItemVM{
			ProductID: it.Product,
			Slug:      it.Slug,
			Name:      it.Name,
			ImageURL:  it.Image,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return out
}

func addressLine(a cart.Address) string {
	return a.Address + ", " + a.City + ", " + a.PostalCode + ", " + a.Country
}

func apiAddressLine(a api.Address) string {
	return a.Address + ", " + a.City + ", " + a.PostalCode + ", " + a.Country
}
