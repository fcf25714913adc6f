package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// Home renders the storefront grid off the fetch slice: loading box while
// the slice is unresolved, error box on failure, otherwise the product grid.
func Home(fl *view.Flash, st async.State[[]view.ProductCardVM]) templ.Component {
	var sb strings.Builder
	sb.WriteString(`<h1>Featured Products</h1><div class="products">`)

	switch st.Status {
	case async.StatusFailed:
		writeErrorBox(&sb, st.Err)
	case async.StatusIdle, async.StatusLoading:
		writeLoadingBox(&sb)
	default:
		sb.WriteString(`<div class="row">`)
		for _, p := range st.Data {
			writeProductCard(&sb, p)
		}
		sb.WriteString(`</div>`)
	}

	sb.WriteString(`</div>`)
	return layout("Amazona", fl, sb.String())
}

func writeProductCard(sb *strings.Builder, p view.ProductCardVM) {
	sb.WriteString(`<div class="card product-card">`)
	sb.WriteString(`<a href="/product/` + esc(p.Slug) + `">`)
	sb.WriteString(`<img src="` + esc(p.ImageURL) + `" alt="` + esc(p.Name) + `"/></a>`)
	sb.WriteString(`<div class="card-body">`)
	sb.WriteString(`<a href="/product/` + esc(p.Slug) + `">` + esc(p.Name) + `</a>`)
	sb.WriteString(`<p class="price">` + money(p.Price) + `</p>`)
	if p.CountInStock == 0 {
		sb.WriteString(`<button class="btn" disabled>Out of stock</button>`)
	} else {
		sb.WriteString(`<form method="post" action="/cart/add">`)
		sb.WriteString(`<input type="hidden" name="slug" value="` + esc(p.Slug) + `"/>`)
		sb.WriteString(`<button class="btn btn-primary" type="submit">Add to cart</button></form>`)
	}
	sb.WriteString(`</div></div>`)
}
