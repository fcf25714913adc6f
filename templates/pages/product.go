package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// ProductDetail renders one product page off its fetch slice.
func ProductDetail(fl *view.Flash, st async.State[view.ProductDetailVM]) templ.Component {
	var sb strings.Builder

	switch st.Status {
	case async.StatusFailed:
		writeErrorBox(&sb, st.Err)
		return layout("Product", fl, sb.String())
	case async.StatusIdle, async.StatusLoading:
		writeLoadingBox(&sb)
		return layout("Product", fl, sb.String())
	}

	p := st.Data
	sb.WriteString(`<div class="row product-detail">`)
	sb.WriteString(`<div class="col"><img src="` + esc(p.ImageURL) + `" alt="` + esc(p.Name) + `"/></div>`)
	sb.WriteString(`<div class="col">`)
	sb.WriteString(`<h1>` + esc(p.Name) + `</h1>`)
	sb.WriteString(`<p class="rating">` + itoa(p.NumReviews) + ` reviews</p>`)
	sb.WriteString(`<p class="price">` + money(p.Price) + `</p>`)
	sb.WriteString(`<p>` + esc(p.Description) + `</p>`)
	sb.WriteString(`</div>`)
	sb.WriteString(`<div class="col"><div class="card"><div class="card-body">`)
	sb.WriteString(`<p>Price: <strong>` + money(p.Price) + `</strong></p>`)
	if p.CountInStock > 0 {
		sb.WriteString(`<p>Status: In Stock</p>`)
		sb.WriteString(`<form method="post" action="/cart/add">`)
		sb.WriteString(`<input type="hidden" name="slug" value="` + esc(p.Slug) + `"/>`)
		sb.WriteString(`<input type="number" name="qty" value="1" min="1" max="` + itoa(p.CountInStock) + `"/>`)
		sb.WriteString(`<button class="btn btn-primary" type="submit">Add to cart</button></form>`)
	} else {
		sb.WriteString(`<p>Status: Unavailable</p>`)
	}
	sb.WriteString(`</div></div></div>`)
	sb.WriteString(`</div>`)

	return layout(p.Name, fl, sb.String())
}
