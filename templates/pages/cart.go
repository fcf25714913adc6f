package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// Cart renders the cart page. The cart is client state, so there is no fetch
// slice here; it is always available.
func Cart(fl *view.Flash, vm view.CartPageVM) templ.Component {
	var sb strings.Builder
	sb.WriteString(`<h1>Shopping Cart</h1>`)

	if len(vm.Items) == 0 {
		sb.WriteString(`<div class="message-box">Cart is empty. <a href="/">Go shopping</a></div>`)
		return layout("Shopping Cart", fl, sb.String())
	}

	sb.WriteString(`<div class="row"><div class="col cart-lines"><ul class="list-group">`)
	for _, it := range vm.Items {
		sb.WriteString(`<li class="list-group-item"><div class="row">`)
		sb.WriteString(`<img src="` + esc(it.ImageURL) + `" alt="` + esc(it.Name) + `" class="img-thumbnail"/>`)
		sb.WriteString(`<a href="/product/` + esc(it.Slug) + `">` + esc(it.Name) + `</a>`)
		sb.WriteString(`<form method="post" action="/cart/update">`)
		sb.WriteString(`<input type="hidden" name="product_id" value="` + esc(it.ProductID) + `"/>`)
		sb.WriteString(`<input type="number" name="qty" value="` + itoa(it.Quantity) + `" min="0" max="99"/>`)
		sb.WriteString(`<button class="btn" type="submit">Update</button></form>`)
		sb.WriteString(`<span>` + money(it.Price) + `</span>`)
		sb.WriteString(`<form method="post" action="/cart/remove">`)
		sb.WriteString(`<input type="hidden" name="product_id" value="` + esc(it.ProductID) + `"/>`)
		sb.WriteString(`<button class="btn" type="submit">Remove</button></form>`)
		sb.WriteString(`</div></li>`)
	}
	sb.WriteString(`</ul></div>`)

	sb.WriteString(`<div class="col"><div class="card"><div class="card-body">`)
	sb.WriteString(`<h3>Subtotal (` + itoa(vm.Count) + ` items): ` + money(vm.Subtotal) + `</h3>`)
	sb.WriteString(`<form method="get" action="/shipping">`)
	sb.WriteString(`<button class="btn btn-primary" type="submit">Proceed to Checkout</button></form>`)
	sb.WriteString(`</div></div></div></div>`)

	return layout("Shopping Cart", fl, sb.String())
}
