package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// PlaceOrder renders the final review step: address, payment method, line
// items and the totals box with the submit button.
func PlaceOrder(fl *view.Flash, vm view.PlaceOrderVM) templ.Component {
	var sb strings.Builder
	writeCheckoutSteps(&sb, 4)
	sb.WriteString(`<h1>Preview Order</h1><div class="row">`)

	sb.WriteString(`<div class="col order-details">`)
	sb.WriteString(`<div class="card"><div class="card-body"><h3>Shipping</h3>`)
	sb.WriteString(`<p><strong>Name:</strong> ` + esc(vm.FullName) + `</p>`)
	sb.WriteString(`<p><strong>Address:</strong> ` + esc(vm.AddressLine) + `</p>`)
	sb.WriteString(`<a href="/shipping">Edit</a></div></div>`)

	sb.WriteString(`<div class="card"><div class="card-body"><h3>Payment</h3>`)
	sb.WriteString(`<p><strong>Method:</strong> ` + esc(vm.PaymentMethod) + `</p>`)
	sb.WriteString(`<a href="/payment">Edit</a></div></div>`)

	sb.WriteString(`<div class="card"><div class="card-body"><h3>Items</h3>`)
	writeOrderItems(&sb, vm.Items)
	sb.WriteString(`<a href="/cart">Edit</a></div></div>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="col"><div class="card"><div class="card-body">`)
	sb.WriteString(`<h3>Order Summary</h3>`)
	writeOrderSummary(&sb, vm.Summary)
	sb.WriteString(`<form method="post" action="/placeorder">`)
	if vm.CanSubmit {
		sb.WriteString(`<button class="btn btn-primary" type="submit">Place Order</button>`)
	} else {
		sb.WriteString(`<button class="btn" type="submit" disabled>Place Order</button>`)
	}
	sb.WriteString(`</form>`)
	sb.WriteString(`</div></div></div>`)

	sb.WriteString(`</div>`)
	return layout("Preview Order", fl, sb.String())
}

func writeOrderItems(sb *strings.Builder, items []view.CartItemVM) {
	sb.WriteString(`<ul class="list-group">`)
	for _, it := range items {
		sb.WriteString(`<li class="list-group-item">`)
		sb.WriteString(`<img src="` + esc(it.ImageURL) + `" alt="` + esc(it.Name) + `" class="img-thumbnail"/>`)
		sb.WriteString(`<a href="/product/` + esc(it.Slug) + `">` + esc(it.Name) + `</a>`)
		sb.WriteString(`<span>` + itoa(it.Quantity) + ` x ` + money(it.Price) + `</span>`)
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul>`)
}

func writeOrderSummary(sb *strings.Builder, s view.OrderSummaryVM) {
	sb.WriteString(`<ul class="summary">`)
	sb.WriteString(`<li><span>Items</span><span>` + money(s.Items) + `</span></li>`)
	sb.WriteString(`<li><span>Shipping</span><span>` + money(s.Shipping) + `</span></li>`)
	sb.WriteString(`<li><span>Tax</span><span>` + money(s.Tax) + `</span></li>`)
	sb.WriteString(`<li class="summary-total"><span>Order Total</span><span>` + money(s.Total) + `</span></li>`)
	sb.WriteString(`</ul>`)
}
