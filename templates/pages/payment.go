package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// Payment renders the payment method step as a radio group.
func Payment(fl *view.Flash, options []view.PaymentOption) templ.Component {
	var sb strings.Builder
	writeCheckoutSteps(&sb, 3)
	sb.WriteString(`<div class="form-narrow"><h1>Payment Method</h1>`)
	sb.WriteString(`<form method="post" action="/payment">`)
	for _, opt := range options {
		sb.WriteString(`<div class="form-check">`)
		sb.WriteString(`<input type="radio" id="` + esc(opt.Name) + `" name="payment_method" value="` + esc(opt.Name) + `"`)
		if opt.Selected {
			sb.WriteString(` checked`)
		}
		sb.WriteString(`/>`)
		sb.WriteString(`<label for="` + esc(opt.Name) + `">` + esc(opt.Name) + `</label></div>`)
	}
	sb.WriteString(`<button class="btn btn-primary" type="submit">Continue</button>`)
	sb.WriteString(`</form></div>`)
	return layout("Payment Method", fl, sb.String())
}
