package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// Shipping renders the shipping address step, pre-filled from the saved
// checkout state so the form survives navigation.
func Shipping(fl *view.Flash, form view.ShippingForm, fieldErrs map[string]string) templ.Component {
	var sb strings.Builder
	writeCheckoutSteps(&sb, 2)
	sb.WriteString(`<div class="form-narrow"><h1>Shipping Address</h1>`)
	sb.WriteString(`<form method="post" action="/shipping">`)

	writeTextField(&sb, fieldErrs, "full_name", "Full Name", form.FullName)
	writeTextField(&sb, fieldErrs, "address", "Address", form.Address)
	writeTextField(&sb, fieldErrs, "city", "City", form.City)
	writeTextField(&sb, fieldErrs, "postal_code", "Postal Code", form.PostalCode)
	writeTextField(&sb, fieldErrs, "country", "Country", form.Country)

	sb.WriteString(`<button class="btn btn-primary" type="submit">Continue</button>`)
	sb.WriteString(`</form></div>`)
	return layout("Shipping Address", fl, sb.String())
}

func writeTextField(sb *strings.Builder, errs map[string]string, name, label, value string) {
	sb.WriteString(`<div class="form-group"><label for="` + name + `">` + esc(label) + `</label>`)
	sb.WriteString(`<input type="text" id="` + name + `" name="` + name + `" value="` + esc(value) + `" required/>`)
	writeFieldError(sb, errs, name)
	sb.WriteString(`</div>`)
}
