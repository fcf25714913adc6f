package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// Order renders the order detail page off its fetch slice.
func Order(fl *view.Flash, st async.State[view.OrderVM]) templ.Component {
	var sb strings.Builder

	switch st.Status {
	case async.StatusFailed:
		writeErrorBox(&sb, st.Err)
		return layout("Order", fl, sb.String())
	case async.StatusIdle, async.StatusLoading:
		writeLoadingBox(&sb)
		return layout("Order", fl, sb.String())
	}

	o := st.Data
	sb.WriteString(`<h1>Order ` + esc(o.ID) + `</h1><div class="row">`)

	sb.WriteString(`<div class="col order-details">`)
	sb.WriteString(`<div class="card"><div class="card-body"><h3>Shipping</h3>`)
	sb.WriteString(`<p><strong>Name:</strong> ` + esc(o.FullName) + `</p>`)
	sb.WriteString(`<p><strong>Address:</strong> ` + esc(o.AddressLine) + `</p>`)
	if o.IsDelivered {
		sb.WriteString(`<div class="message-box message-box-success">Delivered</div>`)
	} else {
		sb.WriteString(`<div class="message-box message-box-danger">Not Delivered</div>`)
	}
	sb.WriteString(`</div></div>`)

	sb.WriteString(`<div class="card"><div class="card-body"><h3>Payment</h3>`)
	sb.WriteString(`<p><strong>Method:</strong> ` + esc(o.PaymentMethod) + `</p>`)
	if o.IsPaid {
		sb.WriteString(`<div class="message-box message-box-success">Paid</div>`)
	} else {
		sb.WriteString(`<div class="message-box message-box-danger">Not Paid</div>`)
	}
	sb.WriteString(`</div></div>`)

	sb.WriteString(`<div class="card"><div class="card-body"><h3>Items</h3>`)
	writeOrderItems(&sb, o.Items)
	sb.WriteString(`</div></div>`)
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="col"><div class="card"><div class="card-body">`)
	sb.WriteString(`<h3>Order Summary</h3>`)
	writeOrderSummary(&sb, o.Summary)
	sb.WriteString(`</div></div></div>`)

	sb.WriteString(`</div>`)
	return layout("Order "+o.ID, fl, sb.String())
}
