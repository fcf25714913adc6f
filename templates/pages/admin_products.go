package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// AdminProducts renders the admin product table for one page of the catalog,
// with the ordinal pagination row underneath. page is carried through the
// delete form so the redirect lands back on the same page.
func AdminProducts(fl *view.Flash, st async.State[[]view.AdminProductRow], links []view.PageLink, page int) templ.Component {
	var sb strings.Builder
	sb.WriteString(`<div class="admin-header"><h1>Products</h1>`)
	sb.WriteString(`<form method="post" action="/admin/products/create">`)
	sb.WriteString(`<button class="btn btn-primary" type="submit">Create Product</button></form></div>`)

	switch st.Status {
	case async.StatusFailed:
		writeErrorBox(&sb, st.Err)
		return layout("Products", fl, sb.String())
	case async.StatusIdle, async.StatusLoading:
		writeLoadingBox(&sb)
		return layout("Products", fl, sb.String())
	}

	sb.WriteString(`<table class="table"><thead><tr>`)
	sb.WriteString(`<th>ID</th><th>NAME</th><th>PRICE</th><th>CATEGORY</th><th>BRAND</th><th>ACTIONS</th>`)
	sb.WriteString(`</tr></thead><tbody>`)
	for _, row := range st.Data {
		sb.WriteString(`<tr>`)
		sb.WriteString(`<td>` + esc(row.ID) + `</td>`)
		sb.WriteString(`<td>` + esc(row.Name) + `</td>`)
		sb.WriteString(`<td>` + money(row.Price) + `</td>`)
		sb.WriteString(`<td>` + esc(row.Category) + `</td>`)
		sb.WriteString(`<td>` + esc(row.Brand) + `</td>`)
		sb.WriteString(`<td><a class="btn" href="/admin/products/` + esc(row.ID) + `">Edit</a> `)
		sb.WriteString(`<form method="post" action="/admin/products/` + esc(row.ID) + `/delete" class="inline">`)
		sb.WriteString(`<input type="hidden" name="page" value="` + itoa(page) + `"/>`)
		sb.WriteString(`<button class="btn" type="submit">Delete</button></form></td>`)
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table>`)

	writePageLinks(&sb, links)
	return layout("Products", fl, sb.String())
}

func writePageLinks(sb *strings.Builder, links []view.PageLink) {
	if len(links) == 0 {
		return
	}
	sb.WriteString(`<div class="pagination">`)
	for _, l := range links {
		cls := "page-link"
		if l.Active {
			cls = "page-link page-link-active"
		}
		sb.WriteString(`<a class="` + cls + `" href="` + esc(l.URL) + `">` + itoa(l.Number) + `</a>`)
	}
	sb.WriteString(`</div>`)
}
