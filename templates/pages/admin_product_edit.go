package pages

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

// AdminProductEdit renders the admin edit form off the product fetch slice.
// The form and the image upload are separate posts; the upload round-trips
// back to this page with the new image URL pre-filled.
func AdminProductEdit(fl *view.Flash, st async.State[view.ProductForm], fieldErrs map[string]string) templ.Component {
	var sb strings.Builder

	switch st.Status {
	case async.StatusFailed:
		writeErrorBox(&sb, st.Err)
		return layout("Edit Product", fl, sb.String())
	case async.StatusIdle, async.StatusLoading:
		writeLoadingBox(&sb)
		return layout("Edit Product", fl, sb.String())
	}

	form := st.Data
	sb.WriteString(`<div class="form-narrow"><h1>Edit Product ` + esc(form.ID) + `</h1>`)

	sb.WriteString(`<form method="post" action="/admin/products/` + esc(form.ID) + `">`)
	writeTextField(&sb, fieldErrs, "name", "Name", form.Name)
	writeTextField(&sb, fieldErrs, "slug", "Slug", form.Slug)
	writeTextField(&sb, fieldErrs, "price", "Price", form.Price)
	writeTextField(&sb, fieldErrs, "image", "Image", form.Image)
	writeTextField(&sb, fieldErrs, "category", "Category", form.Category)
	writeTextField(&sb, fieldErrs, "brand", "Brand", form.Brand)
	writeTextField(&sb, fieldErrs, "count_in_stock", "Count In Stock", form.CountInStock)

	sb.WriteString(`<div class="form-group"><label for="description">Description</label>`)
	sb.WriteString(`<textarea id="description" name="description" rows="4">` + esc(form.Description) + `</textarea>`)
	writeFieldError(&sb, fieldErrs, "description")
	sb.WriteString(`</div>`)

	sb.WriteString(`<button class="btn btn-primary" type="submit">Update</button>`)
	sb.WriteString(`</form>`)

	sb.WriteString(`<h3>Upload Image</h3>`)
	sb.WriteString(`<form method="post" action="/admin/products/` + esc(form.ID) + `/upload" enctype="multipart/form-data">`)
	sb.WriteString(`<div class="form-group"><input type="file" name="file" required/></div>`)
	sb.WriteString(`<button class="btn" type="submit">Upload</button>`)
	sb.WriteString(`</form>`)

	sb.WriteString(`</div>`)
	return layout("Edit Product", fl, sb.String())
}
