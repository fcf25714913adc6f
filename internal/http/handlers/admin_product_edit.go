package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/internal/http/flash"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/render"
	"github.com/ignacioainol/Mern-Amazona/internal/http/validation"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

// AdminProductEdit serves the edit form, the update and the image upload.
// The three are independent round trips against the same page.
type AdminProductEdit struct {
	api   *api.Client
	flash *flash.Codec
}

func NewAdminProductEdit(apiClient *api.Client, flashCodec *flash.Codec) *AdminProductEdit {
	return &AdminProductEdit{api: apiClient, flash: flashCodec}
}

// Show pre-fills the form from the product fetch. A just-uploaded image URL
// arrives in the query string and overrides the stored one, so the admin can
// review it before saving.
func (h *AdminProductEdit) Show(c *gin.Context) {
	id := c.Param("id")

	st := async.Run(async.State[api.Product]{}, func() (api.Product, error) {
		return h.api.GetProduct(c.Request.Context(), id)
	})

	form := async.Map(st, productForm)
	if img := c.Query("image"); img != "" && form.Status == async.StatusSucceeded {
		form.Data.Image = img
	}
	render.Component(c, http.StatusOK, pages.AdminProductEdit(middleware.GetFlash(c), form, nil))
}

type productEditForm struct {
	Name         string `form:"name" binding:"required"`
	Slug         string `form:"slug" binding:"required"`
	Price        string `form:"price" binding:"required"`
	Image        string `form:"image" binding:"required"`
	Category     string `form:"category" binding:"required"`
	Brand        string `form:"brand" binding:"required"`
	CountInStock string `form:"count_in_stock" binding:"required"`
	Description  string `form:"description" binding:"required"`
}

// Update validates the form, parses the numeric fields and sends the full
// record to the backend. Validation failures re-render the form with the
// submitted values intact.
func (h *AdminProductEdit) Update(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	var form productEditForm
	errs := validation.FieldErrors{}
	if err := c.ShouldBind(&form); err != nil {
		errs = validation.FromBindError(err, &form)
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		errs["price"] = "Enter a valid price."
	}
	stock, err := strconv.Atoi(form.CountInStock)
	if err != nil || stock < 0 {
		errs["count_in_stock"] = "Enter a valid stock count."
	}

	if len(errs) > 0 {
		vm := view.ProductForm{
			ID:           id,
			Name:         form.Name,
			Slug:         form.Slug,
			Price:        form.Price,
			Image:        form.Image,
			Category:     form.Category,
			Brand:        form.Brand,
			CountInStock: form.CountInStock,
			Description:  form.Description,
		}
		st := async.State[view.ProductForm]{Status: async.StatusSucceeded, Data: vm}
		render.Component(c, http.StatusBadRequest,
			pages.AdminProductEdit(middleware.GetFlash(c), st, errs))
		return
	}

	updateErr := h.api.UpdateProduct(c.Request.Context(), user.Token, api.Product{
		ID:           id,
		Name:         form.Name,
		Slug:         form.Slug,
		Image:        form.Image,
		Brand:        form.Brand,
		Category:     form.Category,
		Description:  form.Description,
		Price:        price,
		CountInStock: stock,
	})
	if updateErr != nil {
		render.RedirectWithFlash(c, h.flash, "/admin/products/"+id, view.FlashError, api.Normalize(updateErr))
		return
	}
	render.RedirectWithFlash(c, h.flash, "/admin/products", view.FlashSuccess, "Product updated.")
}

// Upload forwards the image to the backend and round-trips the hosted URL
// back into the edit form. The product record is untouched until the admin
// saves.
func (h *AdminProductEdit) Upload(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")
	back := "/admin/products/" + id

	fh, err := c.FormFile("file")
	if err != nil {
		render.RedirectWithFlash(c, h.flash, back, view.FlashWarning, "Choose a file to upload.")
		return
	}
	f, err := fh.Open()
	if err != nil {
		render.RedirectWithFlash(c, h.flash, back, view.FlashError, "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	res, err := h.api.Upload(c.Request.Context(), user.Token, fh.Filename, f)
	if err != nil {
		render.RedirectWithFlash(c, h.flash, back, view.FlashError, api.Normalize(err))
		return
	}
	render.RedirectWithFlash(c, h.flash, back+"?image="+url.QueryEscape(res.URL), view.FlashSuccess, "Image uploaded.")
}

func productForm(p api.Product) view.ProductForm {
	return view.ProductForm{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        strconv.FormatFloat(p.Price, 'f', -1, 64),
		Image:        p.Image,
		Category:     p.Category,
		Brand:        p.Brand,
		CountInStock: strconv.Itoa(p.CountInStock),
		Description:  p.Description,
	}
}
