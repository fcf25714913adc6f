package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/internal/http/flash"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/render"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

// AdminProducts serves the paginated catalog table plus create and delete.
// Mutations redirect back into the list, which re-fetches the current page;
// that redirect is the one and only refresh after a change.
type AdminProducts struct {
	api   *api.Client
	flash *flash.Codec
}

func NewAdminProducts(apiClient *api.Client, flashCodec *flash.Codec) *AdminProducts {
	return &AdminProducts{api: apiClient, flash: flashCodec}
}

func (h *AdminProducts) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	page := parsePage(c.Query("page"))

	st := async.Run(async.State[api.Page[api.Product]]{}, func() (api.Page[api.Product], error) {
		return h.api.AdminProducts(c.Request.Context(), user.Token, page)
	})

	rows := async.Map(st, func(pg api.Page[api.Product]) []view.AdminProductRow {
		out := make([]view.AdminProductRow, 0, len(pg.Items))
		for _, p := range pg.Items {
			out = append(out, view.AdminProductRow{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price,
				Category: p.Category,
				Brand:    p.Brand,
			})
		}
		return out
	})

	var links []view.PageLink
	if st.Status == async.StatusSucceeded {
		links = view.PageLinks("/admin/products", st.Data.Number, st.Data.TotalPages)
		page = st.Data.Number
	}
	render.Component(c, http.StatusOK, pages.AdminProducts(middleware.GetFlash(c), rows, links, page))
}

// Create asks the backend for a fresh product with default values, then
// jumps straight into editing it.
func (h *AdminProducts) Create(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	p, err := h.api.CreateProduct(c.Request.Context(), user.Token)
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/admin/products", view.FlashError, api.Normalize(err))
		return
	}
	render.RedirectWithFlash(c, h.flash, "/admin/products/"+p.ID, view.FlashSuccess, "Product created.")
}

func (h *AdminProducts) Delete(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")
	back := "/admin/products?page=" + strconv.Itoa(parsePage(c.PostForm("page")))

	if err := h.api.DeleteProduct(c.Request.Context(), user.Token, id); err != nil {
		render.RedirectWithFlash(c, h.flash, back, view.FlashError, api.Normalize(err))
		return
	}
	render.RedirectWithFlash(c, h.flash, back, view.FlashSuccess, "Product deleted.")
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
