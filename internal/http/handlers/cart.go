package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/http/cartcookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/flash"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/render"
	"github.com/ignacioainol/Mern-Amazona/internal/modules/cart"
	"github.com/ignacioainol/Mern-Amazona/internal/modules/pricing"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

// Cart serves the cart page and its mutations. The cart itself is client
// state in a signed cookie; only Add talks to the backend, to snapshot the
// product and check stock.
type Cart struct {
	api   *api.Client
	carts *cartcookie.Codec
	flash *flash.Codec
}

func NewCart(apiClient *api.Client, carts *cartcookie.Codec, flashCodec *flash.Codec) *Cart {
	return &Cart{api: apiClient, carts: carts, flash: flashCodec}
}

func (h *Cart) Show(c *gin.Context) {
	crt := h.carts.Get(c)
	vm := view.CartPageVM{
		Items:    cartItemVMs(crt.Lines),
		Count:    crt.Count(),
		Subtotal: pricing.Compute(crt.Lines).Items,
	}
	render.Component(c, http.StatusOK, pages.Cart(middleware.GetFlash(c), vm))
}

// Add re-fetches the product so the cart line carries a fresh snapshot of
// name, image and price, and so stock is checked against the backend rather
// than whatever the page was rendered from.
func (h *Cart) Add(c *gin.Context) {
	slug := c.PostForm("slug")
	qty, err := strconv.Atoi(c.DefaultPostForm("qty", "1"))
	if err != nil || qty < 1 {
		qty = 1
	}

	p, err := h.api.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/", view.FlashError, api.Normalize(err))
		return
	}
	if p.CountInStock < qty {
		render.RedirectWithFlash(c, h.flash, "/product/"+slug, view.FlashWarning,
			"Sorry. Product is out of stock.")
		return
	}

	crt := h.carts.Get(c)
	crt.Add(cart.Line{
		ProductID: p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  qty,
	})
	h.carts.Set(c, crt)
	c.Redirect(http.StatusFound, "/cart")
}

// Update sets a line's quantity; zero removes it.
func (h *Cart) Update(c *gin.Context) {
	productID := c.PostForm("product_id")
	qty, err := strconv.Atoi(c.DefaultPostForm("qty", "0"))
	if err != nil {
		qty = 0
	}

	crt := h.carts.Get(c)
	crt.UpdateQuantity(productID, qty)
	h.carts.Set(c, crt)
	c.Redirect(http.StatusFound, "/cart")
}

func (h *Cart) Remove(c *gin.Context) {
	crt := h.carts.Get(c)
	crt.Remove(c.PostForm("product_id"))
	h.carts.Set(c, crt)
	c.Redirect(http.StatusFound, "/cart")
}
