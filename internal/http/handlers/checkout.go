package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/http/cartcookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/checkoutcookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/flash"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/render"
	"github.com/ignacioainol/Mern-Amazona/internal/http/validation"
	"github.com/ignacioainol/Mern-Amazona/internal/modules/cart"
	"github.com/ignacioainol/Mern-Amazona/internal/modules/pricing"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

// PaymentMethods are the offered options, first one is the default.
var PaymentMethods = []string{"PayPal", "MercadoPago"}

// Checkout walks the shipping -> payment -> place-order funnel. Each step
// checks its preconditions before rendering and bounces back to the earliest
// unmet one.
type Checkout struct {
	api      *api.Client
	carts    *cartcookie.Codec
	progress *checkoutcookie.Codec
	flash    *flash.Codec
}

func NewCheckout(apiClient *api.Client, carts *cartcookie.Codec, progress *checkoutcookie.Codec, flashCodec *flash.Codec) *Checkout {
	return &Checkout{api: apiClient, carts: carts, progress: progress, flash: flashCodec}
}

type shippingForm struct {
	FullName   string `form:"full_name" binding:"required"`
	Address    string `form:"address" binding:"required"`
	City       string `form:"city" binding:"required"`
	PostalCode string `form:"postal_code" binding:"required"`
	Country    string `form:"country" binding:"required"`
}

func (h *Checkout) ShowShipping(c *gin.Context) {
	ck := h.progress.Get(c)
	form := view.ShippingForm{
		FullName:   ck.ShippingAddress.FullName,
		Address:    ck.ShippingAddress.Address,
		City:       ck.ShippingAddress.City,
		PostalCode: ck.ShippingAddress.PostalCode,
		Country:    ck.ShippingAddress.Country,
	}
	render.Component(c, http.StatusOK, pages.Shipping(middleware.GetFlash(c), form, nil))
}

func (h *Checkout) SaveShipping(c *gin.Context) {
	var form shippingForm
	if err := c.ShouldBind(&form); err != nil {
		errs := validation.FromBindError(err, &form)
		vm := view.ShippingForm{
			FullName:   form.FullName,
			Address:    form.Address,
			City:       form.City,
			PostalCode: form.PostalCode,
			Country:    form.Country,
		}
		render.Component(c, http.StatusBadRequest, pages.Shipping(middleware.GetFlash(c), vm, errs))
		return
	}

	ck := h.progress.Get(c)
	ck.ShippingAddress = cart.Address{
		FullName:   form.FullName,
		Address:    form.Address,
		City:       form.City,
		PostalCode: form.PostalCode,
		Country:    form.Country,
	}
	h.progress.Set(c, ck)
	c.Redirect(http.StatusFound, "/payment")
}

func (h *Checkout) ShowPayment(c *gin.Context) {
	ck := h.progress.Get(c)
	if !ck.ShippingAddress.IsSet() {
		c.Redirect(http.StatusFound, "/shipping")
		return
	}

	selected := ck.PaymentMethod
	if selected == "" {
		selected = PaymentMethods[0]
	}
	options := make([]view.PaymentOption, 0, len(PaymentMethods))
	for _, name := range PaymentMethods {
		options = append(options, view.PaymentOption{Name: name, Selected: name == selected})
	}
	render.Component(c, http.StatusOK, pages.Payment(middleware.GetFlash(c), options))
}

type paymentForm struct {
	PaymentMethod string `form:"payment_method" binding:"required,oneof=PayPal MercadoPago"`
}

func (h *Checkout) SavePayment(c *gin.Context) {
	var form paymentForm
	if err := c.ShouldBind(&form); err != nil {
		render.RedirectWithFlash(c, h.flash, "/payment", view.FlashWarning,
			"Choose a payment method to continue.")
		return
	}

	ck := h.progress.Get(c)
	ck.PaymentMethod = form.PaymentMethod
	h.progress.Set(c, ck)
	c.Redirect(http.StatusFound, "/placeorder")
}

func (h *Checkout) ShowPlaceOrder(c *gin.Context) {
	ck := h.progress.Get(c)
	if !ck.ShippingAddress.IsSet() {
		c.Redirect(http.StatusFound, "/shipping")
		return
	}
	if ck.PaymentMethod == "" {
		c.Redirect(http.StatusFound, "/payment")
		return
	}

	crt := h.carts.Get(c)
	totals := pricing.Compute(crt.Lines)
	vm := view.PlaceOrderVM{
		FullName:      ck.ShippingAddress.FullName,
		AddressLine:   addressLine(ck.ShippingAddress),
		PaymentMethod: ck.PaymentMethod,
		Items:         cartItemVMs(crt.Lines),
		Summary: view.OrderSummaryVM{
			Items:    totals.Items,
			Shipping: totals.Shipping,
			Tax:      totals.Tax,
			Total:    totals.Total,
		},
		CanSubmit: !crt.IsEmpty(),
	}
	render.Component(c, http.StatusOK, pages.PlaceOrder(middleware.GetFlash(c), vm))
}

// PlaceOrder submits the cart as an order. On failure nothing is cleared:
// the customer lands back on the review page with the error and can retry.
func (h *Checkout) PlaceOrder(c *gin.Context) {
	ck := h.progress.Get(c)
	if !ck.ShippingAddress.IsSet() {
		c.Redirect(http.StatusFound, "/shipping")
		return
	}
	if ck.PaymentMethod == "" {
		c.Redirect(http.StatusFound, "/payment")
		return
	}

	crt := h.carts.Get(c)
	if crt.IsEmpty() {
		render.RedirectWithFlash(c, h.flash, "/cart", view.FlashWarning, "Cart is empty.")
		return
	}

	user, _ := middleware.CurrentUser(c)
	totals := pricing.Compute(crt.Lines)

	items := make([]api.OrderItem, 0, len(crt.Lines))
	for _, l := range crt.Lines {
		items = append(items, api.OrderItem{
			Product:  l.ProductID,
			Slug:     l.Slug,
			Name:     l.Name,
			Image:    l.Image,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	order, err := h.api.CreateOrder(c.Request.Context(), user.Token, api.OrderInput{
		OrderItems: items,
		ShippingAddress: api.Address{
			FullName:   ck.ShippingAddress.FullName,
			Address:    ck.ShippingAddress.Address,
			City:       ck.ShippingAddress.City,
			PostalCode: ck.ShippingAddress.PostalCode,
			Country:    ck.ShippingAddress.Country,
		},
		PaymentMethod: ck.PaymentMethod,
		ItemsPrice:    totals.Items,
		ShippingPrice: totals.Shipping,
		TaxPrice:      totals.Tax,
		TotalPrice:    totals.Total,
	})
	if err != nil {
		render.RedirectWithFlash(c, h.flash, "/placeorder", view.FlashError, api.Normalize(err))
		return
	}

	// The cart is spent; shipping address and payment method stay for the
	// next order.
	h.carts.Clear(c)
	render.RedirectWithFlash(c, h.flash, "/orders/"+order.ID, view.FlashSuccess, "Order placed.")
}
