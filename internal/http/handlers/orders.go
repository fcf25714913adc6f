package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/async"
	"github.com/ignacioainol/Mern-Amazona/internal/http/middleware"
	"github.com/ignacioainol/Mern-Amazona/internal/http/render"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
	"github.com/ignacioainol/Mern-Amazona/templates/pages"
)

// Orders serves the order detail page.
type Orders struct {
	api *api.Client
}

func NewOrders(apiClient *api.Client) *Orders {
	return &Orders{api: apiClient}
}

func (h *Orders) Show(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	id := c.Param("id")

	st := async.Run(async.State[api.Order]{}, func() (api.Order, error) {
		return h.api.GetOrder(c.Request.Context(), user.Token, id)
	})

	vm := async.Map(st, func(o api.Order) view.OrderVM {
		return view.OrderVM{
			ID:            o.ID,
			FullName:      o.ShippingAddress.FullName,
			AddressLine:   apiAddressLine(o.ShippingAddress),
			PaymentMethod: o.PaymentMethod,
			Items:         orderItemVMs(o.OrderItems),
			Summary: view.OrderSummaryVM{
				Items:    o.ItemsPrice,
				Shipping: o.ShippingPrice,
				Tax:      o.TaxPrice,
				Total:    o.TotalPrice,
			},
			IsPaid:      o.IsPaid,
			IsDelivered: o.IsDelivered,
		}
	})

	render.Component(c, http.StatusOK, pages.Order(middleware.GetFlash(c), vm))
}
