package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignacioainol/Mern-Amazona/internal/api"
	"github.com/ignacioainol/Mern-Amazona/internal/config"
	"github.com/ignacioainol/Mern-Amazona/internal/http/cartcookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/checkoutcookie"
	"github.com/ignacioainol/Mern-Amazona/internal/http/flash"
	"github.com/ignacioainol/Mern-Amazona/internal/http/sessioncookie"
	"github.com/ignacioainol/Mern-Amazona/internal/modules/cart"
	"github.com/ignacioainol/Mern-Amazona/internal/modules/pricing"
	"github.com/ignacioainol/Mern-Amazona/pkg/view"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type testEnv struct {
	router   *gin.Engine
	backend  *httptest.Server
	carts    *cartcookie.Codec
	progress *checkoutcookie.Codec
	sessions *sessioncookie.Codec
	flash    *flash.Codec
}

func newTestEnv(t *testing.T, backend http.Handler) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	cfg := config.Config{
		Addr:         ":0",
		APIBaseURL:   srv.URL,
		CookieSecret: testSecret,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &testEnv{
		router:   NewRouter(logger, cfg, api.New(srv.URL)),
		backend:  srv,
		carts:    cartcookie.New(testSecret, "cart", false),
		progress: checkoutcookie.New(testSecret, "checkout", false),
		sessions: sessioncookie.New(testSecret, "session", false, 0),
		flash:    flash.NewCodec(testSecret, "flash", false),
	}
}

func (e *testEnv) signedIn(t *testing.T, req *http.Request, admin bool) {
	t.Helper()
	v, err := e.sessions.Encode(sessioncookie.User{
		ID: "u1", Name: "Jane", Email: "jane@example.com", IsAdmin: admin, Token: "tok-1",
	})
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "session", Value: v})
}

func (e *testEnv) withCart(t *testing.T, req *http.Request, crt *cart.Cart) {
	t.Helper()
	v, err := e.carts.Encode(crt)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "cart", Value: v})
}

func (e *testEnv) withCheckout(t *testing.T, req *http.Request, ck cart.Checkout) {
	t.Helper()
	v, err := e.progress.Encode(ck)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "checkout", Value: v})
}

func (e *testEnv) decodeFlash(t *testing.T, res *http.Response) *view.Flash {
	t.Helper()
	for _, ck := range res.Cookies() {
		if ck.Name == "flash" && ck.Value != "" {
			f, err := e.flash.Decode(ck.Value)
			require.NoError(t, err)
			return f
		}
	}
	return nil
}

func cartCleared(res *http.Response) bool {
	for _, ck := range res.Cookies() {
		if ck.Name == "cart" && ck.Value == "" && ck.MaxAge < 0 {
			return true
		}
	}
	return false
}

func testLines() []cart.Line {
	return []cart.Line{
		{ProductID: "p1", Slug: "shirt", Name: "Shirt", Image: "/i/shirt.jpg", Price: 30, Quantity: 2},
		{ProductID: "p2", Slug: "pants", Name: "Pants", Image: "/i/pants.jpg", Price: 25.005, Quantity: 1},
	}
}

func testCheckout() cart.Checkout {
	return cart.Checkout{
		ShippingAddress: cart.Address{
			FullName: "Jane Doe", Address: "1 Main St", City: "Springfield",
			PostalCode: "12345", Country: "USA",
		},
		PaymentMethod: "PayPal",
	}
}

func TestPlaceOrderSuccess(t *testing.T) {
	var calls int
	var got api.OrderInput
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"order":{"_id":"ord-9"}}`))
	})
	env := newTestEnv(t, mux)

	crt := &cart.Cart{Lines: testLines()}
	req := httptest.NewRequest(http.MethodPost, "/placeorder", nil)
	env.signedIn(t, req, false)
	env.withCart(t, req, crt)
	env.withCheckout(t, req, testCheckout())

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	res := w.Result()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/orders/ord-9", res.Header.Get("Location"))
	assert.Equal(t, 1, calls)

	want := pricing.Compute(crt.Lines)
	assert.Equal(t, want.Items, got.ItemsPrice)
	assert.Equal(t, want.Shipping, got.ShippingPrice)
	assert.Equal(t, want.Tax, got.TaxPrice)
	assert.Equal(t, want.Total, got.TotalPrice)
	assert.Len(t, got.OrderItems, 2)
	assert.Equal(t, "PayPal", got.PaymentMethod)
	assert.Equal(t, "Jane Doe", got.ShippingAddress.FullName)

	assert.True(t, cartCleared(res), "cart cookie should be expired after ordering")
	fl := env.decodeFlash(t, res)
	require.NotNil(t, fl)
	assert.Equal(t, view.FlashSuccess, fl.Kind)
}

func TestPlaceOrderBackendFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Product out of stock"}`))
	})
	env := newTestEnv(t, mux)

	req := httptest.NewRequest(http.MethodPost, "/placeorder", nil)
	env.signedIn(t, req, false)
	env.withCart(t, req, &cart.Cart{Lines: testLines()})
	env.withCheckout(t, req, testCheckout())

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	res := w.Result()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/placeorder", res.Header.Get("Location"))
	assert.False(t, cartCleared(res), "cart must survive a failed order")

	fl := env.decodeFlash(t, res)
	require.NotNil(t, fl)
	assert.Equal(t, view.FlashError, fl.Kind)
	assert.Equal(t, "Product out of stock", fl.Message)
}

func TestPlaceOrderEmptyCartBouncesToCart(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux())

	req := httptest.NewRequest(http.MethodPost, "/placeorder", nil)
	env.signedIn(t, req, false)
	env.withCheckout(t, req, testCheckout())

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}

func TestCheckoutGating(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux())

	t.Run("payment without address goes to shipping", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/payment", nil)
		env.signedIn(t, req, false)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/shipping", w.Header().Get("Location"))
	})

	t.Run("place order without payment method goes to payment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/placeorder", nil)
		env.signedIn(t, req, false)
		ck := testCheckout()
		ck.PaymentMethod = ""
		env.withCheckout(t, req, ck)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/payment", w.Header().Get("Location"))
	})

	t.Run("anonymous checkout goes to login with return url", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/shipping", nil)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login?redirect="+url.QueryEscape("/shipping"), w.Header().Get("Location"))
	})
}

func TestAdminProductsList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/admin", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products":[{"_id":"p1","name":"Shirt","price":30,"category":"Shirts","brand":"Acme"}],
			"page":2,"pages":3}`))
	})
	env := newTestEnv(t, mux)

	req := httptest.NewRequest(http.MethodGet, "/admin/products?page=2", nil)
	env.signedIn(t, req, true)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Shirt")
	assert.Contains(t, body, `href="/admin/products?page=1"`)
	assert.Contains(t, body, `href="/admin/products?page=3"`)
	assert.Contains(t, body, "page-link-active")
}

func TestAdminProductsEmptyCatalogHasNoPageLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/admin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[],"page":1,"pages":0}`))
	})
	env := newTestEnv(t, mux)

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	env.signedIn(t, req, true)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "page-link")
}

func TestAdminDeleteRedirectsToSamePage(t *testing.T) {
	var deleted string
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = r.PathValue("id")
		w.WriteHeader(http.StatusNoContent)
	})
	env := newTestEnv(t, mux)

	form := url.Values{"page": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/products/p1/delete",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	env.signedIn(t, req, true)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	res := w.Result()

	assert.Equal(t, "p1", deleted)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/admin/products?page=2", res.Header.Get("Location"))

	fl := env.decodeFlash(t, res)
	require.NotNil(t, fl)
	assert.Equal(t, view.FlashSuccess, fl.Kind)
}

func TestAdminAreaForbiddenForNonAdmins(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux())

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	env.signedIn(t, req, false)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	res := w.Result()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))

	fl := env.decodeFlash(t, res)
	require.NotNil(t, fl)
	assert.Equal(t, view.FlashError, fl.Kind)
}

func TestCartAddSnapshotsProduct(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/slug/shirt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"p1","name":"Shirt","slug":"shirt","image":"/i/shirt.jpg","price":30,"countInStock":5}`))
	})
	env := newTestEnv(t, mux)

	form := url.Values{"slug": {"shirt"}, "qty": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	res := w.Result()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/cart", res.Header.Get("Location"))

	var stored *cart.Cart
	for _, ck := range res.Cookies() {
		if ck.Name == "cart" && ck.Value != "" {
			var err error
			stored, err = env.carts.Decode(ck.Value)
			require.NoError(t, err)
		}
	}
	require.NotNil(t, stored)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, cart.Line{
		ProductID: "p1", Slug: "shirt", Name: "Shirt", Image: "/i/shirt.jpg",
		Price: 30, Quantity: 2,
	}, stored.Lines[0])
}

func TestCartAddRejectsOutOfStock(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products/slug/shirt", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_id":"p1","name":"Shirt","slug":"shirt","price":30,"countInStock":1}`))
	})
	env := newTestEnv(t, mux)

	form := url.Values{"slug": {"shirt"}, "qty": {"3"}}
	req := httptest.NewRequest(http.MethodPost, "/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	res := w.Result()

	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Equal(t, "/product/shirt", res.Header.Get("Location"))

	fl := env.decodeFlash(t, res)
	require.NotNil(t, fl)
	assert.Equal(t, view.FlashWarning, fl.Kind)
}

func TestHomeRendersErrorBoxWhenBackendDown(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux())
	env.backend.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "message-box-danger")
}
