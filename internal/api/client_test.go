package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorPrefersServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Product Not Found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetProduct(context.Background(), "nope")
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Product Not Found", ae.Message)
	assert.Equal(t, "Product Not Found", Normalize(err))
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListProducts(context.Background(), ListParams{})
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Internal Server Error", ae.Message)
}

func TestNormalizeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).ListProducts(context.Background(), ListParams{})
	require.Error(t, err)

	var ae *Error
	assert.False(t, errors.As(err, &ae))
	assert.NotEmpty(t, Normalize(err))
}

func TestAdminProductsPageParam(t *testing.T) {
	var gotPage, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/admin", r.URL.Path)
		gotPage = r.URL.Query().Get("page")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products": []map[string]any{{"_id": "p1", "name": "Shirt"}},
			"page":     2,
			"pages":    5,
		})
	}))
	defer srv.Close()

	page, err := New(srv.URL).AdminProducts(context.Background(), "tok-123", 2)
	require.NoError(t, err)

	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 5, page.TotalPages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Shirt", page.Items[0].Name)
}

func TestAdminProductsInvalidPageDefaultsToOne(t *testing.T) {
	var gotPage string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		_ = json.NewEncoder(w).Encode(map[string]any{"products": []any{}, "page": 1, "pages": 0})
	}))
	defer srv.Close()

	page, err := New(srv.URL).AdminProducts(context.Background(), "tok", -3)
	require.NoError(t, err)
	assert.Equal(t, "1", gotPage)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestCreateOrderBodyAndResponse(t *testing.T) {
	var body OrderInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"order": map[string]any{"_id": "ord-9"}})
	}))
	defer srv.Close()

	in := OrderInput{
		OrderItems:    []OrderItem{{Product: "p1", Name: "Shirt", Price: 20, Quantity: 2}},
		PaymentMethod: "PayPal",
		ItemsPrice:    40, ShippingPrice: 10, TaxPrice: 6, TotalPrice: 56,
	}
	order, err := New(srv.URL).CreateOrder(context.Background(), "tok", in)
	require.NoError(t, err)

	assert.Equal(t, "ord-9", order.ID)
	assert.Equal(t, in.TotalPrice, body.TotalPrice)
	assert.Equal(t, "PayPal", body.PaymentMethod)
	require.Len(t, body.OrderItems, 1)
	assert.Equal(t, 2, body.OrderItems[0].Quantity)
}

func TestUploadSendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "photo.jpg", hdr.Filename)
		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": "https://cdn.example/photo.jpg"})
	}))
	defer srv.Close()

	res, err := New(srv.URL).Upload(context.Background(), "tok", "photo.jpg", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/photo.jpg", res.URL)
}
