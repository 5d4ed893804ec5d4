package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khushi161014/studio-treta/cart"
	"github.com/khushi161014/studio-treta/models"
)

func snapshot() []cart.Item {
	return []cart.Item{
		{ProductID: 1, Name: "Structured Linen Blazer", PriceCents: 18900, Quantity: 1},
		{ProductID: 4, Name: "Handwoven Scarf", PriceCents: 6500, Quantity: 2},
	}
}

func TestSubmitOrder_BuildsRequestFromSnapshot(t *testing.T) {
	var got createOrderPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{
			ID:         7,
			Status:     models.OrderStatusPending,
			TotalCents: got.Total,
		})
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)
	order, err := oc.SubmitOrder(context.Background(), snapshot(), 18900+2*6500)
	require.NoError(t, err)

	assert.Equal(t, uint(7), order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// Request body: total, per-item price and quantity, order preserved
	assert.Equal(t, 31900, got.Total)
	assert.Equal(t, "pending", got.Status)
	require.Len(t, got.Items, 2)
	assert.Equal(t, orderItemPayload{ProductID: 1, Quantity: 1, Price: 18900}, got.Items[0])
	assert.Equal(t, orderItemPayload{ProductID: 4, Quantity: 2, Price: 6500}, got.Items[1])
}

func TestSubmitOrder_EmptyCart(t *testing.T) {
	oc := NewOrderClient("http://127.0.0.1:0")
	_, err := oc.SubmitOrder(context.Background(), nil, 0)
	require.Error(t, err)
}

func TestSubmitOrder_ServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"total must be 0 or greater","field":"total"}`))
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)
	_, err := oc.SubmitOrder(context.Background(), snapshot(), -1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestSubmitOrder_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	oc := NewOrderClient(srv.URL)
	_, err := oc.SubmitOrder(context.Background(), snapshot(), 31900)
	require.Error(t, err)
}

func TestCheckoutFlow_CartClearedOnlyOnSuccess(t *testing.T) {
	fail := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: 1})
	}))
	defer srv.Close()

	store := cart.NewStore(cart.NewMemoryStorage())
	store.AddItem(models.Product{ID: 1, Name: "Blazer", PriceCents: 18900})
	oc := NewOrderClient(srv.URL)

	// Failed submission leaves the cart untouched so the shopper can retry.
	_, err := oc.SubmitOrder(context.Background(), store.Items(), store.Total())
	require.Error(t, err)
	assert.Len(t, store.Items(), 1)

	fail = false
	_, err = oc.SubmitOrder(context.Background(), store.Items(), store.Total())
	require.NoError(t, err)
	store.Clear()
	assert.Empty(t, store.Items())
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Product not found"}`))
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)
	_, err := oc.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{
			{ID: 2, Name: "Tunic", PriceCents: 12500},
			{ID: 1, Name: "Blazer", PriceCents: 18900},
		})
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)
	products, err := oc.GetProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, uint(2), products[0].ID)
}
