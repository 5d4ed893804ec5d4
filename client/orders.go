// Package client talks to the storefront API from the shopper's side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/khushi161014/studio-treta/cart"
	"github.com/khushi161014/studio-treta/models"
)

// OrderClient submits checkout requests to the order intake endpoint.
type OrderClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type orderItemPayload struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
	Price     int  `json:"price"`
}

type createOrderPayload struct {
	Items  []orderItemPayload `json:"items"`
	Total  int                `json:"total"`
	Status string             `json:"status"`
}

// SubmitOrder sends the given cart snapshot as a pending order and returns
// the record the server created. The cart itself is never touched here:
// on success the caller clears it, on failure the items stay put so the
// shopper can simply retry. Single-shot, no retries.
func (oc *OrderClient) SubmitOrder(ctx context.Context, items []cart.Item, total int) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	payload := createOrderPayload{
		Items:  make([]orderItemPayload, 0, len(items)),
		Total:  total,
		Status: string(models.OrderStatusPending),
	}
	for _, item := range items {
		payload.Items = append(payload.Items, orderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.PriceCents,
		})
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oc.BaseURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := oc.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach storefront API: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("order submission failed (%d): %s", resp.StatusCode, string(body))
	}

	var order models.Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %v", err)
	}
	return &order, nil
}

// GetProducts fetches the catalog, newest first.
func (oc *OrderClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oc.BaseURL+"/products", nil)
	if err != nil {
		return nil, err
	}
	resp, err := oc.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach storefront API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("product list failed (%d): %s", resp.StatusCode, string(body))
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to parse product list: %v", err)
	}
	return products, nil
}

// GetProduct fetches one product. A 404 comes back as ErrProductNotFound so
// the add-to-cart flow can refuse cleanly.
func (oc *OrderClient) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%d", oc.BaseURL, id), nil)
	if err != nil {
		return nil, err
	}
	resp, err := oc.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach storefront API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("product fetch failed (%d): %s", resp.StatusCode, string(body))
	}

	var product models.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("failed to parse product: %v", err)
	}
	return &product, nil
}
