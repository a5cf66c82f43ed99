package orders_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcart/models"
	"quickcart/ratelim"
	"quickcart/routes"
	"quickcart/store"
)

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Error      string             `json:"error"`
	Message    string             `json:"message"`
	Details    []string           `json:"details"`
	Count      *int               `json:"count"`
	Pagination *models.Pagination `json:"pagination"`
}

func newTestRouter(t *testing.T) *httprouter.Router {
	t.Helper()
	store.Reset()
	return routes.NewRouter(ratelim.New(1000, time.Minute))
}

func do(t *testing.T, router *httprouter.Router, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func shippingAddr() map[string]any {
	return map[string]any{
		"fullName": "John Smith",
		"street":   "456 Oak Avenue",
		"city":     "Springfield",
		"state":    "Illinois",
		"zipCode":  "62701",
		"country":  "USA",
	}
}

func TestCreateOrderDerivesMoney(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/orders", map[string]any{
		"userId": 2,
		"items": []map[string]any{
			{"productId": 3, "productName": "PlayStation 5 Controller", "price": 59.99, "quantity": 2},
		},
		"shippingAddress": shippingAddr(),
		"paymentMethod":   "credit_card",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))

	assert.Equal(t, 119.98, got.Subtotal)
	assert.Equal(t, 9.0, got.Tax)
	assert.Equal(t, 0.0, got.ShippingFee) // free above the threshold
	assert.Equal(t, 0.0, got.Discount)
	assert.Equal(t, 128.98, got.TotalAmount)
	assert.Equal(t, models.OrderPending, got.Status)
	assert.Equal(t, "pending", got.PaymentStatus)
	assert.Equal(t, 119.98, got.Items[0].Total)
	assert.Equal(t, got.ShippingAddress, got.BillingAddress)
	assert.Equal(t, fmt.Sprintf("ORD-%d-005", time.Now().Year()), got.OrderNumber)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), got.ExpectedDelivery, time.Minute)
}

func TestCreateOrderFlatShippingBelowThreshold(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodPost, "/api/orders", map[string]any{
		"userId": 3,
		"items": []map[string]any{
			{"productId": 7, "productName": "JBL Bluetooth Speaker", "price": 40.00, "quantity": 2},
		},
		"shippingAddress": shippingAddr(),
		"paymentMethod":   "paypal",
	})

	var got models.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 80.0, got.Subtotal)
	assert.Equal(t, 6.0, got.Tax)
	assert.Equal(t, 15.99, got.ShippingFee)
	assert.Equal(t, 101.99, got.TotalAmount)
}

func TestCreateOrderMissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/orders", map[string]any{"userId": 2})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", env.Error)
	assert.Equal(t, "UserId, items, shippingAddress, and paymentMethod are required", env.Message)
}

func TestCreateOrderValidationDetails(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/orders", map[string]any{
		"userId": 2,
		"items": []map[string]any{
			{"productId": 3, "productName": "", "price": 59.99, "quantity": 0},
		},
		"shippingAddress": map[string]any{"fullName": "John Smith", "street": "456 Oak Avenue"},
		"paymentMethod":   "cash",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Error)
	assert.Contains(t, env.Details, "Item 1: Product name is required")
	assert.Contains(t, env.Details, "Item 1: Valid quantity is required")
	assert.Contains(t, env.Details, "Shipping address city is required")
	assert.Contains(t, env.Details, "Shipping address zipCode is required")
	assert.Contains(t, env.Details, "Valid payment method is required (credit_card, debit_card, paypal, bank_transfer)")
}

func TestUpdateOrderShippedStampsTracking(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPut, "/api/orders/3", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.TrackingNumber)
	assert.True(t, strings.HasPrefix(*got.TrackingNumber, "TRK"))
	first := *got.TrackingNumber

	// a repeated transition must not regenerate the number
	_, env = do(t, router, http.MethodPut, "/api/orders/3", map[string]any{"status": "shipped"})
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.TrackingNumber)
	assert.Equal(t, first, *got.TrackingNumber)
}

func TestUpdateOrderDeliveredStampsDate(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodPut, "/api/orders/2", map[string]any{"status": "delivered"})
	var got models.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.DeliveredDate)
	stamped := *got.DeliveredDate

	_, env = do(t, router, http.MethodPut, "/api/orders/2", map[string]any{"status": "delivered"})
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.NotNil(t, got.DeliveredDate)
	assert.Equal(t, stamped, *got.DeliveredDate)
}

func TestUpdateOrderInvalidStatus(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPut, "/api/orders/1", map[string]any{"status": "lost"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Details, "Status must be one of: pending, processing, shipped, delivered, cancelled")
}

func TestDeleteOrderPendingOnly(t *testing.T) {
	router := newTestRouter(t)

	// order 1 is delivered and must survive the attempt
	rec, env := do(t, router, http.MethodDelete, "/api/orders/1", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cannot delete order", env.Error)
	assert.Equal(t, "Only pending orders can be deleted", env.Message)

	rec, _ = do(t, router, http.MethodGet, "/api/orders/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// order 4 is pending
	rec, _ = do(t, router, http.MethodDelete, "/api/orders/4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, router, http.MethodGet, "/api/orders/4", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOrdersFilterByStatus(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/orders?status=shipped", nil)
	var got []models.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestListOrdersDefaultSortNewestFirst(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/orders", nil)
	var got []models.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i-1].OrderDate.Before(got[i].OrderDate))
	}
}

func TestUserOrders(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/orders/user/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
}

func TestOrderStats(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/orders/stats/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		TotalOrders            int                `json:"totalOrders"`
		TotalRevenue           float64            `json:"totalRevenue"`
		AverageOrderValue      float64            `json:"averageOrderValue"`
		StatusBreakdown        map[string]int     `json:"statusBreakdown"`
		PaymentStatusBreakdown map[string]int     `json:"paymentStatusBreakdown"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))

	assert.Equal(t, 4, got.TotalOrders)
	assert.Equal(t, 1939.93, got.TotalRevenue)
	assert.Equal(t, 484.98, got.AverageOrderValue)
	assert.Equal(t, 1, got.StatusBreakdown["delivered"])
	assert.Equal(t, 1, got.StatusBreakdown["pending"])
	assert.Equal(t, 3, got.PaymentStatusBreakdown["paid"])
}

func TestConcurrentOrderCreation(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{
		"userId": 2,
		"items": []map[string]any{
			{"productId": 1, "productName": "Bose QuietComfort 45 Headphones", "price": 299.99, "quantity": 1},
		},
		"shippingAddress": shippingAddr(),
		"paymentMethod":   "credit_card",
	}

	const n = 8
	var wg sync.WaitGroup
	codes := make([]int, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			var buf bytes.Buffer
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				return
			}
			req := httptest.NewRequest(http.MethodPost, "/api/orders", &buf)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusCreated, code)
	}

	seen := map[string]bool{}
	for _, o := range store.Orders.All() {
		require.False(t, seen[o.OrderNumber], "duplicate order number %s", o.OrderNumber)
		seen[o.OrderNumber] = true
	}
	assert.Len(t, store.Orders.All(), 4+n)
}
