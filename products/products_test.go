package products_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func TestListProductsDefaultLimit(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var got []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 4)

	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.CurrentPage)
	assert.Equal(t, 7, env.Pagination.TotalItems)
	assert.Equal(t, 4, env.Pagination.ItemsPerPage)
	assert.Equal(t, 2, env.Pagination.TotalPages)
}

func TestListProductsPagination(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/products?limit=2&page=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 4, got[1].ID)

	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
	assert.Equal(t, 4, env.Pagination.TotalPages)
}

func TestListProductsLimitCap(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/products?limit=101", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Limit must be a positive number between 1 and 100", env.Message)
}

func TestListProductsSearch(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/products?search=gaming", nil)
	var got []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestListProductsPriceFilterUsesOfferPrice(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/products?minPrice=700&maxPrice=900&limit=10", nil)
	var got []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 2)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.OfferPrice, 700.0)
		assert.LessOrEqual(t, p.OfferPrice, 900.0)
	}
}

func TestListProductsSortByPriceDesc(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/products?sortBy=price&sortOrder=desc&limit=10", nil)
	var got []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 7)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/products/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", env.Error)
	assert.Equal(t, "Product with ID 999 does not exist", env.Message)
}

func TestGetProductInvalidID(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestCreateProductValidation(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodPost, "/api/products", map[string]any{
		"name":     "",
		"price":    -5,
		"category": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", env.Error)
	assert.Contains(t, env.Details, "Product name is required and must be a non-empty string")
	assert.Contains(t, env.Details, "Price is required and must be a positive number")
	assert.Contains(t, env.Details, "Category is required and must be a non-empty string")
}

func TestCreateProductIDsNeverReused(t *testing.T) {
	router := newTestRouter(t)

	body := map[string]any{"name": "Smart Watch", "price": 199.99, "category": "Wearables"}

	rec, env := do(t, router, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var first models.Product
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Equal(t, 8, first.ID)
	assert.Equal(t, 199.99, first.OfferPrice)
	assert.True(t, first.InStock)

	rec, _ = do(t, router, http.MethodDelete, "/api/products/8", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = do(t, router, http.MethodPost, "/api/products", body)
	var second models.Product
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, 9, second.ID)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	router := newTestRouter(t)

	before, _ := store.Products.Get(1)

	rec, env := do(t, router, http.MethodPut, "/api/products/1", map[string]any{"price": 310.00})
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 310.00, got.Price)
	assert.Equal(t, before.Name, got.Name)
	assert.Equal(t, 1, got.ID)
	assert.True(t, got.UpdatedAt.After(before.UpdatedAt))
}

func TestProductsByCategory(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodGet, "/api/products/category/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestDeleteProductReturnsIt(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(t, router, http.MethodDelete, "/api/products/7", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Product
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "JBL Bluetooth Speaker", got.Name)

	rec, _ = do(t, router, http.MethodGet, "/api/products/7", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
