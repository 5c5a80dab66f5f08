package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/handlers"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/cart"
	appErrors "github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/services/mocks"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/testutils"
)

type memoryStorage struct {
	data map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{data: make(map[string]string)}
}

func (s *memoryStorage) Read(ctx context.Context, key string) (string, bool, error) {
	value, ok := s.data[key]

	return value, ok, nil
}

func (s *memoryStorage) Write(ctx context.Context, key, value string) error {
	s.data[key] = value

	return nil
}

func (s *memoryStorage) Delete(ctx context.Context, key string) error {
	delete(s.data, key)

	return nil
}

func setupCartTest(t *testing.T) (*mocks.ProductService, *cart.Store, *handlers.CartHandler) {
	t.Helper()

	mockProductService := new(mocks.ProductService)

	cartStore, err := cart.NewStore(context.Background(), newMemoryStorage(), "test_cart", nil)
	require.NoError(t, err)

	return mockProductService, cartStore, handlers.NewCartHandler(cartStore, mockProductService)
}

func TestGetCartHandler(t *testing.T) {
	_, _, cartHandler := setupCartTest(t)

	t.Run("Success - Empty Cart", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/cart", nil, nil)

		// Act
		cartHandler.GetCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		envelope := decodeEnvelope(t, rr.Body)

		var snapshot models.CartResponse
		assert.NoError(t, json.Unmarshal(envelope.Data, &snapshot))
		assert.Empty(t, snapshot.Items)
		assert.Zero(t, snapshot.Total)
	})
}

func TestAddItemHandler(t *testing.T) {
	product := &models.Product{ID: "p-1", Name: "Brake Disc", Price: 45.00, StockQuantity: 8}

	t.Run("Success - Item Added", func(t *testing.T) {
		// Arrange
		mockProductService, cartStore, cartHandler := setupCartTest(t)
		mockProductService.On("GetProduct", mock.Anything, "p-1").Return(product, nil).Once()

		body, _ := json.Marshal(models.AddItemRequest{ProductID: "p-1", Quantity: 2})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/cart/items", bytes.NewReader(body), nil)

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2, cartStore.ItemCount())
		assert.InDelta(t, 90.00, cartStore.Total(), 0.001)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		mockProductService, cartStore, cartHandler := setupCartTest(t)
		mockProductService.On("GetProduct", mock.Anything, "missing").
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		body, _ := json.Marshal(models.AddItemRequest{ProductID: "missing", Quantity: 1})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/cart/items", bytes.NewReader(body), nil)

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Zero(t, cartStore.ItemCount())
	})

	t.Run("Failure - Out Of Stock", func(t *testing.T) {
		// Arrange
		mockProductService, cartStore, cartHandler := setupCartTest(t)
		depleted := &models.Product{ID: "p-2", Name: "Alternator", Price: 120.00, StockQuantity: 0}
		mockProductService.On("GetProduct", mock.Anything, "p-2").Return(depleted, nil).Once()

		body, _ := json.Marshal(models.AddItemRequest{ProductID: "p-2", Quantity: 1})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/cart/items", bytes.NewReader(body), nil)

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Zero(t, cartStore.ItemCount())
	})

	t.Run("Failure - Missing Product ID", func(t *testing.T) {
		// Arrange
		mockProductService, _, cartHandler := setupCartTest(t)

		body, _ := json.Marshal(models.AddItemRequest{Quantity: 1})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/cart/items", bytes.NewReader(body), nil)

		// Act
		cartHandler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProductService.AssertNotCalled(t, "GetProduct")
	})
}

func TestUpdateQuantityHandler(t *testing.T) {
	product := models.Product{ID: "p-1", Name: "Brake Disc", Price: 45.00, StockQuantity: 8}

	t.Run("Success - Quantity Updated", func(t *testing.T) {
		// Arrange
		_, cartStore, cartHandler := setupCartTest(t)
		require.NoError(t, cartStore.Add(context.Background(), product, 1))

		body, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 4})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/cart/items/p-1", bytes.NewReader(body), map[string]string{"id": "p-1"})

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 4, cartStore.ItemCount())
	})

	t.Run("Success - Zero Quantity Removes The Line", func(t *testing.T) {
		// Arrange
		_, cartStore, cartHandler := setupCartTest(t)
		require.NoError(t, cartStore.Add(context.Background(), product, 2))

		body, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: 0})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/cart/items/p-1", bytes.NewReader(body), map[string]string{"id": "p-1"})

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, cartStore.Items())
	})

	t.Run("Failure - Negative Quantity", func(t *testing.T) {
		// Arrange
		_, cartStore, cartHandler := setupCartTest(t)
		require.NoError(t, cartStore.Add(context.Background(), product, 2))

		body, _ := json.Marshal(models.UpdateQuantityRequest{Quantity: -1})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/cart/items/p-1", bytes.NewReader(body), map[string]string{"id": "p-1"})

		// Act
		cartHandler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 2, cartStore.ItemCount())
	})
}

func TestRemoveItemHandler(t *testing.T) {
	product := models.Product{ID: "p-1", Name: "Brake Disc", Price: 45.00, StockQuantity: 8}

	t.Run("Success - Item Removed", func(t *testing.T) {
		// Arrange
		_, cartStore, cartHandler := setupCartTest(t)
		require.NoError(t, cartStore.Add(context.Background(), product, 2))

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/cart/items/p-1", nil, map[string]string{"id": "p-1"})

		// Act
		cartHandler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, cartStore.Items())
	})

	t.Run("Success - Absent ID Is A No-Op", func(t *testing.T) {
		// Arrange
		_, cartStore, cartHandler := setupCartTest(t)
		require.NoError(t, cartStore.Add(context.Background(), product, 2))

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/cart/items/ghost", nil, map[string]string{"id": "ghost"})

		// Act
		cartHandler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2, cartStore.ItemCount())
	})
}

func TestClearCartHandler(t *testing.T) {
	product := models.Product{ID: "p-1", Name: "Brake Disc", Price: 45.00, StockQuantity: 8}

	t.Run("Success - Cart Cleared", func(t *testing.T) {
		// Arrange
		_, cartStore, cartHandler := setupCartTest(t)
		require.NoError(t, cartStore.Add(context.Background(), product, 3))

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/cart", nil, nil)

		// Act
		cartHandler.ClearCart().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, cartStore.Items())
	})
}
