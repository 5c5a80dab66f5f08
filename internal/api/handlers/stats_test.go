package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/handlers"
	appErrors "github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/services/mocks"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/testutils"
)

func TestDashboardStatsHandler(t *testing.T) {
	mockStatsService := new(mocks.StatsService)
	statsHandler := handlers.NewStatsHandler(mockStatsService)

	t.Run("Success - Stats Returned", func(t *testing.T) {
		// Arrange
		expected := &models.DashboardStats{
			TotalProducts:   20,
			LowStockCount:   3,
			TotalRequests:   7,
			PendingRequests: 2,
			Categories:      map[string]int{"engine": 12, "braking": 8},
		}

		mockStatsService.On("DashboardStats", mock.Anything).Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/admin/stats", nil, "admin", nil)

		// Act
		statsHandler.DashboardStats().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		envelope := decodeEnvelope(t, rr.Body)

		var stats models.DashboardStats
		assert.NoError(t, json.Unmarshal(envelope.Data, &stats))
		assert.Equal(t, 20, stats.TotalProducts)
		assert.Equal(t, 2, stats.PendingRequests)
		mockStatsService.AssertExpectations(t)
	})

	t.Run("Failure - Service Error", func(t *testing.T) {
		// Arrange
		mockStatsService.On("DashboardStats", mock.Anything).
			Return(nil, appErrors.DatabaseError("Failed to count products")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/admin/stats", nil, "admin", nil)

		// Act
		statsHandler.DashboardStats().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStatsService.AssertExpectations(t)
	})
}
