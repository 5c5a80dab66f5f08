package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/handlers"
	appErrors "github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/services/mocks"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/testutils"
)

func TestLoginHandler(t *testing.T) {
	mockUserService := new(mocks.UserService)
	userHandler := handlers.NewUserHandler(mockUserService)

	t.Run("Success - Valid Credentials", func(t *testing.T) {
		// Arrange
		reqBody := models.LoginRequest{Username: "admin", Password: "correct-horse"}
		body, _ := json.Marshal(reqBody)

		expected := &models.LoginResponse{Token: "signed.jwt.token", ExpiresAt: time.Now().Add(time.Hour).Unix()}
		mockUserService.On("Login", mock.Anything, &reqBody).Return(expected, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/admin/login", bytes.NewReader(body), nil)

		// Act
		userHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		envelope := decodeEnvelope(t, rr.Body)

		var resp models.LoginResponse
		assert.NoError(t, json.Unmarshal(envelope.Data, &resp))
		assert.Equal(t, expected.Token, resp.Token)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Credentials", func(t *testing.T) {
		// Arrange
		reqBody := models.LoginRequest{Username: "admin", Password: "wrong"}
		body, _ := json.Marshal(reqBody)

		mockUserService.On("Login", mock.Anything, &reqBody).
			Return(nil, appErrors.UnauthorizedError("Invalid credentials")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/admin/login", bytes.NewReader(body), nil)

		// Act
		userHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUserService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Password", func(t *testing.T) {
		// Arrange
		body, _ := json.Marshal(models.LoginRequest{Username: "admin"})

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/admin/login", bytes.NewReader(body), nil)

		// Act
		userHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockUserService.AssertNotCalled(t, "Login")
	})
}
