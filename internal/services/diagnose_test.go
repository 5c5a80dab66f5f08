package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appErrors "github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/repositories/mocks"
	service "github.com/zizo-ux/tm-auto-elite-shop/internal/services"
	"github.com/zizo-ux/tm-auto-elite-shop/pkg/sendgrid"
	emailMocks "github.com/zizo-ux/tm-auto-elite-shop/pkg/sendgrid/mocks"
)

const workshopEmail = "workshop@tmautoelite.example"

func setupDiagnoseServiceTest() (*mocks.DiagnoseRepository, *emailMocks.EmailService, service.DiagnoseService) {
	mockRepo := new(mocks.DiagnoseRepository)
	mockEmail := new(emailMocks.EmailService)
	diagnoseService := service.NewDiagnoseService(mockRepo, mockEmail, workshopEmail)

	return mockRepo, mockEmail, diagnoseService
}

func submitFixture() *models.CreateDiagnoseRequest {
	return &models.CreateDiagnoseRequest{
		CustomerName:       "Thabo Mokoena",
		Email:              "thabo@example.com",
		Phone:              "+27821234567",
		CarMake:            "Toyota",
		CarModel:           "Hilux",
		CarYear:            2018,
		ProblemDescription: "Grinding noise from the front when braking",
		ServiceType:        "brake inspection",
		UrgencyLevel:       models.UrgencyHigh,
	}
}

func TestSubmitRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Request Stored And Workshop Notified", func(t *testing.T) {
		// Arrange
		mockRepo, mockEmail, diagnoseService := setupDiagnoseServiceTest()
		req := submitFixture()

		mockRepo.On("CreateRequest", mock.Anything, mock.MatchedBy(func(r *models.DiagnoseRequest) bool {
			return r.CustomerName == req.CustomerName &&
				r.Status == models.DiagnoseStatusPending &&
				r.ID != uuid.Nil
		})).Return(nil).Once()
		mockEmail.On("Send", mock.Anything, mock.MatchedBy(func(msg *sendgrid.EmailMessage) bool {
			return msg.To == workshopEmail
		})).Return(nil).Once()

		// Act
		request, err := diagnoseService.SubmitRequest(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, request)
		assert.Equal(t, models.DiagnoseStatusPending, request.Status)
		mockRepo.AssertExpectations(t)
		mockEmail.AssertExpectations(t)
	})

	t.Run("Success - Markup Stripped From Free Text", func(t *testing.T) {
		// Arrange
		mockRepo, mockEmail, diagnoseService := setupDiagnoseServiceTest()
		req := submitFixture()
		req.CustomerName = `<script>alert("x")</script>Thabo`
		req.ProblemDescription = `Grinding noise <img src="x" onerror="steal()"> when braking`

		mockRepo.On("CreateRequest", mock.Anything, mock.AnythingOfType("*models.DiagnoseRequest")).Return(nil).Once()
		mockEmail.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		request, err := diagnoseService.SubmitRequest(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "Thabo", request.CustomerName)
		assert.NotContains(t, request.ProblemDescription, "<img")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Email Failure Does Not Fail The Request", func(t *testing.T) {
		// Arrange
		mockRepo, mockEmail, diagnoseService := setupDiagnoseServiceTest()

		mockRepo.On("CreateRequest", mock.Anything, mock.AnythingOfType("*models.DiagnoseRequest")).Return(nil).Once()
		mockEmail.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid timeout")).Once()

		// Act
		request, err := diagnoseService.SubmitRequest(ctx, submitFixture())

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, request)
		mockRepo.AssertExpectations(t)
		mockEmail.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, mockEmail, diagnoseService := setupDiagnoseServiceTest()

		mockRepo.On("CreateRequest", mock.Anything, mock.AnythingOfType("*models.DiagnoseRequest")).Return(errors.New("insert failed")).Once()

		// Act
		request, err := diagnoseService.SubmitRequest(ctx, submitFixture())

		// Assert
		assert.Error(t, err)
		assert.Nil(t, request)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockEmail.AssertNotCalled(t, "Send")
	})
}

func TestGetRequest(t *testing.T) {
	ctx := context.Background()
	testID := uuid.New()

	t.Run("Success - Get Request", func(t *testing.T) {
		// Arrange
		mockRepo, _, diagnoseService := setupDiagnoseServiceTest()
		expected := &models.DiagnoseRequest{ID: testID, CustomerName: "Thabo Mokoena"}

		mockRepo.On("GetRequestByID", mock.Anything, testID).Return(expected, nil).Once()

		// Act
		request, err := diagnoseService.GetRequest(ctx, testID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected, request)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockRepo, _, diagnoseService := setupDiagnoseServiceTest()

		mockRepo.On("GetRequestByID", mock.Anything, testID).Return(nil, sql.ErrNoRows).Once()

		// Act
		request, err := diagnoseService.GetRequest(ctx, testID)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, request)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateRequest(t *testing.T) {
	ctx := context.Background()
	testID := uuid.New()

	existing := &models.DiagnoseRequest{
		ID:           testID,
		CustomerName: "Thabo Mokoena",
		Status:       models.DiagnoseStatusPending,
	}

	newStatus := models.DiagnoseStatusInProgress
	response := "Booked for inspection on Monday"
	req := &models.UpdateDiagnoseRequest{
		Status:              &newStatus,
		AdminResponse:       &response,
		RecommendedProducts: []string{"p-1", "p-2"},
	}

	t.Run("Success - Update Request", func(t *testing.T) {
		// Arrange
		mockRepo, _, diagnoseService := setupDiagnoseServiceTest()
		found := *existing

		mockRepo.On("GetRequestByID", mock.Anything, testID).Return(&found, nil).Once()
		mockRepo.On("UpdateRequest", mock.Anything, mock.MatchedBy(func(r *models.DiagnoseRequest) bool {
			return r.Status == newStatus && r.AdminResponse == response && len(r.RecommendedProducts) == 2
		})).Return(nil).Once()

		// Act
		updated, err := diagnoseService.UpdateRequest(ctx, testID, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, newStatus, updated.Status)
		assert.Equal(t, response, updated.AdminResponse)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Request Not Found", func(t *testing.T) {
		// Arrange
		mockRepo, _, diagnoseService := setupDiagnoseServiceTest()

		mockRepo.On("GetRequestByID", mock.Anything, testID).Return(nil, sql.ErrNoRows).Once()

		// Act
		updated, err := diagnoseService.UpdateRequest(ctx, testID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, updated)
		mockRepo.AssertNotCalled(t, "UpdateRequest")
	})
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - List Requests", func(t *testing.T) {
		// Arrange
		mockRepo, _, diagnoseService := setupDiagnoseServiceTest()
		expected := []models.DiagnoseRequest{
			{ID: uuid.New(), CustomerName: "Thabo Mokoena"},
			{ID: uuid.New(), CustomerName: "Lerato Dlamini"},
		}

		mockRepo.On("ListRequests", mock.Anything).Return(expected, nil).Once()

		// Act
		requests, err := diagnoseService.ListRequests(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		mockRepo, _, diagnoseService := setupDiagnoseServiceTest()

		mockRepo.On("ListRequests", mock.Anything).Return(nil, errors.New("query failed")).Once()

		// Act
		requests, err := diagnoseService.ListRequests(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, requests)
		mockRepo.AssertExpectations(t)
	})
}
