package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	repository "github.com/zizo-ux/tm-auto-elite-shop/internal/repositories"
)

func setupDiagnoseRepoTest(t *testing.T) (repository.DiagnoseRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewDiagnoseRepo(db)
	require.NotNil(t, repo)

	return repo, mock
}

func diagnoseRows(requests ...models.DiagnoseRequest) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "customer_name", "email", "phone", "address", "car_make", "car_model",
		"car_year", "vin", "problem_description", "service_type", "urgency_level",
		"images", "status", "admin_response", "recommended_products", "created_at", "updated_at",
	})

	for _, r := range requests {
		rows.AddRow(r.ID, r.CustomerName, r.Email, r.Phone, r.Address, r.CarMake, r.CarModel,
			r.CarYear, r.VIN, r.ProblemDescription, r.ServiceType, r.UrgencyLevel,
			arrayLiteral(r.Images), r.Status, r.AdminResponse, arrayLiteral(r.RecommendedProducts),
			r.CreatedAt, r.UpdatedAt)
	}

	return rows
}

// arrayLiteral renders the wire format pq.StringArray scans from.
func arrayLiteral(values []string) []byte {
	return []byte("{" + strings.Join(values, ",") + "}")
}

func diagnoseFixture() models.DiagnoseRequest {
	return models.DiagnoseRequest{
		ID:                 uuid.New(),
		CustomerName:       "Thabo Mokoena",
		Email:              "thabo@example.com",
		Phone:              "+27821234567",
		CarMake:            "Toyota",
		CarModel:           "Hilux",
		CarYear:            2018,
		ProblemDescription: "Grinding noise from the front when braking",
		ServiceType:        "brake inspection",
		UrgencyLevel:       models.UrgencyHigh,
		Status:             models.DiagnoseStatusPending,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}
}

func TestCreateRequestRepo(t *testing.T) {
	repo, mock := setupDiagnoseRepoTest(t)
	ctx := t.Context()

	expectedSQL := regexp.QuoteMeta(`INSERT INTO diagnose_requests`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := diagnoseFixture()
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateRequest(ctx, &req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, now, req.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insert Error", func(t *testing.T) {
		// Arrange
		req := diagnoseFixture()

		mock.ExpectQuery(expectedSQL).WillReturnError(errors.New("insert failed"))

		// Act
		err := repo.CreateRequest(ctx, &req)

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetRequestByIDRepo(t *testing.T) {
	repo, mock := setupDiagnoseRepoTest(t)
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		expected := diagnoseFixture()
		expected.Images = []string{"https://cdn.example.com/one.jpg"}

		mock.ExpectQuery(regexp.QuoteMeta(`FROM diagnose_requests WHERE id = $1`)).
			WithArgs(expected.ID).
			WillReturnRows(diagnoseRows(expected))

		// Act
		request, err := repo.GetRequestByID(ctx, expected.ID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, expected.CustomerName, request.CustomerName)
		assert.Len(t, request.Images, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM diagnose_requests WHERE id = $1`)).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		// Act
		request, err := repo.GetRequestByID(ctx, id)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, request)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListRequestsRepo(t *testing.T) {
	repo, mock := setupDiagnoseRepoTest(t)
	ctx := t.Context()

	expectedSQL := regexp.QuoteMeta(`FROM diagnose_requests ORDER BY created_at DESC`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		first := diagnoseFixture()
		second := diagnoseFixture()
		second.CustomerName = "Lerato Dlamini"

		mock.ExpectQuery(expectedSQL).WillReturnRows(diagnoseRows(first, second))

		// Act
		requests, err := repo.ListRequests(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Empty Table", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).WillReturnRows(diagnoseRows())

		// Act
		requests, err := repo.ListRequests(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Empty(t, requests)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateRequestRepo(t *testing.T) {
	repo, mock := setupDiagnoseRepoTest(t)
	ctx := t.Context()

	expectedSQL := regexp.QuoteMeta(`UPDATE diagnose_requests`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := diagnoseFixture()
		req.Status = models.DiagnoseStatusInProgress
		req.AdminResponse = "Booked for inspection"
		updatedAt := time.Now()

		mock.ExpectQuery(expectedSQL).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

		// Act
		err := repo.UpdateRequest(ctx, &req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, updatedAt, req.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		req := diagnoseFixture()

		mock.ExpectQuery(expectedSQL).WillReturnError(sql.ErrNoRows)

		// Act
		err := repo.UpdateRequest(ctx, &req)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountRequestsRepo(t *testing.T) {
	repo, mock := setupDiagnoseRepoTest(t)
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT COUNT`).
			WillReturnRows(sqlmock.NewRows([]string{"count", "pending"}).AddRow(7, 2))

		// Act
		total, pending, err := repo.CountRequests(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 7, total)
		assert.Equal(t, 2, pending)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
