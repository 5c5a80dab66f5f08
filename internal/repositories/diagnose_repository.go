package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils"
)

type DiagnoseRepository interface {
	CreateRequest(ctx context.Context, req *models.DiagnoseRequest) error
	GetRequestByID(ctx context.Context, id uuid.UUID) (*models.DiagnoseRequest, error)
	ListRequests(ctx context.Context) ([]models.DiagnoseRequest, error)
	UpdateRequest(ctx context.Context, req *models.DiagnoseRequest) error
	CountRequests(ctx context.Context) (total int, pending int, err error)
}

type diagnoseRepository struct {
	DB *sql.DB
}

func NewDiagnoseRepo(db *sql.DB) DiagnoseRepository {
	return &diagnoseRepository{DB: db}
}

const diagnoseColumns = `id, customer_name, email, phone, address, car_make, car_model, car_year, vin, problem_description, service_type, urgency_level, images, status, admin_response, recommended_products, created_at, updated_at`

func (r *diagnoseRepository) CreateRequest(ctx context.Context, req *models.DiagnoseRequest) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO diagnose_requests (id, customer_name, email, phone, address, car_make, car_model, car_year, vin, problem_description, service_type, urgency_level, images, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		req.ID, req.CustomerName, req.Email, req.Phone, req.Address,
		req.CarMake, req.CarModel, req.CarYear, req.VIN,
		req.ProblemDescription, req.ServiceType, req.UrgencyLevel,
		pq.Array(req.Images), req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
}

func (r *diagnoseRepository) GetRequestByID(ctx context.Context, id uuid.UUID) (*models.DiagnoseRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + diagnoseColumns + ` FROM diagnose_requests WHERE id = $1`

	req, err := scanDiagnoseRequest(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return req, nil
}

func (r *diagnoseRepository) ListRequests(ctx context.Context) ([]models.DiagnoseRequest, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + diagnoseColumns + ` FROM diagnose_requests ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var requests []models.DiagnoseRequest

	for rows.Next() {
		req, err := scanDiagnoseRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning diagnose request: %w", err)
		}

		requests = append(requests, *req)
	}

	return requests, rows.Err()
}

func (r *diagnoseRepository) UpdateRequest(ctx context.Context, req *models.DiagnoseRequest) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE diagnose_requests
		SET status = $1, admin_response = $2, recommended_products = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query,
		req.Status, req.AdminResponse, pq.Array(req.RecommendedProducts), req.ID,
	).Scan(&req.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}

		return fmt.Errorf("failed to update diagnose request: %w", err)
	}

	return nil
}

func (r *diagnoseRepository) CountRequests(ctx context.Context) (int, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total, pending int

	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'pending') FROM diagnose_requests`

	if err := r.DB.QueryRowContext(dbCtx, query).Scan(&total, &pending); err != nil {
		return 0, 0, fmt.Errorf("querying database: %w", err)
	}

	return total, pending, nil
}

func scanDiagnoseRequest(row rowScanner) (*models.DiagnoseRequest, error) {

	req := &models.DiagnoseRequest{}

	var vin, adminResponse sql.NullString

	err := row.Scan(
		&req.ID, &req.CustomerName, &req.Email, &req.Phone, &req.Address,
		&req.CarMake, &req.CarModel, &req.CarYear, &vin,
		&req.ProblemDescription, &req.ServiceType, &req.UrgencyLevel,
		&req.Images, &req.Status, &adminResponse, &req.RecommendedProducts,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.VIN = vin.String
	req.AdminResponse = adminResponse.String

	return req, nil
}
