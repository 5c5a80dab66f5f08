package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	repository "github.com/zizo-ux/tm-auto-elite-shop/internal/repositories"
	"github.com/zizo-ux/tm-auto-elite-shop/pkg/sendgrid"
)

type DiagnoseService interface {
	SubmitRequest(ctx context.Context, req *models.CreateDiagnoseRequest) (*models.DiagnoseRequest, error)
	GetRequest(ctx context.Context, id uuid.UUID) (*models.DiagnoseRequest, error)
	ListRequests(ctx context.Context) ([]models.DiagnoseRequest, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, req *models.UpdateDiagnoseRequest) (*models.DiagnoseRequest, error)
}

type diagnoseService struct {
	repo          repository.DiagnoseRepository
	emailService  sendgrid.EmailService
	workshopEmail string
	sanitizer     *bluemonday.Policy
}

func NewDiagnoseService(repo repository.DiagnoseRepository, emailService sendgrid.EmailService, workshopEmail string) DiagnoseService {
	return &diagnoseService{
		repo:          repo,
		emailService:  emailService,
		workshopEmail: workshopEmail,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// SubmitRequest stores a customer diagnostic request and notifies the
// workshop by email. The email is best effort: a delivery failure is logged
// and the request still succeeds.
func (s *diagnoseService) SubmitRequest(ctx context.Context, req *models.CreateDiagnoseRequest) (*models.DiagnoseRequest, error) {

	request := &models.DiagnoseRequest{
		ID:                 uuid.New(),
		CustomerName:       s.clean(req.CustomerName),
		Email:              strings.TrimSpace(req.Email),
		Phone:              s.clean(req.Phone),
		Address:            s.clean(req.Address),
		CarMake:            s.clean(req.CarMake),
		CarModel:           s.clean(req.CarModel),
		CarYear:            req.CarYear,
		VIN:                strings.ToUpper(strings.TrimSpace(req.VIN)),
		ProblemDescription: s.clean(req.ProblemDescription),
		ServiceType:        s.clean(req.ServiceType),
		UrgencyLevel:       req.UrgencyLevel,
		Images:             req.Images,
		Status:             models.DiagnoseStatusPending,
	}

	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, errors.DatabaseError("Failed to save diagnostic request").WithError(err)
	}

	s.notifyWorkshop(ctx, request)

	return request, nil
}

func (s *diagnoseService) GetRequest(ctx context.Context, id uuid.UUID) (*models.DiagnoseRequest, error) {

	request, err := s.repo.GetRequestByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Diagnostic request not found")
		}

		return nil, errors.DatabaseError("Failed to fetch diagnostic request").WithError(err)
	}

	return request, nil
}

func (s *diagnoseService) ListRequests(ctx context.Context) ([]models.DiagnoseRequest, error) {

	requests, err := s.repo.ListRequests(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list diagnostic requests").WithError(err)
	}

	return requests, nil
}

func (s *diagnoseService) UpdateRequest(ctx context.Context, id uuid.UUID, req *models.UpdateDiagnoseRequest) (*models.DiagnoseRequest, error) {

	request, err := s.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		request.Status = *req.Status
	}

	if req.AdminResponse != nil {
		request.AdminResponse = s.clean(*req.AdminResponse)
	}

	if req.RecommendedProducts != nil {
		request.RecommendedProducts = req.RecommendedProducts
	}

	if err := s.repo.UpdateRequest(ctx, request); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Diagnostic request not found")
		}

		return nil, errors.DatabaseError("Failed to update diagnostic request").WithError(err)
	}

	return request, nil
}

func (s *diagnoseService) clean(value string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(value))
}

func (s *diagnoseService) notifyWorkshop(ctx context.Context, request *models.DiagnoseRequest) {

	if s.emailService == nil || s.workshopEmail == "" {
		return
	}

	msg := &sendgrid.EmailMessage{
		To:      s.workshopEmail,
		Subject: fmt.Sprintf("New diagnostic request: %s %s (%s)", request.CarMake, request.CarModel, request.UrgencyLevel),
		Content: fmt.Sprintf(
			"Customer: %s <%s>\nPhone: %s\nVehicle: %d %s %s\nService: %s\nUrgency: %s\n\n%s",
			request.CustomerName, request.Email, request.Phone,
			request.CarYear, request.CarMake, request.CarModel,
			request.ServiceType, request.UrgencyLevel,
			request.ProblemDescription,
		),
	}

	if err := s.emailService.Send(ctx, msg); err != nil {
		slog.Error("Failed to send workshop notification",
			slog.String("request_id", request.ID.String()),
			slog.String("error", err.Error()))
	}
}
