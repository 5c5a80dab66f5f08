package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/middleware"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	service "github.com/zizo-ux/tm-auto-elite-shop/internal/services"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils/response"
)

type DiagnoseHandler struct {
	diagnoseService service.DiagnoseService
	validator       *validator.Validate
}

func NewDiagnoseHandler(diagnoseService service.DiagnoseService) *DiagnoseHandler {
	return &DiagnoseHandler{diagnoseService: diagnoseService, validator: validator.New()}
}

// SubmitRequest is the public intake form.
func (h *DiagnoseHandler) SubmitRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateDiagnoseRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request payload"))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			var validationErrs validator.ValidationErrors
			if stderrors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, errors.ValidationError("Invalid input"))

			return
		}

		request, err := h.diagnoseService.SubmitRequest(r.Context(), &req)
		if err != nil {
			logger.Error("Diagnostic request submission failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Diagnostic request submitted", "requestId", request.ID.String(), "urgency", request.UrgencyLevel)
		response.Success(w, http.StatusCreated, request)
	}
}

func (h *DiagnoseHandler) GetRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid request ID"))
			return
		}

		request, err := h.diagnoseService.GetRequest(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, request)
	}
}

func (h *DiagnoseHandler) ListRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		requests, err := h.diagnoseService.ListRequests(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		if requests == nil {
			requests = []models.DiagnoseRequest{}
		}

		response.Success(w, http.StatusOK, requests)
	}
}

func (h *DiagnoseHandler) UpdateRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, errors.BadRequestError("Invalid request ID"))
			return
		}

		var req models.UpdateDiagnoseRequest

		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request payload"))
			return
		}

		if err := utils.ValidateStruct(h.validator, req); err != nil {
			var validationErrs validator.ValidationErrors
			if stderrors.As(err, &validationErrs) {
				response.ValidationError(w, validationErrs)
				return
			}

			response.Error(w, errors.ValidationError("Invalid input"))

			return
		}

		request, err := h.diagnoseService.UpdateRequest(r.Context(), id, &req)
		if err != nil {
			logger.Error("Diagnostic request update failed", "requestId", id.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Diagnostic request updated", "requestId", id.String(), "status", request.Status)
		response.Success(w, http.StatusOK, request)
	}
}
