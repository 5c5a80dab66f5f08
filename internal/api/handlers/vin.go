package handlers

import (
	"net/http"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/middleware"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	service "github.com/zizo-ux/tm-auto-elite-shop/internal/services"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils/response"
)

type VinHandler struct {
	vinService service.VinService
}

func NewVinHandler(vinService service.VinService) *VinHandler {
	return &VinHandler{vinService: vinService}
}

// LookupVin decodes GET /vin/{vin} and returns the vehicle plus matching
// catalog parts.
func (h *VinHandler) LookupVin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		vin := r.PathValue("vin")
		if vin == "" {
			response.Error(w, errors.BadRequestError("VIN is required"))
			return
		}

		result, err := h.vinService.Lookup(r.Context(), vin)
		if err != nil {
			logger.Warn("VIN lookup failed", "vin", vin, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("VIN decoded", "vin", vin, "make", result.Vehicle.Make)
		response.Success(w, http.StatusOK, result)
	}
}
