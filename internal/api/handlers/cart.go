package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/middleware"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/cart"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	service "github.com/zizo-ux/tm-auto-elite-shop/internal/services"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils/response"
)

type CartHandler struct {
	cart           *cart.Store
	productService service.ProductService
	validator      *validator.Validate
}

func NewCartHandler(cartStore *cart.Store, productService service.ProductService) *CartHandler {
	return &CartHandler{cart: cartStore, productService: productService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.cart.Snapshot())
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest

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

		product, err := h.productService.GetProduct(r.Context(), req.ProductID)
		if err != nil {
			response.Error(w, err)
			return
		}

		if !product.InStock() {
			response.Error(w, errors.BadRequestError("Product is out of stock"))
			return
		}

		if err := h.cart.Add(r.Context(), *product, req.Quantity); err != nil {
			logger.Error("Failed to add cart item", "productId", req.ProductID, "error", err.Error())
			response.Error(w, errors.InternalError("Failed to save cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cart.Snapshot())
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		var req models.UpdateQuantityRequest

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

		if err := h.cart.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
			logger.Error("Failed to update cart item", "productId", productID, "error", err.Error())
			response.Error(w, errors.InternalError("Failed to save cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cart.Snapshot())
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID := r.PathValue("id")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		if err := h.cart.Remove(r.Context(), productID); err != nil {
			logger.Error("Failed to remove cart item", "productId", productID, "error", err.Error())
			response.Error(w, errors.InternalError("Failed to save cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cart.Snapshot())
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.cart.Clear(r.Context()); err != nil {
			logger.Error("Failed to clear cart", "error", err.Error())
			response.Error(w, errors.InternalError("Failed to save cart").WithError(err))

			return
		}

		response.Success(w, http.StatusOK, h.cart.Snapshot())
	}
}
