package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/api/middleware"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/catalog"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	service "github.com/zizo-ux/tm-auto-elite-shop/internal/services"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// BrowseCatalog answers the stateless storefront listing:
// GET /catalog?search=&category=&sort=&page=
func (h *ProductHandler) BrowseCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		query := catalog.NewQuery().
			WithSearch(r.URL.Query().Get("search")).
			WithCategory(r.URL.Query().Get("category")).
			WithSort(catalog.ParseSortKey(r.URL.Query().Get("sort")))

		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid page number"))
				return
			}

			query = query.WithPage(page)
		}

		result, err := h.productService.BrowseCatalog(r.Context(), query)
		if err != nil {
			logger.Error("Catalog browse failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// SearchProducts runs the database-backed search used by the admin screens.
// The storefront itself searches the in-memory snapshot via sessions.
func (h *ProductHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.SearchRemote(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			response.Error(w, err)
			return
		}

		if products == nil {
			products = []models.Product{}
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest

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

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Product creation failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product created", "productId", product.ID)
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		var req models.UpdateProductRequest

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

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Product update failed", "productId", id, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product updated", "productId", id)
		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product ID is required"))
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			logger.Error("Product deletion failed", "productId", id, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product deleted", "productId", id)
		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}

// RefreshCatalog forces a snapshot reload, for the admin "sync" button.
func (h *ProductHandler) RefreshCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.productService.RefreshCatalog(r.Context()); err != nil {
			logger.Error("Catalog refresh failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"status": "refreshed"})
	}
}
