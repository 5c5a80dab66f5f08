package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/cache"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/catalog"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	repository "github.com/zizo-ux/tm-auto-elite-shop/internal/repositories"
)

type ProductService interface {
	RefreshCatalog(ctx context.Context) error
	BrowseCatalog(ctx context.Context, query catalog.Query) (*models.PaginatedResponse, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	SearchRemote(ctx context.Context, query string) ([]models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	repo     repository.ProductRepository
	store    *catalog.Store
	cache    cache.Cache
	pageSize int
}

func NewProductService(repo repository.ProductRepository, store *catalog.Store, c cache.Cache, pageSize int) ProductService {
	return &productService{repo: repo, store: store, cache: c, pageSize: pageSize}
}

// RefreshCatalog replaces the session snapshot with a full re-fetch. A fetch
// failure leaves the previous snapshot in place and falls back to the cached
// list when one exists; the caller decides whether to surface the error for
// a manual retry.
func (s *productService) RefreshCatalog(ctx context.Context) error {

	products, err := s.repo.ListAllProducts(ctx)
	if err != nil {

		var cached []models.Product

		found, cacheErr := s.cache.Get(ctx, cache.CatalogListKey, &cached)
		if cacheErr == nil && found {
			slog.Warn("Product fetch failed, serving cached catalog", slog.String("error", err.Error()))

			if replaceErr := s.store.Replace(cached); replaceErr == nil {
				return nil
			}
		}

		return errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	if err := s.store.Replace(products); err != nil {
		return errors.InternalError("Product snapshot rejected").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.CatalogListKey, products, 0); err != nil {
		slog.Warn("Failed to cache catalog snapshot", slog.String("error", err.Error()))
	}

	return nil
}

// BrowseCatalog projects the in-memory snapshot through the filter/sort/page
// pipeline. It never touches the database.
func (s *productService) BrowseCatalog(ctx context.Context, query catalog.Query) (*models.PaginatedResponse, error) {

	if s.store.Len() == 0 {
		if err := s.RefreshCatalog(ctx); err != nil {
			return nil, err
		}
	}

	page := catalog.Project(s.store.All(), query, s.pageSize)

	return &models.PaginatedResponse{
		Data:       page.Items,
		Total:      page.TotalMatches,
		Page:       page.Page,
		PageSize:   s.pageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	if product, ok := s.store.Get(id); ok {
		return &product, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found")
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

// SearchRemote delegates to the database's ILIKE search, the remote
// counterpart of the snapshot's SearchLocal.
func (s *productService) SearchRemote(ctx context.Context, query string) ([]models.Product, error) {

	products, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("Failed to search products").WithError(err)
	}

	return products, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		Brand:              req.Brand,
		Category:           req.Category,
		PartNumber:         req.PartNumber,
		CompatibleVehicles: req.CompatibleVehicles,
		Price:              req.Price,
		SalePrice:          req.SalePrice,
		StockQuantity:      req.StockQuantity,
		ImageURL:           req.ImageURL,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	s.refreshAfterMutation(ctx)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found")
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.Brand != nil {
		product.Brand = *req.Brand
	}

	if req.Category != nil {
		product.Category = *req.Category
	}

	if req.PartNumber != nil {
		product.PartNumber = *req.PartNumber
	}

	if req.CompatibleVehicles != nil {
		product.CompatibleVehicles = *req.CompatibleVehicles
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.SalePrice != nil {
		product.SalePrice = req.SalePrice
	}

	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.refreshAfterMutation(ctx)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Product not found")
		}

		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.refreshAfterMutation(ctx)

	return nil
}

// refreshAfterMutation re-fetches the catalog wholesale instead of patching
// the snapshot incrementally. A failed refresh is logged, not surfaced: the
// mutation itself succeeded and the next browse will retry.
func (s *productService) refreshAfterMutation(ctx context.Context) {
	if err := s.RefreshCatalog(ctx); err != nil {
		slog.Error("Catalog refresh after mutation failed", slog.String("error", err.Error()))
	}
}
