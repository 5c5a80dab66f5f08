package service

import (
	"context"

	"github.com/zizo-ux/tm-auto-elite-shop/internal/errors"
	"github.com/zizo-ux/tm-auto-elite-shop/internal/models"
	repository "github.com/zizo-ux/tm-auto-elite-shop/internal/repositories"
)

type StatsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type statsService struct {
	products      repository.ProductRepository
	diagnose      repository.DiagnoseRepository
	lowStockFloor int
}

func NewStatsService(products repository.ProductRepository, diagnose repository.DiagnoseRepository, lowStockFloor int) StatsService {
	return &statsService{products: products, diagnose: diagnose, lowStockFloor: lowStockFloor}
}

func (s *statsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {

	categories, err := s.products.CountByCategory(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count products").WithError(err)
	}

	total := 0
	for _, count := range categories {
		total += count
	}

	lowStock, err := s.products.CountLowStock(ctx, s.lowStockFloor)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count low stock products").WithError(err)
	}

	totalRequests, pendingRequests, err := s.diagnose.CountRequests(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to count diagnostic requests").WithError(err)
	}

	return &models.DashboardStats{
		TotalProducts:   total,
		LowStockCount:   lowStock,
		TotalRequests:   totalRequests,
		PendingRequests: pendingRequests,
		Categories:      categories,
	}, nil
}
