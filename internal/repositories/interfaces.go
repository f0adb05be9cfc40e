package repositories

import (
	"context"

	"sales-analytics/internal/models"
)

// SaleRepositoryInterface defines the contract for sale record storage
type SaleRepositoryInterface interface {
	Create(ctx context.Context, sale *models.SaleRecord) error
	CreateBatch(ctx context.Context, sales []models.SaleRecord) error
	List(ctx context.Context, offset, limit int) ([]models.SaleRecord, int64, error)
	ListAll(ctx context.Context) ([]models.SaleRecord, error)
	ListByCategory(ctx context.Context, category string) ([]models.SaleRecord, error)
	Count(ctx context.Context) (int64, error)

	// GetCategoryTotals runs the category grouping inside the store
	GetCategoryTotals(ctx context.Context) ([]models.CategoryTotal, error)
	DeleteAll(ctx context.Context) (int64, error)
}
