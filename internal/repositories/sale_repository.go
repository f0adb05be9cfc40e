package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const createBatchSize = 500

var ErrSaleNil = errors.New("sale cannot be nil")

const categoryTotalsQuery = `
	SELECT
		category,
		SUM(price * quantity) AS total_sales
	FROM sales
	WHERE category <> ''
		AND price IS NOT NULL
		AND quantity IS NOT NULL
	GROUP BY category
`

// sqlite has no exact decimal type: numeric columns hold REAL values and
// SUM runs in floating point. The lines are read back as text and summed
// with decimal arithmetic instead.
const categoryLinesQuery = `
	SELECT
		category,
		CAST(price AS TEXT) AS price,
		CAST(quantity AS TEXT) AS quantity
	FROM sales
	WHERE category <> ''
		AND price IS NOT NULL
		AND quantity IS NOT NULL
`

type categoryLine struct {
	Category string
	Price    string
	Quantity string
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) SaleRepositoryInterface {
	return &saleRepository{
		db: db,
	}
}

// Create stores a single sale. The model hook rejects incomplete records.
func (r *saleRepository) Create(ctx context.Context, sale *models.SaleRecord) error {
	if sale == nil {
		return ErrSaleNil
	}

	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	return nil
}

// CreateBatch stores all sales in one transaction: either every record is
// written or none is.
func (r *saleRepository) CreateBatch(ctx context.Context, sales []models.SaleRecord) error {
	if len(sales) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(sales, createBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create sales batch: %w", err)
	}

	return nil
}

func (r *saleRepository) List(ctx context.Context, offset, limit int) ([]models.SaleRecord, int64, error) {
	var sales []models.SaleRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SaleRecord{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	if err := query.Order("created_at DESC, id").
		Offset(offset).
		Limit(limit).
		Find(&sales).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	return sales, total, nil
}

func (r *saleRepository) ListAll(ctx context.Context) ([]models.SaleRecord, error) {
	var sales []models.SaleRecord

	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to list all sales: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) ListByCategory(ctx context.Context, category string) ([]models.SaleRecord, error) {
	var sales []models.SaleRecord

	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at, id").
		Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales by category: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.SaleRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}

	return count, nil
}

// GetCategoryTotals groups the stored sales by category and sums
// price * quantity per group. Rows missing a field are left out. Totals are
// sorted by category in byte order regardless of the database collation.
func (r *saleRepository) GetCategoryTotals(ctx context.Context) ([]models.CategoryTotal, error) {
	var (
		totals []models.CategoryTotal
		err    error
	)

	if r.db.Dialector.Name() == "sqlite" {
		totals, err = r.sumCategoryLines(ctx)
	} else {
		totals = []models.CategoryTotal{}
		err = r.db.WithContext(ctx).Raw(categoryTotalsQuery).Scan(&totals).Error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Category < totals[j].Category
	})

	return totals, nil
}

func (r *saleRepository) sumCategoryLines(ctx context.Context) ([]models.CategoryTotal, error) {
	var lines []categoryLine
	if err := r.db.WithContext(ctx).Raw(categoryLinesQuery).Scan(&lines).Error; err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal)
	for _, line := range lines {
		price, err := decimal.NewFromString(line.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid stored price %q: %w", line.Price, err)
		}
		quantity, err := decimal.NewFromString(line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid stored quantity %q: %w", line.Quantity, err)
		}
		sums[line.Category] = sums[line.Category].Add(price.Mul(quantity))
	}

	totals := make([]models.CategoryTotal, 0, len(sums))
	for category, sum := range sums {
		totals = append(totals, models.CategoryTotal{Category: category, TotalSales: sum})
	}

	return totals, nil
}

// DeleteAll removes every stored sale and returns how many were removed
func (r *saleRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.SaleRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete sales: %w", result.Error)
	}

	return result.RowsAffected, nil
}
