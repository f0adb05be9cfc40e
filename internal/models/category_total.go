package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AggregationSourceMemory   = "memory"
	AggregationSourceDatabase = "database"
)

// CategoryTotal is the revenue of one category: the sum of price * quantity
// over every sale in it.
type CategoryTotal struct {
	Category   string          `json:"category" yaml:"category"`
	TotalSales decimal.Decimal `gorm:"column:total_sales" json:"totalSales" yaml:"totalSales"`
}

// CategoryTotalsReport wraps a set of category totals with bookkeeping
type CategoryTotalsReport struct {
	Totals      []CategoryTotal `json:"totals"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
	RecordCount int64           `json:"recordCount"`
	Source      string          `json:"source"`
	Cached      bool            `json:"cached"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// IsValidAggregationSource reports whether source names a known aggregation path
func IsValidAggregationSource(source string) bool {
	return source == AggregationSourceMemory || source == AggregationSourceDatabase
}

// SumTotals adds up the totals of every category
func SumTotals(totals []CategoryTotal) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.TotalSales)
	}
	return sum
}
