package dto

import (
	"time"

	"sales-analytics/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRecordRequest is one sale as posted by clients. Numeric fields are
// nullable so an absent value reaches the service as missing, not zero.
type SaleRecordRequest struct {
	Category string              `json:"category" yaml:"category" validate:"omitempty,sale_category"`
	Price    decimal.NullDecimal `json:"price" yaml:"price"`
	Quantity decimal.NullDecimal `json:"quantity" yaml:"quantity"`
}

// CreateSalesRequest is the body of POST /sales and POST /sales/aggregate
type CreateSalesRequest struct {
	Records []SaleRecordRequest `json:"records" validate:"dive"`
}

// ToModel converts the request into a sale record
func (r SaleRecordRequest) ToModel() models.SaleRecord {
	return models.SaleRecord{
		Category: r.Category,
		Price:    r.Price,
		Quantity: r.Quantity,
	}
}

// ToModels converts every posted record, keeping their order
func (r CreateSalesRequest) ToModels() []models.SaleRecord {
	records := make([]models.SaleRecord, 0, len(r.Records))
	for _, record := range r.Records {
		records = append(records, record.ToModel())
	}
	return records
}

// ListSalesQuery holds the pagination parameters of GET /sales
type ListSalesQuery struct {
	Offset int `query:"offset" validate:"gte=0"`
	Limit  int `query:"limit" validate:"gte=0,lte=100"`
}

// CategoryTotalsQuery holds the parameters of GET /sales/category-totals
type CategoryTotalsQuery struct {
	Source string `query:"source" validate:"omitempty,aggregation_source"`
}

// AggregateQuery holds the parameters of POST /sales/aggregate
type AggregateQuery struct {
	Policy string `query:"policy" validate:"omitempty,record_policy"`
}

// CreateSalesResponse reports how many records were stored
type CreateSalesResponse struct {
	Inserted int `json:"inserted"`
}

// SaleResponse is a stored sale record
type SaleResponse struct {
	ID        uuid.UUID        `json:"id"`
	Category  string           `json:"category"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  *decimal.Decimal `json:"quantity"`
	LineTotal *decimal.Decimal `json:"lineTotal,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ListSalesResponse represents the response for listing sales
type ListSalesResponse struct {
	Sales      []SaleResponse `json:"sales"`
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationInfo contains offset pagination metadata
type PaginationInfo struct {
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	HasMore bool  `json:"hasMore"`
}

// RecordIssueResponse describes a record left out of an aggregation
type RecordIssueResponse struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// AggregateResponse is the result of aggregating posted records
type AggregateResponse struct {
	Totals    []models.CategoryTotal `json:"totals"`
	Processed int                    `json:"processed"`
	Skipped   []RecordIssueResponse  `json:"skipped"`
}

// SeedResponse reports generated development data
type SeedResponse struct {
	Inserted int `json:"inserted"`
}

// ResetResponse reports deleted development data
type ResetResponse struct {
	Deleted int64 `json:"deleted"`
}

// NewSaleResponse converts a stored record for output
func NewSaleResponse(sale models.SaleRecord) SaleResponse {
	resp := SaleResponse{
		ID:        sale.ID,
		Category:  sale.Category,
		CreatedAt: sale.CreatedAt,
	}
	if sale.Price.Valid {
		price := sale.Price.Decimal
		resp.Price = &price
	}
	if sale.Quantity.Valid {
		quantity := sale.Quantity.Decimal
		resp.Quantity = &quantity
	}
	if sale.Price.Valid && sale.Quantity.Valid {
		total := sale.LineTotal()
		resp.LineTotal = &total
	}
	return resp
}

// NewListSalesResponse builds a page of sales with its pagination metadata
func NewListSalesResponse(sales []models.SaleRecord, offset, limit int, total int64) ListSalesResponse {
	items := make([]SaleResponse, 0, len(sales))
	for _, sale := range sales {
		items = append(items, NewSaleResponse(sale))
	}
	return ListSalesResponse{
		Sales: items,
		Pagination: PaginationInfo{
			Offset:  offset,
			Limit:   limit,
			Total:   total,
			HasMore: int64(offset+len(items)) < total,
		},
	}
}
