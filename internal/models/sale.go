package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SaleFieldCategory = "category"
	SaleFieldPrice    = "price"
	SaleFieldQuantity = "quantity"

	maxCategoryLength = 100
)

var (
	ErrMissingCategory = errors.New("sale category is required")
	ErrMissingPrice    = errors.New("sale price is required")
	ErrMissingQuantity = errors.New("sale quantity is required")
	ErrCategoryTooLong = errors.New("sale category too long")
)

// SaleRecord is a single sale line. Price and Quantity are nullable so a
// missing value can be told apart from zero, and unscaled numeric so no
// digits are rounded away on insert.
type SaleRecord struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Category  string              `gorm:"type:varchar(100);not null;index" json:"category"`
	Price     decimal.NullDecimal `gorm:"type:numeric" json:"price"`
	Quantity  decimal.NullDecimal `gorm:"type:numeric" json:"quantity"`
	CreatedAt time.Time           `gorm:"not null;index" json:"created_at"`
}

// TableName pins the table name used by raw aggregate queries
func (SaleRecord) TableName() string {
	return "sales"
}

// NewSaleRecord builds a record with both numeric fields present
func NewSaleRecord(category string, price, quantity decimal.Decimal) SaleRecord {
	return SaleRecord{
		Category: category,
		Price:    decimal.NewNullDecimal(price),
		Quantity: decimal.NewNullDecimal(quantity),
	}
}

// BeforeCreate hook for SaleRecord
func (s *SaleRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	return s.Validate()
}

// Validate checks that the record can be stored. Negative values are allowed.
func (s *SaleRecord) Validate() error {
	if _, err := s.MissingField(); err != nil {
		return err
	}

	if utf8.RuneCountInString(s.Category) > maxCategoryLength {
		return ErrCategoryTooLong
	}

	return nil
}

// MissingField reports the first field the aggregation reads that is absent
func (s *SaleRecord) MissingField() (string, error) {
	switch {
	case s.Category == "":
		return SaleFieldCategory, ErrMissingCategory
	case !s.Price.Valid:
		return SaleFieldPrice, ErrMissingPrice
	case !s.Quantity.Valid:
		return SaleFieldQuantity, ErrMissingQuantity
	}
	return "", nil
}

// InvalidField names the first field that fails validation, or "" if valid
func (s *SaleRecord) InvalidField() string {
	if field, err := s.MissingField(); err != nil {
		return field
	}
	if s.Validate() != nil {
		return SaleFieldCategory
	}
	return ""
}

// LineTotal returns price * quantity. Callers must validate first.
func (s *SaleRecord) LineTotal() decimal.Decimal {
	return s.Price.Decimal.Mul(s.Quantity.Decimal)
}
