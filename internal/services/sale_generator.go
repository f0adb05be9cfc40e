package services

import (
	"sales-analytics/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	generatedMinPrice    = 0.5
	generatedMaxPrice    = 500
	generatedMaxQuantity = 12
)

// DefaultSaleCategories is the category pool used for generated sales
var DefaultSaleCategories = []string{
	"Books",
	"Clothing",
	"Electronics",
	"Garden",
	"Groceries",
	"Sports",
	"Toys",
}

type saleGenerator struct {
	faker      *gofakeit.Faker
	categories []string
}

// NewSaleGenerator creates a generator. A zero seed picks a random one;
// any other seed gives a repeatable sequence.
func NewSaleGenerator(seed uint64, categories []string) SaleGeneratorInterface {
	if len(categories) == 0 {
		categories = DefaultSaleCategories
	}

	return &saleGenerator{
		faker:      gofakeit.New(seed),
		categories: categories,
	}
}

// Generate returns count complete sale records with two-decimal prices and
// whole quantities
func (g *saleGenerator) Generate(count int) []models.SaleRecord {
	if count <= 0 {
		return []models.SaleRecord{}
	}

	sales := make([]models.SaleRecord, 0, count)
	for i := 0; i < count; i++ {
		price := decimal.NewFromFloat(g.faker.Price(generatedMinPrice, generatedMaxPrice)).Round(2)
		quantity := decimal.NewFromInt(int64(g.faker.IntRange(1, generatedMaxQuantity)))

		sales = append(sales, models.NewSaleRecord(g.faker.RandomString(g.categories), price, quantity))
	}

	return sales
}
