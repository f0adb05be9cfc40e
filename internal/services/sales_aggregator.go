package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"sales-analytics/internal/config"
	"sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// InvalidRecordPolicy decides what happens to a record missing category,
// price or quantity
type InvalidRecordPolicy string

const (
	// InvalidRecordPolicyReject fails the whole aggregation on the first invalid record
	InvalidRecordPolicyReject InvalidRecordPolicy = config.InvalidRecordPolicyReject
	// InvalidRecordPolicySkip leaves invalid records out and reports them
	InvalidRecordPolicySkip InvalidRecordPolicy = config.InvalidRecordPolicySkip
)

var (
	ErrInvalidSaleRecord   = errors.New("invalid sale record")
	ErrUnknownRecordPolicy = errors.New("unknown invalid record policy")
)

// InvalidRecordError pinpoints the record that stopped an aggregation
type InvalidRecordError struct {
	Index int
	Field string
	Err   error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *InvalidRecordError) Unwrap() []error {
	return []error{ErrInvalidSaleRecord, e.Err}
}

// RecordIssue describes a record left out under InvalidRecordPolicySkip
type RecordIssue struct {
	Index  int    `json:"index" yaml:"index"`
	Field  string `json:"field" yaml:"field"`
	Reason string `json:"reason" yaml:"reason"`
}

// AggregationResult holds the per-category totals of one aggregation run
type AggregationResult struct {
	Totals    []models.CategoryTotal `json:"totals" yaml:"totals"`
	Processed int                    `json:"processed" yaml:"processed"`
	Skipped   []RecordIssue          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// ParseInvalidRecordPolicy accepts "reject" or "skip" in any case. An empty
// string selects reject.
func ParseInvalidRecordPolicy(s string) (InvalidRecordPolicy, error) {
	switch InvalidRecordPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", InvalidRecordPolicyReject:
		return InvalidRecordPolicyReject, nil
	case InvalidRecordPolicySkip:
		return InvalidRecordPolicySkip, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordPolicy, s)
	}
}

// AggregateByCategory groups records by exact category and sums
// price * quantity per group. Every distinct category present gets exactly
// one entry, including categories whose total is zero. Totals are sorted by
// category. The input is not modified.
func AggregateByCategory(records []models.SaleRecord, policy InvalidRecordPolicy) (*AggregationResult, error) {
	if policy == "" {
		policy = InvalidRecordPolicyReject
	}
	if policy != InvalidRecordPolicyReject && policy != InvalidRecordPolicySkip {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordPolicy, policy)
	}

	sums := make(map[string]decimal.Decimal)
	result := &AggregationResult{}

	for i := range records {
		record := &records[i]

		if field, err := record.MissingField(); err != nil {
			if policy == InvalidRecordPolicyReject {
				return nil, &InvalidRecordError{Index: i, Field: field, Err: err}
			}
			result.Skipped = append(result.Skipped, RecordIssue{Index: i, Field: field, Reason: err.Error()})
			continue
		}

		sums[record.Category] = sums[record.Category].Add(record.LineTotal())
		result.Processed++
	}

	result.Totals = make([]models.CategoryTotal, 0, len(sums))
	for category, total := range sums {
		result.Totals = append(result.Totals, models.CategoryTotal{
			Category:   category,
			TotalSales: total,
		})
	}

	sort.Slice(result.Totals, func(i, j int) bool {
		return result.Totals[i].Category < result.Totals[j].Category
	})

	return result, nil
}
