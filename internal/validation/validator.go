package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"sales-analytics/internal/models"

	"github.com/go-playground/validator/v10"
)

const maxCategoryLength = 100

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("sale_category", validateSaleCategory)
	_ = v.RegisterValidation("aggregation_source", validateAggregationSource)
	_ = v.RegisterValidation("record_policy", validateRecordPolicy)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens a validation error into namespace -> message pairs.
// Namespaces drop the top-level struct name, e.g. "records[2].category".
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out[field] = message(fe)
	}
	return out
}

// FieldNames returns the sorted keys of FieldErrors
func FieldNames(err error) []string {
	fields := FieldErrors(err)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "sale_category":
		return fmt.Sprintf("must be at most %d printable characters", maxCategoryLength)
	case "aggregation_source":
		return fmt.Sprintf("must be one of %s, %s", models.AggregationSourceMemory, models.AggregationSourceDatabase)
	case "record_policy":
		return "must be one of reject, skip"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

// Custom validation functions

// validateSaleCategory accepts printable category names up to the column width
func validateSaleCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if utf8.RuneCountInString(category) > maxCategoryLength {
		return false
	}
	for _, r := range category {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// validateAggregationSource validates that the source names a known aggregation path
func validateAggregationSource(fl validator.FieldLevel) bool {
	return models.IsValidAggregationSource(strings.ToLower(fl.Field().String()))
}

// validateRecordPolicy validates that the policy is reject or skip
func validateRecordPolicy(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "reject", "skip":
		return true
	default:
		return false
	}
}
