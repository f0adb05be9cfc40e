package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sales-analytics/internal/models"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = fmt.Errorf("unknown output format")

// totalOutput renders TotalSales as its exact decimal string
type totalOutput struct {
	Category   string `json:"category" yaml:"category"`
	TotalSales string `json:"totalSales" yaml:"totalSales"`
}

// ParseFormat accepts json or yaml, case-insensitively
func ParseFormat(raw string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(raw)); format {
	case FormatJSON, FormatYAML:
		return format, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Render writes totals to w as a JSON array or YAML sequence
func Render(w io.Writer, totals []models.CategoryTotal, format string) error {
	out := make([]totalOutput, 0, len(totals))
	for _, t := range totals {
		out = append(out, totalOutput{Category: t.Category, TotalSales: t.TotalSales.String()})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
