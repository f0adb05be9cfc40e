package handlers

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

// DocsHandler serves the OpenAPI document and the Scalar UI that renders it
type DocsHandler struct {
	scalarHTML []byte
	scalarETag string
	specJSON   []byte
	specETag   string
}

// NewDocsHandler loads scalar.html and openapi.yaml from dir. Missing files
// leave the matching endpoint answering 404.
func NewDocsHandler(dir string) (*DocsHandler, error) {
	h := &DocsHandler{}

	html, err := os.ReadFile(filepath.Join(dir, "scalar.html"))
	if err == nil {
		h.scalarHTML = html
		h.scalarETag = generateETag(html)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "openapi.yaml"))
	if err != nil {
		return h, nil
	}

	specJSON, err := yamlToJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi.yaml: %w", err)
	}
	h.specJSON = specJSON
	h.specETag = generateETag(specJSON)

	return h, nil
}

// ServeScalarUI serves the Scalar HTML page
//
// Method: GET /docs
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	if len(h.scalarHTML) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "documentation UI not available")
	}

	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	if notModified(c, h.scalarETag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOpenAPI serves the OpenAPI document as JSON
//
// Method: GET /docs/openapi.json
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

	if len(h.specJSON) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "OpenAPI document not available")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	if notModified(c, h.specETag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.JSONBlob(http.StatusOK, h.specJSON)
}

func notModified(c echo.Context, etag string) bool {
	if etag == "" {
		return false
	}
	c.Response().Header().Set("ETag", etag)
	return c.Request().Header.Get("If-None-Match") == etag
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
