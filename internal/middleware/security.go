package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

	// the Scalar UI loads its bundle and fonts from jsdelivr
	docsContentSecurityPolicy = "default-src 'self'; " +
		"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
		"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
		"font-src 'self' https://cdn.jsdelivr.net data:; " +
		"img-src 'self' data: blob:; " +
		"connect-src 'self'"
)

// SecurityHeaders adds security headers to responses
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("X-Frame-Options", "DENY")
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			header.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if strings.HasPrefix(c.Request().URL.Path, "/docs") {
				header.Set("Content-Security-Policy", docsContentSecurityPolicy)
			} else {
				header.Set("Content-Security-Policy", apiContentSecurityPolicy)
			}

			return next(c)
		}
	}
}
