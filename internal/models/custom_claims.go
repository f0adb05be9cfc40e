package models

import "github.com/golang-jwt/jwt/v5"

const ScopeSalesWrite = "sales:write"

// CustomClaims are the claims carried by API tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// HasScope reports whether the token grants scope
func (c *CustomClaims) HasScope(scope string) bool {
	return c.Scope == scope
}
