package middleware

import (
	stderrors "errors"

	"sales-analytics/internal/errors"
	"sales-analytics/internal/handlers"
	"sales-analytics/internal/services"

	"github.com/labstack/echo/v4"
)

// TokenSubjectContextKey holds the subject of the validated token
const TokenSubjectContextKey = "token_subject"

// RequireAuth creates a middleware that requires a valid bearer token
// carrying the sales:write scope
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	record := func(event string) {
		metrics.IncrementCounter(services.MetricAuthenticationEvent, map[string]string{"event_type": event})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				record("missing_token")
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				record("invalid_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateToken(token)
			switch {
			case stderrors.Is(err, services.ErrExpiredToken):
				record("expired_token")
				return handlers.SendError(c, errors.AuthExpiredToken)
			case stderrors.Is(err, services.ErrMissingScope):
				record("missing_scope")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token lacks the sales:write scope"))
			case err != nil:
				record("invalid_token")
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			record("success")
			c.Set(TokenSubjectContextKey, claims.Subject)

			return next(c)
		}
	}
}
