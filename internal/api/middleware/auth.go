package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minimart/commerce-system/internal/api/metrics"
	"github.com/minimart/commerce-system/internal/core/domain"
	"github.com/minimart/commerce-system/internal/core/ports"
)

type gateResponse struct {
	Status domain.Status `json:"status"`
	Error  string        `json:"error,omitempty"`
}

// Auth is steps 1 and 2 of the authorization gate shared by every protected
// route: extract the bearer token, then verify it with the identity service.
// A missing token is rejected before any dependent call is made; an invalid
// one is surfaced as an authentication failure, never treated as anonymous.
// On success the subject's username and employee flag are injected into the
// request context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				metrics.GateFailuresTotal.WithLabelValues("missing_token").Inc()
				return c.JSON(http.StatusUnauthorized, gateResponse{Status: domain.StatusAuthFailed, Error: "missing token"})
			}

			// Legacy clients send the bare token; newer ones prefix "Bearer".
			tok := raw
			if parts := strings.SplitN(raw, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tok = parts[1]
			}

			decision, err := verifier.Verify(c.Request().Context(), tok)
			if err != nil || !decision.Valid {
				metrics.GateFailuresTotal.WithLabelValues("invalid_token").Inc()
				return c.JSON(http.StatusUnauthorized, gateResponse{Status: domain.StatusAuthFailed, Error: "invalid token"})
			}

			c.Set("username", decision.Username)
			c.Set("employee", decision.Employee)

			return next(c)
		}
	}
}

// RequireEmployee is step 3 of the gate, applied to employee-only actions. A
// valid non-employee caller is an authorization failure, distinct from the
// authentication failures Auth produces.
func RequireEmployee() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			employee, _ := c.Get("employee").(bool)
			if !employee {
				metrics.GateFailuresTotal.WithLabelValues("not_employee").Inc()
				return c.JSON(http.StatusForbidden, gateResponse{Status: domain.StatusRejected, Error: "employee only"})
			}
			return next(c)
		}
	}
}
