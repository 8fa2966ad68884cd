package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/commerce-system/internal/core/domain"
)

// ctxIdentity extracts the subject injected by the Auth middleware. A missing
// username means the gate did not run; that is a wiring defect surfaced as an
// authentication failure rather than a panic.
func ctxIdentity(c echo.Context) (username string, employee bool, err error) {
	username, _ = c.Get("username").(string)
	if username == "" {
		return "", false, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	employee, _ = c.Get("employee").(bool)
	return username, employee, nil
}

// statusResponse is the minimal envelope for routes that report only the
// closed status vocabulary.
type statusResponse struct {
	Status domain.Status `json:"status"`
	Error  string        `json:"error,omitempty"`
}
