package middleware

import (
	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminGuard blocks back-office routes until the session flag is set
type AdminGuard struct {
	session usecase.SessionUsecase
}

// NewAdminGuard creates the back-office route guard
func NewAdminGuard(session usecase.SessionUsecase) *AdminGuard {
	return &AdminGuard{session: session}
}

// RequireSession rejects the request with 401 when no admin is logged in
func (g *AdminGuard) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !g.session.IsAuthenticated(c.Request().Context()) {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}
