package handler

import (
	"net/url"
	"strconv"

	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// pathID reads a record id from the named path parameter.
// Trailing garbage after the leading digits is ignored, so "12abc" is 12.
func pathID(c echo.Context, name string) (int64, error) {
	id := usecase.ParseLeadingInt(c.Param(name))
	if id <= 0 {
		return 0, domainerrors.ErrInvalidInput.WithDetails("invalid " + name)
	}

	return id, nil
}

// pathLineID reads a cart line id. Echo leaves path params escaped when the
// request carries a raw path, and variant line ids hold JSON, so the value is
// unescaped here. A value that is already decoded passes through unchanged.
func pathLineID(c echo.Context, name string) string {
	raw := c.Param(name)
	lineID, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return lineID
}

// queryInt reads a positive integer query parameter, falling back on absence or garbage
func queryInt(c echo.Context, name string, fallback int) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}

// bind decodes the request body, mapping decode failures to ErrInvalidInput
func bind(c echo.Context, target any) error {
	if err := c.Bind(target); err != nil {
		return domainerrors.ErrInvalidInput
	}

	return nil
}
