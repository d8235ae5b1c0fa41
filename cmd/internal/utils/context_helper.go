package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"imoveis/cmd/internal/utils/apierror"
)

// ContextKeyBaseURL holds the absolute collection URL set by the base URL middleware.
const ContextKeyBaseURL = "base_url"

func GetBaseURLFromContext(c echo.Context) (string, apierror.ErrorResponse) {
	val := c.Get(ContextKeyBaseURL)
	if val == nil {
		log.Warnf("route %s attempted to read nil base url from context", c.Request().URL)
		return "", apierror.InternalServerError
	}

	base, ok := val.(string)
	if !ok {
		log.Warnf("expected string at '%s' context key, got %T", ContextKeyBaseURL, val)
		return "", apierror.InternalServerError
	}
	return base, nil
}
