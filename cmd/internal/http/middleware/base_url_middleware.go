package middleware

import (
	"imoveis/cmd/internal/utils"
	"strings"

	"github.com/labstack/echo/v4"
)

type BaseURLMiddlewareConfig struct {
	// PublicURL replaces the request scheme and host when set,
	// e.g. "https://api.example.com" behind a reverse proxy.
	PublicURL string
	// CollectionPath is the path of the resource collection, e.g. "/properties".
	CollectionPath string
}

// NewBaseURLMiddleware stores the absolute collection URL in the context,
// where handlers read it to build hypermedia links.
func NewBaseURLMiddleware(cfg *BaseURLMiddlewareConfig) echo.MiddlewareFunc {
	path := "/" + strings.Trim(cfg.CollectionPath, "/")
	public := strings.TrimRight(cfg.PublicURL, "/")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := public
			if origin == "" {
				origin = c.Scheme() + "://" + c.Request().Host
			}

			c.Set(utils.ContextKeyBaseURL, origin+path)
			return next(c)
		}
	}
}
