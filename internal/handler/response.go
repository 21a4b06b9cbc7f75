package handler

import (
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// jsonNoCache writes a JSON response with headers that defeat CDN caching.
// CloudFront would otherwise happily serve a stale health report.
func jsonNoCache(c echo.Context, status int, body any) error {
	h := c.Response().Header()
	h.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	h.Set("Expires", "0")
	h.Set("Surrogate-Control", "no-store")
	h.Set("Pragma", "no-cache")
	return c.JSON(status, body)
}
