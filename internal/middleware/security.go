package middleware

import (
	"github.com/labstack/echo/v4"
)

type headerValue struct {
	name  string
	value string
}

// securityHeaders go on every response, error bodies included. Analytics and
// simulation responses echo a user's transactions back, so nothing may be cached.
var securityHeaders = []headerValue{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	{"Referrer-Policy", "no-referrer"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
	{"Cache-Control", "no-store, no-cache, must-revalidate, private"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

// SecurityHeaders sets the fixed header set before the handler runs
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			for _, h := range securityHeaders {
				header.Set(h.name, h.value)
			}
			return next(c)
		}
	}
}
