// Package handler implements the HTTP endpoints of the theatre operations
// API.  Each handler bundles its repositories and configuration in a
// struct; routing lives in internal/router.
package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every database round trip made from a handler.
const dbTimeout = 5 * time.Second

// userID returns the authenticated user's id as stored by the JWTAuth
// middleware, or "" on unauthenticated routes.
func userID(c echo.Context) string {
	s, _ := c.Get("user_id").(string)
	return s
}

// userRole returns the authenticated user's role claim, or "".
func userRole(c echo.Context) string {
	s, _ := c.Get("role").(string)
	return s
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// validDate reports whether s is a calendar date in "2006-01-02" form.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
