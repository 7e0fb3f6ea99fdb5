package middleware

import (
	"strings"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/token"
	"github.com/labstack/echo/v4"
)

const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

func extractToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Authenticate requires a valid Bearer access token and stores the caller's
// identity on the request context.
func Authenticate(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				return apperr.Unauthorized("Authentication required. Please provide a valid token.")
			}

			claims, err := tokens.ParseAccess(raw)
			if err != nil {
				return err
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)
			return next(c)
		}
	}
}

// OptionalAuth attaches identity when a valid token is present but lets the
// request through either way.
func OptionalAuth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := extractToken(c); raw != "" {
				if claims, err := tokens.ParseAccess(raw); err == nil {
					c.Set(ContextUserID, claims.UserID)
					c.Set(ContextUserRole, claims.Role)
				}
			}
			return next(c)
		}
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(string)
			if role != string(model.RoleAdmin) {
				return apperr.Forbidden("Admin access required")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's id, empty when anonymous.
func UserID(c echo.Context) string {
	id, _ := c.Get(ContextUserID).(string)
	return id
}

func IsAdmin(c echo.Context) bool {
	role, _ := c.Get(ContextUserRole).(string)
	return role == string(model.RoleAdmin)
}
