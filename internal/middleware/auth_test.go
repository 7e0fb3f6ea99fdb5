package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/config"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/token"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens() *token.Manager {
	return token.NewManager(config.JWT{
		Secret:           "access-secret",
		RefreshSecret:    "refresh-secret",
		ExpiresIn:        time.Minute,
		RefreshExpiresIn: time.Hour,
	})
}

func runAuthenticated(t *testing.T, tokens *token.Manager, authHeader string, middlewares ...echo.MiddlewareFunc) (echo.Context, error) {
	t.Helper()

	handler := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, handler(c)
}

func TestAuthenticate(t *testing.T) {
	tokens := newTokens()
	access, err := tokens.GenerateAccess("user-1", "CUSTOMER")
	require.NoError(t, err)

	c, err := runAuthenticated(t, tokens, "Bearer "+access, Authenticate(tokens))
	require.NoError(t, err)
	assert.Equal(t, "user-1", UserID(c))
	assert.False(t, IsAdmin(c))
}

func TestAuthenticateMissingToken(t *testing.T) {
	tokens := newTokens()

	_, err := runAuthenticated(t, tokens, "", Authenticate(tokens))
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeUnauthorized, appErr.Code)

	_, err = runAuthenticated(t, tokens, "Bearer garbage", Authenticate(tokens))
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeTokenInvalid, appErr.Code)
}

func TestRequireAdmin(t *testing.T) {
	tokens := newTokens()

	customer, err := tokens.GenerateAccess("user-1", "CUSTOMER")
	require.NoError(t, err)
	_, err = runAuthenticated(t, tokens, "Bearer "+customer, Authenticate(tokens), RequireAdmin())
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeForbidden, appErr.Code)

	admin, err := tokens.GenerateAccess("user-2", "ADMIN")
	require.NoError(t, err)
	c, err := runAuthenticated(t, tokens, "Bearer "+admin, Authenticate(tokens), RequireAdmin())
	require.NoError(t, err)
	assert.True(t, IsAdmin(c))
}

func TestOptionalAuth(t *testing.T) {
	tokens := newTokens()

	// anonymous requests pass through without identity
	c, err := runAuthenticated(t, tokens, "", OptionalAuth(tokens))
	require.NoError(t, err)
	assert.Empty(t, UserID(c))

	// so do requests with a broken token
	c, err = runAuthenticated(t, tokens, "Bearer garbage", OptionalAuth(tokens))
	require.NoError(t, err)
	assert.Empty(t, UserID(c))

	access, err := tokens.GenerateAccess("user-1", "CUSTOMER")
	require.NoError(t, err)
	c, err = runAuthenticated(t, tokens, "Bearer "+access, OptionalAuth(tokens))
	require.NoError(t, err)
	assert.Equal(t, "user-1", UserID(c))
}
