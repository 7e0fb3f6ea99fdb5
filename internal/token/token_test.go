package token

import (
	"testing"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(config.JWT{
		Secret:           "access-secret",
		RefreshSecret:    "refresh-secret",
		ExpiresIn:        accessTTL,
		RefreshExpiresIn: time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(time.Minute)

	tokenString, err := m.GenerateAccess("user-1", "ADMIN")
	require.NoError(t, err)

	claims, err := m.ParseAccess(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	m := newTestManager(time.Minute)

	tokenString, err := m.GenerateAccess("user-1", "CUSTOMER")
	require.NoError(t, err)

	// the two token kinds are signed with different secrets
	_, err = m.ParseRefresh(tokenString)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeTokenInvalid, appErr.Code)
}

func TestExpiredToken(t *testing.T) {
	m := newTestManager(-time.Minute)

	tokenString, err := m.GenerateAccess("user-1", "CUSTOMER")
	require.NoError(t, err)

	_, err = m.ParseAccess(tokenString)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeTokenExpired, appErr.Code)
}

func TestGarbageToken(t *testing.T) {
	m := newTestManager(time.Minute)

	_, err := m.ParseAccess("not.a.jwt")
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeTokenInvalid, appErr.Code)
}
