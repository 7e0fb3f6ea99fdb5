// Package token issues and verifies the JWT pair used by the auth endpoints
// and the request middleware.
package token

import (
	"errors"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret        []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewManager(cfg config.JWT) *Manager {
	return &Manager{
		secret:        []byte(cfg.Secret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.ExpiresIn,
		refreshTTL:    cfg.RefreshExpiresIn,
	}
}

func (m *Manager) AccessTTL() time.Duration {
	return m.accessTTL
}

func (m *Manager) sign(userID, role string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *Manager) GenerateAccess(userID, role string) (string, error) {
	return m.sign(userID, role, m.secret, m.accessTTL)
}

func (m *Manager) GenerateRefresh(userID, role string) (string, error) {
	return m.sign(userID, role, m.refreshSecret, m.refreshTTL)
}

func (m *Manager) ParseAccess(tokenString string) (*Claims, error) {
	return m.parse(tokenString, m.secret)
}

func (m *Manager) ParseRefresh(tokenString string) (*Claims, error) {
	return m.parse(tokenString, m.refreshSecret)
}

func (m *Manager) parse(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.New(apperr.CodeTokenExpired, "Token has expired", 401)
		}
		return nil, apperr.New(apperr.CodeTokenInvalid, "Invalid token", 401)
	}
	if !parsed.Valid {
		return nil, apperr.New(apperr.CodeTokenInvalid, "Invalid token", 401)
	}
	return claims, nil
}
