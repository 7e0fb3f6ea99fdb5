package service

import (
	"context"
	"testing"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/config"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/testutil"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) AuthService {
	tokens := token.NewManager(config.JWT{
		Secret:           "test-secret",
		RefreshSecret:    "test-refresh-secret",
		ExpiresIn:        15 * time.Minute,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	})
	return NewAuthService(repository.NewUserRepository(db), tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, string(model.RoleCustomer), resp.User.Role)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "asha@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "asha@example.com", Password: "wrong"})
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeInvalidCredentials, appErr.Code)
}

func TestRegisterValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@example.com", Password: "longenough"})
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	assert.Equal(t, "name", appErr.Field)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"})
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, "password", appErr.Field)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	req := &dto.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "correct-horse"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeUserAlreadyExists, appErr.Code)
	assert.Equal(t, 409, appErr.Status)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.User{}).Where("id = ?", resp.User.ID).
		Update("is_active", false).Error)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ravi@example.com", Password: "correct-horse"})
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeForbidden, appErr.Code)
}

func TestRefresh(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	tokens, err := svc.Refresh(ctx, resp.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.Empty(t, tokens.RefreshToken)

	_, err = svc.Refresh(ctx, "not-a-token")
	appErr, isApp := apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeTokenInvalid, appErr.Code)

	// refresh stops working once the account is deactivated
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", resp.User.ID).
		Update("is_active", false).Error)
	_, err = svc.Refresh(ctx, resp.Tokens.RefreshToken)
	appErr, isApp = apperr.As(err)
	require.True(t, isApp)
	assert.Equal(t, apperr.CodeForbidden, appErr.Code)
}
