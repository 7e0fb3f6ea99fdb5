package service

import (
	"context"
	"errors"
	"log"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokensResponse, error)
	Me(ctx context.Context, userID string) (*model.User, error)
	UpdateFcmToken(ctx context.Context, userID, fcmToken string) error
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Name == "" {
		return nil, apperr.Validation("Name is required", "name")
	}
	if req.Email == "" {
		return nil, apperr.Validation("Email is required", "email")
	}
	if len(req.Password) < 8 {
		return nil, apperr.Validation("Password must be at least 8 characters", "password")
	}

	emailExists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailExists {
		return nil, apperr.Conflict(apperr.CodeUserAlreadyExists, "A user with this email already exists")
	}

	if req.Phone != "" {
		phoneExists, err := s.userRepo.ExistsByPhone(ctx, req.Phone)
		if err != nil {
			return nil, err
		}
		if phoneExists {
			return nil, apperr.Conflict(apperr.CodeUserAlreadyExists, "A user with this phone number already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	passwordHash := string(hash)
	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Role:         model.RoleCustomer,
		IsActive:     true,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Println("new user registered:", user.Email)

	return s.authResponse(user)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeInvalidCredentials, "Invalid email or password", 401)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.Forbidden("Account is deactivated")
	}
	if user.PasswordHash == nil {
		return nil, apperr.New(apperr.CodeInvalidCredentials, "Invalid email or password", 401)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.New(apperr.CodeInvalidCredentials, "Invalid email or password", 401)
	}

	return s.authResponse(user)
}

func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.TokensResponse, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	// The user may have been deactivated since the refresh token was issued.
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.CodeTokenInvalid, "Invalid refresh token", 401)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Forbidden("Account is deactivated")
	}

	accessToken, err := s.tokens.GenerateAccess(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.TokensResponse{
		AccessToken: accessToken,
		ExpiresIn:   s.tokens.AccessTTL().String(),
	}, nil
}

func (s *authServiceImpl) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		return nil, err
	}
	return user, nil
}

func (s *authServiceImpl) UpdateFcmToken(ctx context.Context, userID, fcmToken string) error {
	if fcmToken == "" {
		return apperr.Validation("fcmToken is required", "fcmToken")
	}
	err := s.userRepo.UpdateFcmToken(ctx, userID, fcmToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User")
		}
		return err
	}
	return nil
}

func (s *authServiceImpl) authResponse(user *model.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.GenerateAccess(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefresh(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User: dto.ToUserResponse(user),
		Tokens: dto.TokensResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresIn:    s.tokens.AccessTTL().String(),
		},
	}, nil
}
