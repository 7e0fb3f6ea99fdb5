package handler

import (
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	resp, err := h.authService.Register(ctx, &req)
	if err != nil {
		return err
	}

	return created(c, resp, "User registered successfully")
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	resp, err := h.authService.Login(ctx, &req)
	if err != nil {
		return err
	}

	return ok(c, resp)
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if req.RefreshToken == "" {
		return apperr.Validation("refreshToken is required", "refreshToken")
	}

	tokens, err := h.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return err
	}

	return ok(c, tokens)
}

// Logout is stateless: tokens are not tracked server-side, the client
// discards them. The endpoint exists so clients get a uniform envelope.
func (h *AuthHandler) Logout(c echo.Context) error {
	return okMessage(c, "Logged out successfully")
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.authService.Me(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return ok(c, dto.ToUserResponse(user))
}

func (h *AuthHandler) UpdateFcmToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.FcmTokenRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if req.FcmToken == "" {
		return apperr.Validation("fcmToken is required", "fcmToken")
	}

	if err := h.authService.UpdateFcmToken(ctx, middleware.UserID(c), req.FcmToken); err != nil {
		return err
	}

	return okMessage(c, "FCM token updated")
}
