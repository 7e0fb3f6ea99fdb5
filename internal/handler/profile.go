package handler

import (
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.profileService.Get(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	return ok(c, dto.ToProfileResponse(user))
}

func (h *ProfileHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	user, err := h.profileService.Update(ctx, middleware.UserID(c), &req)
	if err != nil {
		return err
	}

	return ok(c, dto.ToProfileResponse(user))
}
