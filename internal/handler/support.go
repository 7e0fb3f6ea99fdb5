package handler

import (
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type SupportHandler struct {
	adminService service.AdminService
}

func NewSupportHandler(adminService service.AdminService) *SupportHandler {
	return &SupportHandler{
		adminService: adminService,
	}
}

// Get is public: the storefront shows contact details without a login. An
// unconfigured store returns an empty object rather than a 404.
func (h *SupportHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	info, err := h.adminService.SupportInfo(ctx)
	if err != nil {
		if appErr, isApp := apperr.As(err); isApp && appErr.Code == apperr.CodeResourceNotFound {
			return ok(c, dto.SupportResponse{})
		}
		return err
	}

	return ok(c, dto.ToSupportResponse(info))
}
