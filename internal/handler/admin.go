package handler

import (
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	adminService    service.AdminService
	orderService    service.OrderService
	feedbackService service.FeedbackService
}

func NewAdminHandler(adminService service.AdminService, orderService service.OrderService, feedbackService service.FeedbackService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		orderService:    orderService,
		feedbackService: feedbackService,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	dashboard, err := h.adminService.Dashboard(ctx)
	if err != nil {
		return err
	}

	return ok(c, dashboard)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	users, total, err := h.adminService.ListUsers(ctx, page.Offset(), page.Limit)
	if err != nil {
		return err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return paginated(c, out, page, total)
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AdminUserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	user, err := h.adminService.UpdateUser(ctx, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return ok(c, dto.ToUserResponse(user))
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	filter := repository.OrderFilter{
		Status:        c.QueryParam("status"),
		PaymentStatus: c.QueryParam("paymentStatus"),
		UserID:        c.QueryParam("userId"),
	}

	orders, total, err := h.orderService.ListAll(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return err
	}

	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToOrderResponse(o))
	}
	return paginated(c, out, page, total)
}

func (h *AdminHandler) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AdminOrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	order, err := h.orderService.AdminUpdate(ctx, c.Param("id"), req.Status, req.PaymentStatus)
	if err != nil {
		return err
	}

	return ok(c, dto.ToOrderResponse(order))
}

func (h *AdminHandler) CancelOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.AdminCancel(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return ok(c, dto.ToOrderResponse(order))
}

func (h *AdminHandler) ListFeedback(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	feedback, total, err := h.feedbackService.ListAll(ctx, page.Offset(), page.Limit)
	if err != nil {
		return err
	}

	out := make([]dto.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		out = append(out, dto.ToFeedbackResponse(f))
	}
	return paginated(c, out, page, total)
}

func (h *AdminHandler) FeedbackStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.feedbackService.Stats(ctx)
	if err != nil {
		return err
	}

	return ok(c, dto.FeedbackStatsResponse{
		Total:         stats.Total,
		AverageRating: stats.AverageRating,
		Distribution:  stats.Distribution,
	})
}

func (h *AdminHandler) GetSupport(c echo.Context) error {
	ctx := c.Request().Context()

	info, err := h.adminService.SupportInfo(ctx)
	if err != nil {
		return err
	}

	return ok(c, dto.ToSupportResponse(info))
}

func (h *AdminHandler) UpdateSupport(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SupportRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	info, err := h.adminService.UpdateSupportInfo(ctx, &req)
	if err != nil {
		return err
	}

	return ok(c, dto.ToSupportResponse(info))
}

func (h *AdminHandler) ListSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.adminService.Settings(ctx)
	if err != nil {
		return err
	}

	out := make([]dto.SettingResponse, 0, len(settings))
	for _, s := range settings {
		out = append(out, dto.ToSettingResponse(s))
	}
	return ok(c, out)
}

func (h *AdminHandler) SetSetting(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SettingRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	setting, err := h.adminService.SetSetting(ctx, req.Key, req.ValueJSON)
	if err != nil {
		return err
	}

	return ok(c, dto.ToSettingResponse(setting))
}

func (h *AdminHandler) DeleteSetting(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.adminService.DeleteSetting(ctx, c.Param("key")); err != nil {
		return err
	}

	return okMessage(c, "Setting deleted")
}
