package handler

import (
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService    service.OrderService
	feedbackService service.FeedbackService
}

func NewOrderHandler(orderService service.OrderService, feedbackService service.FeedbackService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		feedbackService: feedbackService,
	}
}

func (h *OrderHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if len(req.Address) == 0 {
		return apperr.Validation("address is required", "address")
	}

	order, err := h.orderService.Checkout(ctx, middleware.UserID(c), req.Address)
	if err != nil {
		return err
	}

	return created(c, dto.CheckoutResponse{Order: dto.ToOrderResponse(order)}, "Order created successfully")
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	orders, total, err := h.orderService.ListForUser(ctx, middleware.UserID(c), page.Offset(), page.Limit)
	if err != nil {
		return err
	}

	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToOrderResponse(o))
	}
	return paginated(c, out, page, total)
}

func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.Get(ctx, middleware.UserID(c), middleware.IsAdmin(c), c.Param("id"))
	if err != nil {
		return err
	}

	return ok(c, dto.ToOrderResponse(order))
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.Cancel(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		return err
	}

	return ok(c, dto.ToOrderResponse(order))
}

func (h *OrderHandler) SubmitFeedback(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	feedback, err := h.feedbackService.Submit(ctx, c.Param("id"), middleware.UserID(c), req.Rating, req.Comment)
	if err != nil {
		return err
	}

	return created(c, dto.ToFeedbackResponse(feedback), "Feedback submitted")
}

func (h *OrderHandler) GetFeedback(c echo.Context) error {
	ctx := c.Request().Context()

	// ownership check rides on the order lookup
	if _, err := h.orderService.Get(ctx, middleware.UserID(c), middleware.IsAdmin(c), c.Param("id")); err != nil {
		return err
	}

	feedback, err := h.feedbackService.ForOrder(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return ok(c, dto.ToFeedbackResponse(feedback))
}
