package handler

import (
	"net/http"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	items, total, count, err := h.cartService.GetCart(ctx, middleware.UserID(c), page.Offset(), page.Limit)
	if err != nil {
		return err
	}

	out := dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items)), Total: total}
	for _, item := range items {
		out.Items = append(out.Items, dto.ToCartItemResponse(item))
	}

	return c.JSON(http.StatusOK, dto.Envelope{
		Success:    true,
		Data:       out,
		Pagination: dto.NewPagination(page.Page, page.Limit, count),
	})
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	if req.ProductVariantID == "" {
		return apperr.Validation("productVariantId is required", "productVariantId")
	}

	item, err := h.cartService.AddItem(ctx, middleware.UserID(c), req.ProductVariantID, req.Quantity)
	if err != nil {
		return err
	}

	return created(c, dto.ToCartItemResponse(item), "Item added to cart")
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	item, err := h.cartService.UpdateItem(ctx, middleware.UserID(c), c.Param("itemId"), req.Quantity)
	if err != nil {
		return err
	}

	return ok(c, dto.ToCartItemResponse(item))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.RemoveItem(ctx, middleware.UserID(c), c.Param("itemId")); err != nil {
		return err
	}

	return okMessage(c, "Item removed from cart")
}

func (h *CartHandler) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Clear(ctx, middleware.UserID(c)); err != nil {
		return err
	}

	return okMessage(c, "Cart cleared")
}
