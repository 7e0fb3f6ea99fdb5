package handler

import (
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

func (h *LikeHandler) Toggle(c echo.Context) error {
	ctx := c.Request().Context()

	resp, err := h.likeService.Toggle(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		return err
	}

	return ok(c, resp)
}

func (h *LikeHandler) ListMine(c echo.Context) error {
	ctx := c.Request().Context()

	likes, err := h.likeService.ListForUser(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}

	out := make([]*dto.ProductResponse, 0, len(likes))
	for _, like := range likes {
		if like.Product == nil {
			continue
		}
		resp := dto.ToProductResponse(like.Product)
		resp.IsLiked = true
		count, _, err := h.likeService.StatsFor(ctx, "", like.ProductID)
		if err != nil {
			return err
		}
		resp.LikeCount = count
		out = append(out, resp)
	}
	return ok(c, out)
}
