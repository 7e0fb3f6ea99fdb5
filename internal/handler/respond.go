package handler

import (
	"net/http"
	"strconv"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/labstack/echo/v4"
)

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: data})
}

func created(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusCreated, dto.Envelope{Success: true, Data: data, Message: message})
}

func okMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message})
}

func paginated(c echo.Context, data interface{}, page dto.PageQuery, total int64) error {
	return c.JSON(http.StatusOK, dto.Envelope{
		Success:    true,
		Data:       data,
		Pagination: dto.NewPagination(page.Page, page.Limit, total),
	})
}

// pageQuery reads ?page= and ?limit= with defaults and a hard cap on limit.
func pageQuery(c echo.Context) (dto.PageQuery, error) {
	q := dto.PageQuery{Page: dto.DefaultPage, Limit: dto.DefaultLimit}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return q, apperr.Validation("page must be a positive integer", "page")
		}
		q.Page = page
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return q, apperr.Validation("limit must be a positive integer", "limit")
		}
		if limit > dto.MaxLimit {
			limit = dto.MaxLimit
		}
		q.Limit = limit
	}
	return q, nil
}
