package handler

import (
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/middleware"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/service"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	likeService    service.LikeService
}

func NewCatalogHandler(catalogService service.CatalogService, likeService service.LikeService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		likeService:    likeService,
	}
}

// ---- categories ----

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	categories, total, err := h.catalogService.ListCategories(ctx, page.Offset(), page.Limit)
	if err != nil {
		return err
	}

	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, dto.ToCategoryResponse(cat))
	}
	return paginated(c, out, page, total)
}

func (h *CatalogHandler) CategoryTree(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.catalogService.CategoryTree(ctx)
	if err != nil {
		return err
	}

	return ok(c, dto.CategoryTree(categories))
}

func (h *CatalogHandler) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()

	category, err := h.catalogService.GetCategory(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return ok(c, dto.ToCategoryResponse(category))
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	category, err := h.catalogService.CreateCategory(ctx, &req)
	if err != nil {
		return err
	}

	return created(c, dto.ToCategoryResponse(category), "Category created successfully")
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	category, err := h.catalogService.UpdateCategory(ctx, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return ok(c, dto.ToCategoryResponse(category))
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.DeleteCategory(ctx, c.Param("id")); err != nil {
		return err
	}

	return okMessage(c, "Category deleted")
}

// ---- subjects ----

func (h *CatalogHandler) ListSubjects(c echo.Context) error {
	ctx := c.Request().Context()

	subjects, err := h.catalogService.ListSubjects(ctx)
	if err != nil {
		return err
	}

	out := make([]*dto.SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, dto.ToSubjectResponse(s))
	}
	return ok(c, out)
}

func (h *CatalogHandler) SubjectTree(c echo.Context) error {
	ctx := c.Request().Context()

	subjects, err := h.catalogService.SubjectTree(ctx)
	if err != nil {
		return err
	}

	return ok(c, dto.SubjectTree(subjects))
}

func (h *CatalogHandler) GetSubject(c echo.Context) error {
	ctx := c.Request().Context()

	subject, err := h.catalogService.GetSubject(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	return ok(c, dto.ToSubjectResponse(subject))
}

func (h *CatalogHandler) CreateSubject(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SubjectRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	subject, err := h.catalogService.CreateSubject(ctx, &req)
	if err != nil {
		return err
	}

	return created(c, dto.ToSubjectResponse(subject), "Subject created successfully")
}

func (h *CatalogHandler) UpdateSubject(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.SubjectRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	subject, err := h.catalogService.UpdateSubject(ctx, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return ok(c, dto.ToSubjectResponse(subject))
}

func (h *CatalogHandler) DeleteSubject(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.DeleteSubject(ctx, c.Param("id")); err != nil {
		return err
	}

	return okMessage(c, "Subject deleted")
}

// ---- products ----

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := pageQuery(c)
	if err != nil {
		return err
	}

	filter := repository.ProductFilter{
		Search:     c.QueryParam("search"),
		SubjectID:  c.QueryParam("subjectId"),
		CategoryID: c.QueryParam("categoryId"),
	}
	switch c.QueryParam("isActive") {
	case "true":
		active := true
		filter.IsActive = &active
	case "false":
		active := false
		filter.IsActive = &active
	case "":
		// public listing only shows active products
		if !middleware.IsAdmin(c) {
			active := true
			filter.IsActive = &active
		}
	default:
		return apperr.Validation("isActive must be true or false", "isActive")
	}

	products, total, err := h.catalogService.ListProducts(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		return err
	}

	userID := middleware.UserID(c)
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp := dto.ToProductResponse(p)
		count, liked, err := h.likeService.StatsFor(ctx, userID, p.ID)
		if err != nil {
			return err
		}
		resp.LikeCount = count
		resp.IsLiked = liked
		out = append(out, resp)
	}
	return paginated(c, out, page, total)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	resp := dto.ToProductResponse(product)
	count, liked, err := h.likeService.StatsFor(ctx, middleware.UserID(c), product.ID)
	if err != nil {
		return err
	}
	resp.LikeCount = count
	resp.IsLiked = liked

	return ok(c, resp)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	product, err := h.catalogService.CreateProduct(ctx, &req)
	if err != nil {
		return err
	}

	return created(c, dto.ToProductResponse(product), "Product created successfully")
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	product, err := h.catalogService.UpdateProduct(ctx, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return ok(c, dto.ToProductResponse(product))
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.DeleteProduct(ctx, c.Param("id")); err != nil {
		return err
	}

	return okMessage(c, "Product deactivated")
}

// ---- variants ----

func (h *CatalogHandler) ListVariants(c echo.Context) error {
	ctx := c.Request().Context()

	variants, err := h.catalogService.ListVariants(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	out := make([]dto.VariantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, dto.ToVariantResponse(v))
	}
	return ok(c, out)
}

func (h *CatalogHandler) CreateVariant(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VariantRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	variant, err := h.catalogService.CreateVariant(ctx, c.Param("id"), &req)
	if err != nil {
		return err
	}

	return created(c, dto.ToVariantResponse(variant), "Variant created successfully")
}

func (h *CatalogHandler) UpdateVariant(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VariantRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}

	variant, err := h.catalogService.UpdateVariant(ctx, c.Param("variantId"), &req)
	if err != nil {
		return err
	}

	return ok(c, dto.ToVariantResponse(variant))
}
