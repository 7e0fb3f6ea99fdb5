package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/apperr"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/dto"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService covers the browse surface: categories, subjects, products
// and their variants.
type CatalogService interface {
	ListCategories(ctx context.Context, offset, limit int) ([]*model.Category, int64, error)
	CategoryTree(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, req *dto.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListSubjects(ctx context.Context) ([]*model.Subject, error)
	SubjectTree(ctx context.Context) ([]*model.Subject, error)
	GetSubject(ctx context.Context, id string) (*model.Subject, error)
	CreateSubject(ctx context.Context, req *dto.SubjectRequest) (*model.Subject, error)
	UpdateSubject(ctx context.Context, id string, req *dto.SubjectRequest) (*model.Subject, error)
	DeleteSubject(ctx context.Context, id string) error

	ListProducts(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]*model.Product, int64, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *dto.ProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListVariants(ctx context.Context, productID string) ([]*model.ProductVariant, error)
	CreateVariant(ctx context.Context, productID string, req *dto.VariantRequest) (*model.ProductVariant, error)
	UpdateVariant(ctx context.Context, id string, req *dto.VariantRequest) (*model.ProductVariant, error)
}

type catalogServiceImpl struct {
	categoryRepo repository.CategoryRepository
	subjectRepo  repository.SubjectRepository
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	subjectRepo repository.SubjectRepository,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
) CatalogService {
	return &catalogServiceImpl{
		categoryRepo: categoryRepo,
		subjectRepo:  subjectRepo,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
	}
}

// ---- categories ----

func (s *catalogServiceImpl) ListCategories(ctx context.Context, offset, limit int) ([]*model.Category, int64, error) {
	return s.categoryRepo.List(ctx, offset, limit)
}

func (s *catalogServiceImpl) CategoryTree(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category")
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogServiceImpl) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error) {
	if req.Name == "" {
		return nil, apperr.Validation("Name is required", "name")
	}
	if !metadataValid(req.Metadata) {
		return nil, apperr.Validation("Metadata must be valid JSON", "metadata")
	}

	category := &model.Category{
		ID:       uuid.NewString(),
		Name:     req.Name,
		ParentID: req.ParentID,
		Metadata: req.Metadata,
		IsActive: true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogServiceImpl) UpdateCategory(ctx context.Context, id string, req *dto.CategoryRequest) (*model.Category, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if req.Metadata != nil {
		if !metadataValid(req.Metadata) {
			return nil, apperr.Validation("Metadata must be valid JSON", "metadata")
		}
		updates["metadata"] = []byte(req.Metadata)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("Nothing to update")
	}

	if err := s.categoryRepo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Category")
		}
		return nil, err
	}
	return s.categoryRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	err := s.categoryRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Category")
	}
	return err
}

// ---- subjects ----

func (s *catalogServiceImpl) ListSubjects(ctx context.Context) ([]*model.Subject, error) {
	return s.subjectRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) SubjectTree(ctx context.Context) ([]*model.Subject, error) {
	return s.subjectRepo.FindAll(ctx)
}

func (s *catalogServiceImpl) GetSubject(ctx context.Context, id string) (*model.Subject, error) {
	subject, err := s.subjectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Subject")
		}
		return nil, err
	}
	return subject, nil
}

func (s *catalogServiceImpl) CreateSubject(ctx context.Context, req *dto.SubjectRequest) (*model.Subject, error) {
	if req.Name == "" {
		return nil, apperr.Validation("Name is required", "name")
	}

	subject := &model.Subject{
		ID:              uuid.NewString(),
		Name:            req.Name,
		ParentSubjectID: req.ParentSubjectID,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *catalogServiceImpl) UpdateSubject(ctx context.Context, id string, req *dto.SubjectRequest) (*model.Subject, error) {
	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.ParentSubjectID != nil {
		updates["parent_subject_id"] = *req.ParentSubjectID
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("Nothing to update")
	}

	if err := s.subjectRepo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Subject")
		}
		return nil, err
	}
	return s.subjectRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteSubject(ctx context.Context, id string) error {
	err := s.subjectRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Subject")
	}
	return err
}

// ---- products ----

func (s *catalogServiceImpl) ListProducts(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]*model.Product, int64, error) {
	return s.productRepo.List(ctx, filter, offset, limit)
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product")
		}
		return nil, err
	}
	return product, nil
}

func parseFileType(raw string) (model.FileType, error) {
	switch model.FileType(raw) {
	case model.FileImage, model.FilePDF, model.FileNone:
		return model.FileType(raw), nil
	case "":
		return model.FileNone, nil
	default:
		return "", apperr.Validation("Invalid file type", "fileType")
	}
}

func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	if req.Title == "" {
		return nil, apperr.Validation("Title is required", "title")
	}
	if req.SubjectID == "" {
		return nil, apperr.Validation("Subject is required", "subjectId")
	}
	if _, err := s.GetSubject(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	fileType, err := parseFileType(req.FileType)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		ISBN:        req.ISBN,
		BasePrice:   req.BasePrice,
		SubjectID:   req.SubjectID,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		PdfURL:      req.PdfURL,
		FileType:    fileType,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(ctx context.Context, id string, req *dto.ProductRequest) (*model.Product, error) {
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ISBN != nil {
		updates["isbn"] = *req.ISBN
	}
	if !req.BasePrice.IsZero() {
		updates["base_price"] = req.BasePrice
	}
	if req.SubjectID != "" {
		updates["subject_id"] = req.SubjectID
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.PdfURL != nil {
		updates["pdf_url"] = *req.PdfURL
	}
	if req.FileType != "" {
		fileType, err := parseFileType(req.FileType)
		if err != nil {
			return nil, err
		}
		updates["file_type"] = fileType
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, apperr.BadRequest("Nothing to update")
	}

	if err := s.productRepo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product")
		}
		return nil, err
	}
	return s.productRepo.FindByID(ctx, id)
}

func (s *catalogServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	err := s.productRepo.Deactivate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Product")
	}
	return err
}

// ---- variants ----

func (s *catalogServiceImpl) ListVariants(ctx context.Context, productID string) ([]*model.ProductVariant, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.variantRepo.FindByProduct(ctx, productID)
}

func parseVariantType(raw string) (model.VariantType, error) {
	switch model.VariantType(raw) {
	case model.VariantColor, model.VariantBlackAndWhite:
		return model.VariantType(raw), nil
	default:
		return "", apperr.Validation("Invalid variant type", "variantType")
	}
}

func (s *catalogServiceImpl) CreateVariant(ctx context.Context, productID string, req *dto.VariantRequest) (*model.ProductVariant, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	variantType, err := parseVariantType(req.VariantType)
	if err != nil {
		return nil, err
	}
	if req.SKU == "" {
		return nil, apperr.Validation("SKU is required", "sku")
	}
	if req.Stock < 0 {
		return nil, apperr.Validation("Stock cannot be negative", "stock")
	}

	variant := &model.ProductVariant{
		ID:          uuid.NewString(),
		ProductID:   productID,
		VariantType: variantType,
		Price:       req.Price,
		Stock:       req.Stock,
		SKU:         req.SKU,
	}
	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, err
	}
	return variant, nil
}

func (s *catalogServiceImpl) UpdateVariant(ctx context.Context, id string, req *dto.VariantRequest) (*model.ProductVariant, error) {
	updates := map[string]interface{}{}
	if req.VariantType != "" {
		variantType, err := parseVariantType(req.VariantType)
		if err != nil {
			return nil, err
		}
		updates["variant_type"] = variantType
	}
	if !req.Price.IsZero() {
		updates["price"] = req.Price
	}
	if req.Stock >= 0 {
		updates["stock"] = req.Stock
	}
	if req.SKU != "" {
		updates["sku"] = req.SKU
	}

	if err := s.variantRepo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Product variant")
		}
		return nil, err
	}
	return s.variantRepo.FindByID(ctx, id)
}

// metadataValid reports whether raw is well-formed JSON; used before storing
// category metadata.
func metadataValid(raw json.RawMessage) bool {
	return len(raw) == 0 || json.Valid(raw)
}
