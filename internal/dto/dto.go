package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Envelope is the standard API response body. Success responses carry data,
// failures carry the error object instead (see server.ErrorHandler).
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ---- pagination ----

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

type PageQuery struct {
	Page  int
	Limit int
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Pagination struct {
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	Total           int64 `json:"total"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &Pagination{
		Page:            page,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// ---- auth ----

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type FcmTokenRequest struct {
	FcmToken string `json:"fcmToken"`
}

// UpdateProfileRequest carries partial updates; nil fields are left alone.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Pincode  *string `json:"pincode"`
	Landmark *string `json:"landmark"`
}

// ---- catalog ----

type CategoryRequest struct {
	Name     string          `json:"name"`
	ParentID *string         `json:"parentId"`
	Metadata json.RawMessage `json:"metadata"`
	IsActive *bool           `json:"isActive"`
}

type SubjectRequest struct {
	Name            string  `json:"name"`
	ParentSubjectID *string `json:"parentSubjectId"`
}

type ProductRequest struct {
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	ISBN        *string         `json:"isbn"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	SubjectID   string          `json:"subjectId"`
	CategoryID  *string         `json:"categoryId"`
	ImageURL    *string         `json:"imageUrl"`
	PdfURL      *string         `json:"pdfUrl"`
	FileType    string          `json:"fileType"`
	IsActive    *bool           `json:"isActive"`
}

type VariantRequest struct {
	VariantType string          `json:"variantType"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SKU         string          `json:"sku"`
}

// ---- cart / orders ----

type AddToCartRequest struct {
	ProductVariantID string `json:"productVariantId"`
	Quantity         int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	Address json.RawMessage `json:"address"`
}

type FeedbackRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// ---- admin ----

type AdminUserUpdateRequest struct {
	IsActive *bool   `json:"isActive"`
	Role     *string `json:"role"`
}

type AdminOrderUpdateRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

type SupportRequest struct {
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Whatsapp *string `json:"whatsapp"`
	Address  *string `json:"address"`
	Hours    *string `json:"hours"`
}

type SettingRequest struct {
	Key       string          `json:"key"`
	ValueJSON json.RawMessage `json:"valueJson"`
}
