package dto

import (
	"encoding/json"
	"time"

	"github.com/GollaBharath/Vijaya-Xerox-and-Stationery/internal/model"
	"github.com/shopspring/decimal"
)

type TokensResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    string `json:"expiresIn"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User   UserResponse   `json:"user"`
	Tokens TokensResponse `json:"tokens"`
}

func ToUserResponse(u *model.User) UserResponse {
	phone := ""
	if u.Phone != nil {
		phone = *u.Phone
	}
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     phone,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type ProfileResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           *string         `json:"phone"`
	Address         *string         `json:"address"`
	City            *string         `json:"city"`
	State           *string         `json:"state"`
	Pincode         *string         `json:"pincode"`
	Landmark        *string         `json:"landmark"`
	AddressSnapshot json.RawMessage `json:"addressSnapshot,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func ToProfileResponse(u *model.User) ProfileResponse {
	return ProfileResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Address:         u.Address,
		City:            u.City,
		State:           u.State,
		Pincode:         u.Pincode,
		Landmark:        u.Landmark,
		AddressSnapshot: u.AddressSnapshot(),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type CategoryResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	ParentID  *string             `json:"parentId"`
	Metadata  json.RawMessage     `json:"metadata,omitempty"`
	IsActive  bool                `json:"isActive"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Children  []*CategoryResponse `json:"children,omitempty"`
}

func ToCategoryResponse(c *model.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ParentID:  c.ParentID,
		Metadata:  c.Metadata,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CategoryTree nests categories under their parents. Orphans whose parent is
// unknown are promoted to roots.
func CategoryTree(categories []*model.Category) []*CategoryResponse {
	byID := make(map[string]*CategoryResponse, len(categories))
	for _, c := range categories {
		byID[c.ID] = ToCategoryResponse(c)
	}
	var roots []*CategoryResponse
	for _, c := range categories {
		node := byID[c.ID]
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

type SubjectResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	ParentSubjectID *string            `json:"parentSubjectId"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Children        []*SubjectResponse `json:"children,omitempty"`
}

func ToSubjectResponse(s *model.Subject) *SubjectResponse {
	return &SubjectResponse{
		ID:              s.ID,
		Name:            s.Name,
		ParentSubjectID: s.ParentSubjectID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func SubjectTree(subjects []*model.Subject) []*SubjectResponse {
	byID := make(map[string]*SubjectResponse, len(subjects))
	for _, s := range subjects {
		byID[s.ID] = ToSubjectResponse(s)
	}
	var roots []*SubjectResponse
	for _, s := range subjects {
		node := byID[s.ID]
		if s.ParentSubjectID != nil {
			if parent, ok := byID[*s.ParentSubjectID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

type VariantResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	VariantType string          `json:"variantType"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	SKU         string          `json:"sku"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func ToVariantResponse(v *model.ProductVariant) VariantResponse {
	return VariantResponse{
		ID:          v.ID,
		ProductID:   v.ProductID,
		VariantType: string(v.VariantType),
		Price:       v.Price,
		Stock:       v.Stock,
		SKU:         v.SKU,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	ISBN        *string         `json:"isbn"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	SubjectID   string          `json:"subjectId"`
	CategoryID  *string         `json:"categoryId"`
	ImageURL    *string         `json:"imageUrl"`
	PdfURL      *string         `json:"pdfUrl"`
	FileType    string          `json:"fileType"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Variants  []VariantResponse `json:"variants,omitempty"`
	LikeCount int64             `json:"likeCount"`
	IsLiked   bool              `json:"isLiked"`
}

func ToProductResponse(p *model.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ISBN:        p.ISBN,
		BasePrice:   p.BasePrice,
		SubjectID:   p.SubjectID,
		CategoryID:  p.CategoryID,
		ImageURL:    p.ImageURL,
		PdfURL:      p.PdfURL,
		FileType:    string(p.FileType),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for i := range p.Variants {
		resp.Variants = append(resp.Variants, ToVariantResponse(&p.Variants[i]))
	}
	return resp
}

type CartItemProduct struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	BasePrice decimal.Decimal `json:"basePrice"`
	IsActive  bool            `json:"isActive"`
	ImageURL  *string         `json:"imageUrl,omitempty"`
}

type CartItemVariant struct {
	ID          string           `json:"id"`
	ProductID   string           `json:"productId"`
	VariantType string           `json:"variantType"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	SKU         string           `json:"sku"`
	Product     *CartItemProduct `json:"product,omitempty"`
}

type CartItemResponse struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	ProductVariantID string           `json:"productVariantId"`
	Quantity         int              `json:"quantity"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	Variant          *CartItemVariant `json:"variant,omitempty"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

func toCartItemVariant(v *model.ProductVariant) *CartItemVariant {
	if v == nil {
		return nil
	}
	out := &CartItemVariant{
		ID:          v.ID,
		ProductID:   v.ProductID,
		VariantType: string(v.VariantType),
		Price:       v.Price,
		Stock:       v.Stock,
		SKU:         v.SKU,
	}
	if v.Product != nil {
		out.Product = &CartItemProduct{
			ID:        v.Product.ID,
			Title:     v.Product.Title,
			BasePrice: v.Product.BasePrice,
			IsActive:  v.Product.IsActive,
			ImageURL:  v.Product.ImageURL,
		}
	}
	return out
}

func ToCartItemResponse(item *model.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:               item.ID,
		UserID:           item.UserID,
		ProductVariantID: item.ProductVariantID,
		Quantity:         item.Quantity,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
		Variant:          toCartItemVariant(item.Variant),
	}
}

type OrderItemResponse struct {
	ID               string           `json:"id"`
	OrderID          string           `json:"orderId"`
	ProductVariantID string           `json:"productVariantId"`
	Quantity         int              `json:"quantity"`
	PriceSnapshot    decimal.Decimal  `json:"priceSnapshot"`
	CreatedAt        time.Time        `json:"createdAt"`
	Variant          *CartItemVariant `json:"productVariant,omitempty"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	Status          string              `json:"status"`
	TotalPrice      decimal.Decimal     `json:"totalPrice"`
	PaymentStatus   string              `json:"paymentStatus"`
	AddressSnapshot json.RawMessage     `json:"addressSnapshot"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Items           []OrderItemResponse `json:"items,omitempty"`
}

func ToOrderResponse(o *model.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		TotalPrice:      o.TotalPrice,
		PaymentStatus:   string(o.PaymentStatus),
		AddressSnapshot: o.AddressSnapshot,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for i := range o.Items {
		item := &o.Items[i]
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:               item.ID,
			OrderID:          item.OrderID,
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			PriceSnapshot:    item.PriceSnapshot,
			CreatedAt:        item.CreatedAt,
			Variant:          toCartItemVariant(item.Variant),
		})
	}
	return resp
}

type CheckoutResponse struct {
	Order *OrderResponse `json:"order"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToFeedbackResponse(f *model.OrderFeedback) FeedbackResponse {
	name := "Unknown"
	if f.User != nil {
		name = f.User.Name
	}
	return FeedbackResponse{
		ID:        f.ID,
		OrderID:   f.OrderID,
		UserID:    f.UserID,
		UserName:  name,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

type FeedbackStatsResponse struct {
	Total         int64         `json:"total"`
	AverageRating float64       `json:"averageRating"`
	Distribution  map[int]int64 `json:"distribution"`
}

type RecentOrder struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type DashboardResponse struct {
	TotalUsers   int64           `json:"totalUsers"`
	TotalOrders  int64           `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	RecentOrders []RecentOrder   `json:"recentOrders"`
}

type SupportResponse struct {
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Whatsapp *string `json:"whatsapp"`
	Address  *string `json:"address"`
	Hours    *string `json:"hours"`
}

func ToSupportResponse(s *model.SupportInfo) SupportResponse {
	return SupportResponse{
		Phone:    s.Phone,
		Email:    s.Email,
		Whatsapp: s.Whatsapp,
		Address:  s.Address,
		Hours:    s.Hours,
	}
}

type SettingResponse struct {
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	ValueJSON json.RawMessage `json:"valueJson"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func ToSettingResponse(s *model.StoreSetting) SettingResponse {
	return SettingResponse{
		ID:        s.ID,
		Key:       s.Key,
		ValueJSON: s.ValueJSON,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type LikeResponse struct {
	ProductID string `json:"productId"`
	Liked     bool   `json:"liked"`
	Count     int64  `json:"count"`
}
