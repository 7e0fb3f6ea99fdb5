package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

type VariantType string

const (
	VariantColor         VariantType = "COLOR"
	VariantBlackAndWhite VariantType = "BLACK_AND_WHITE"
)

type FileType string

const (
	FileImage FileType = "IMAGE"
	FilePDF   FileType = "PDF"
	FileNone  FileType = "NONE"
)

type User struct {
	ID           string   `gorm:"primaryKey;size:36;not null"`
	Name         string   `gorm:"size:128;not null"`
	Email        string   `gorm:"size:128;uniqueIndex;not null"`
	Phone        *string  `gorm:"size:20;uniqueIndex"`
	PasswordHash *string  `gorm:"size:128"`
	Role         UserRole `gorm:"size:16;index;not null;default:CUSTOMER"`
	IsActive     bool     `gorm:"not null;default:true"`
	FcmToken     *string  `gorm:"size:512"`
	Address      *string  `gorm:"size:512"`
	City         *string  `gorm:"size:128"`
	State        *string  `gorm:"size:128"`
	Pincode      *string  `gorm:"size:10"`
	Landmark     *string  `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCompleteAddress reports whether the profile carries everything a
// shipping address needs. Landmark is optional.
func (u *User) HasCompleteAddress() bool {
	return deref(u.Address) != "" && deref(u.City) != "" &&
		deref(u.State) != "" && deref(u.Pincode) != ""
}

// AddressSnapshot renders the saved profile address in the shape orders
// store at checkout. Returns nil when the address is incomplete.
func (u *User) AddressSnapshot() json.RawMessage {
	if !u.HasCompleteAddress() {
		return nil
	}
	snapshot, err := json.Marshal(map[string]string{
		"name":     u.Name,
		"phone":    deref(u.Phone),
		"address":  deref(u.Address),
		"city":     deref(u.City),
		"state":    deref(u.State),
		"pincode":  deref(u.Pincode),
		"landmark": deref(u.Landmark),
	})
	if err != nil {
		return nil
	}
	return snapshot
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type Category struct {
	ID        string          `gorm:"primaryKey;size:36;not null"`
	Name      string          `gorm:"size:128;not null"`
	ParentID  *string         `gorm:"size:36;index"`
	Metadata  json.RawMessage `gorm:"type:json"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Subject struct {
	ID              string  `gorm:"primaryKey;size:36;not null"`
	Name            string  `gorm:"size:128;not null"`
	ParentSubjectID *string `gorm:"size:36;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Product struct {
	ID          string          `gorm:"primaryKey;size:36;not null"`
	Title       string          `gorm:"size:256;index;not null"`
	Description *string         `gorm:"type:text"`
	ISBN        *string         `gorm:"size:32;index"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SubjectID   string          `gorm:"size:36;index;not null"`
	CategoryID  *string         `gorm:"size:36;index"`
	ImageURL    *string         `gorm:"size:512"`
	PdfURL      *string         `gorm:"size:512"`
	FileType    FileType        `gorm:"size:8;not null;default:NONE"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Variants []ProductVariant `gorm:"foreignKey:ProductID"`
}

type ProductVariant struct {
	ID          string          `gorm:"primaryKey;size:36;not null"`
	ProductID   string          `gorm:"size:36;index;not null"`
	VariantType VariantType     `gorm:"size:24;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Stock is an integer count; checkout decrements it, admin updates set it.
	Stock     int    `gorm:"not null"`
	SKU       string `gorm:"size:64;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// CartItem holds one line of a user's cart. One row per (user, variant);
// re-adding the same variant bumps quantity.
type CartItem struct {
	ID               string `gorm:"primaryKey;size:36;not null"`
	UserID           string `gorm:"size:36;uniqueIndex:uniq_cart_line;not null"`
	ProductVariantID string `gorm:"size:36;uniqueIndex:uniq_cart_line;not null"`
	Quantity         int    `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User    *User           `gorm:"foreignKey:UserID"`
	Variant *ProductVariant `gorm:"foreignKey:ProductVariantID"`
}

type Order struct {
	ID            string          `gorm:"primaryKey;size:36;not null"`
	UserID        string          `gorm:"size:36;index;not null"`
	Status        OrderStatus     `gorm:"size:16;index;not null;default:PENDING"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentStatus PaymentStatus   `gorm:"size:16;index;not null;default:PENDING"`
	// AddressSnapshot is the shipping address captured at checkout,
	// denormalized so later profile edits cannot rewrite history.
	AddressSnapshot json.RawMessage `gorm:"type:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	User  *User       `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

// OrderItem is immutable once created. PriceSnapshot freezes the variant
// price at order time; later price changes never touch historical orders.
type OrderItem struct {
	ID               string          `gorm:"primaryKey;size:36;not null"`
	OrderID          string          `gorm:"size:36;index;not null"`
	ProductVariantID string          `gorm:"size:36;index;not null"`
	Quantity         int             `gorm:"not null"`
	PriceSnapshot    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt        time.Time

	Variant *ProductVariant `gorm:"foreignKey:ProductVariantID"`
}

type ProductLike struct {
	ID        string `gorm:"primaryKey;size:36;not null"`
	UserID    string `gorm:"size:36;uniqueIndex:uniq_product_like;not null"`
	ProductID string `gorm:"size:36;uniqueIndex:uniq_product_like;not null"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

type OrderFeedback struct {
	ID        string  `gorm:"primaryKey;size:36;not null"`
	OrderID   string  `gorm:"size:36;uniqueIndex;not null"`
	UserID    string  `gorm:"size:36;index;not null"`
	Rating    int     `gorm:"not null"`
	Comment   *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *User  `gorm:"foreignKey:UserID"`
	Order *Order `gorm:"foreignKey:OrderID"`
}

type SupportInfo struct {
	ID        string  `gorm:"primaryKey;size:36;not null"`
	Phone     *string `gorm:"size:20"`
	Email     *string `gorm:"size:128"`
	Whatsapp  *string `gorm:"size:20"`
	Address   *string `gorm:"size:512"`
	Hours     *string `gorm:"size:128"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StoreSetting struct {
	ID        string          `gorm:"primaryKey;size:36;not null"`
	Key       string          `gorm:"size:128;uniqueIndex;not null"`
	ValueJSON json.RawMessage `gorm:"type:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
