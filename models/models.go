package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// ValidRoles lists the roles a user can be assigned
var ValidRoles = map[string]bool{
	RoleUser:  true,
	RoleAdmin: true,
	RoleOwner: true,
}

// User represents an account in the system
type User struct {
	gorm.Model
	FullName     string `json:"full_name"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `json:"-"`
	Phone        string `json:"phone"`
	Role         string `json:"role" gorm:"default:'user'"`
	IsActive     bool   `json:"is_active" gorm:"default:false"`
	RefreshToken string `json:"-"`
	GoogleID     string `json:"-" gorm:"default:null"`

	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
}

// IsStaff reports whether the user may manage the catalog
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleOwner
}

// Product represents a catalog item owned by an admin or the owner
type Product struct {
	gorm.Model
	OwnerID     uint           `json:"owner_id" gorm:"not null"`
	Owner       User           `json:"-" gorm:"foreignKey:OwnerID"`
	Title       string         `json:"title" gorm:"not null;index:idx_products_title_category,unique"`
	Category    string         `json:"category" gorm:"not null;index:idx_products_title_category,unique"`
	Price       float64        `json:"price" gorm:"check:price >= 0"`
	Description string         `json:"description"`
	Stock       int            `json:"stock" gorm:"check:stock >= 0"`
	CoverImage  string         `json:"cover_image"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	BuyCount    int            `json:"buy_count" gorm:"default:0"`
	Rating      float64        `json:"rating" gorm:"default:0;check:rating >= 0 AND rating <= 5"`
}

// ProductImage represents a gallery image URL for a product
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id" gorm:"not null"`
	URL       string `json:"url"`
}

// Order, Cart, Payment and Notification are carried as schemas only; no
// business logic operates on them yet.

type Order struct {
	gorm.Model
	UserID      uint        `json:"user_id" gorm:"not null"`
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status" gorm:"default:'pending'"`
	OrderItems  []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Cart struct {
	gorm.Model
	UserID    uint    `json:"user_id" gorm:"not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
}

type Payment struct {
	gorm.Model
	OrderID uint    `json:"order_id" gorm:"not null"`
	UserID  uint    `json:"user_id" gorm:"not null"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status" gorm:"default:'pending'"`
}

type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"not null"`
	Title   string `json:"title"`
	Message string `json:"message"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
