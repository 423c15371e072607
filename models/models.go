// Package models defines the persisted entities of the storefront.
package models

import "time"

// User is created on registration. Role is always "user" at creation;
// the fixed administrator account never exists as a row.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role" gorm:"default:'user';index"`
	CreatedAt time.Time `json:"createdAt"`
}

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Product references its Category by id; reads expand the category.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Description   string    `json:"description"`
	Price         float64   `json:"price" gorm:"not null"`
	CategoryID    uint      `json:"categoryId" gorm:"not null;index"`
	Category      Category  `json:"category"`
	StockQuantity int       `json:"stockQuantity" gorm:"default:0"`
	Image         string    `json:"image"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Items        []OrderItem `json:"items"`
	CustomerName string      `json:"customerName" gorm:"not null"`
	TotalAmount  float64     `json:"totalAmount" gorm:"not null"`
	Status       string      `json:"status" gorm:"default:'Processing'"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderItem captures the product price at order time; it is never
// re-derived from the live product.
type OrderItem struct {
	ID                 uint    `json:"id" gorm:"primaryKey"`
	OrderID            uint    `json:"orderId" gorm:"index"`
	ProductID          uint    `json:"productId" gorm:"not null"`
	Product            Product `json:"product"`
	Quantity           int     `json:"quantity" gorm:"not null"`
	PriceAtTimeOfOrder float64 `json:"priceAtTimeOfOrder" gorm:"not null"`
}
