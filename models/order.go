package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting fulfilment
	OrderStatusCompleted OrderStatus = "completed" // Fulfilled and closed
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled by an admin
)

// Order is immutable once created: items and total are a frozen snapshot
// of the cart at checkout time. Only Status may change, via admin action.
type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderRef      string      `gorm:"uniqueIndex" json:"order_ref"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TotalCents    int         `gorm:"not null" json:"total"`
	CustomerEmail string      `json:"customerEmail,omitempty"`
	CustomerName  string      `json:"customerName,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem is a snapshot row. It copies the price at submission time and
// never joins back to Product, so later catalog edits leave it untouched.
type OrderItem struct {
	ID         uint `gorm:"primaryKey" json:"-"`
	OrderID    uint `gorm:"index" json:"-"`
	ProductID  uint `json:"productId"`
	Quantity   int  `json:"quantity"`
	PriceCents int  `json:"price"`
}
