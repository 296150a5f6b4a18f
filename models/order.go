package models

import (
	"time"
)

// Order status values. No transition graph is enforced: any status may be
// set from any other via the status-update endpoint.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodDelivery = "delivery" // pay on receipt
	PaymentMethodTransfer = "transfer" // bank transfer
)

// OrderItem is a snapshot of a product line frozen at order-creation time.
// It is copied verbatim into the order and never updated when the
// referenced product is later edited or deleted.
type OrderItem struct {
	ProductID int    `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Price     int    `json:"price" binding:"required,gt=0"` // centavos
}

// Order represents a checkout submission. Items are embedded as a JSON
// column so historical orders stay stable against catalog edits.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	CustomerName    string      `gorm:"not null" json:"customerName"`
	CustomerEmail   string      `gorm:"not null" json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	Items           []OrderItem `gorm:"serializer:json;not null" json:"items"`
	TotalAmount     int         `gorm:"not null" json:"totalAmount"` // centavos, client-supplied
	Status          string      `gorm:"not null;default:'pending'" json:"status"`
	PaymentMethod   string      `gorm:"not null" json:"paymentMethod"`
	ShippingAddress string      `gorm:"type:text;not null" json:"shippingAddress"`
	Notes           string      `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ValidOrderStatus reports whether s is one of the known status values.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodDelivery || m == PaymentMethodTransfer
}
