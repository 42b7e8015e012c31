package models

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending" // payment session created, awaiting gateway
	OrderStatusPaid    OrderStatus = "paid"    // settlement confirmed by the gateway
	OrderStatusFailed  OrderStatus = "failed"  // gateway reported deny/cancel/expire
)

type Order struct {
	Ref           string      `gorm:"primaryKey" json:"ref"`
	SessionID     string      `gorm:"index" json:"-"`
	Items         []OrderItem `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE" json:"items"`
	Amount        int64       `json:"amount"` // minor currency units
	CustomerEmail string      `json:"customerEmail,omitempty"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// OrderItem snapshots a cart line at checkout time; the unit price is the
// discount-adjusted price in minor units.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	OrderRef  string `gorm:"index" json:"-"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	ImageURL  string `json:"imageUrl,omitempty"`
}
