package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type Order struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//人間が読める注文番号（TSH + 16進12桁、一度決めたら変更しない）
	OrderToken string `gorm:"type:varchar(20);not null;uniqueIndex" json:"order_token"`

	UserID            int64           `gorm:"not null;index" json:"user_id"`
	ShippingAddressID int64           `gorm:"not null" json:"shipping_address_id"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	Status            OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt         time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
