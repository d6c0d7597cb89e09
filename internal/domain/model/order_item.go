package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細
// Priceは注文確定時点のspecial_priceのスナップショット。
// 以後のカタログ価格変更の影響を受けない（生きたProductから読み直さない）。
type OrderItem struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64           `gorm:"not null;index" json:"order_id"`
	ProductID           int64           `gorm:"not null;index" json:"product_id"`
	ProductNameSnapshot string          `gorm:"type:varchar(200);not null" json:"product_name_snapshot"`
	Price               decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity            int64           `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 明細の小計
func (it OrderItem) TotalPrice() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(it.Quantity))
}
