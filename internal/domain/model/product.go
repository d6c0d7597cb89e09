package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  int64  `gorm:"not null;index" json:"category_id"`
	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	//定価
	ActualPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"actual_price"`

	//販売価格（請求に使うのはこちら。割引率は導出値で保存しない）
	SpecialPrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"special_price"`

	ImageURL   string         `gorm:"type:varchar(500)" json:"image_url"`
	Stock      int64          `gorm:"not null;default:0" json:"stock"`
	SalesCount int64          `gorm:"not null;default:0" json:"sales_count"`
	IsActive   bool           `gorm:"not null;default:true" json:"is_active"`
	IsFeatured bool           `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt  time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// 割引率（%）。actual > special のときだけ正の値。
func (p Product) DiscountPercentage() int {
	if p.ActualPrice.IsPositive() && p.ActualPrice.GreaterThan(p.SpecialPrice) {
		diff := p.ActualPrice.Sub(p.SpecialPrice)
		return int(diff.Div(p.ActualPrice).Mul(decimal.NewFromInt(100)).IntPart())
	}
	return 0
}
