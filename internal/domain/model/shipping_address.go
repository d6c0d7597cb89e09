package model

import "time"

// 配送先スナップショット
// 注文確定時にフォーム入力から作られ、以後変更しない。注文1件につき1行。
type ShippingAddress struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   int64  `gorm:"not null;index" json:"user_id"`
	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone    string `gorm:"type:varchar(15);not null" json:"phone"`
	Address  string `gorm:"type:text;not null" json:"address"`
	City     string `gorm:"type:varchar(50);not null" json:"city"`
	State    string `gorm:"type:varchar(50);not null" json:"state"`

	//郵便番号
	Pincode string `gorm:"type:varchar(10);not null" json:"pincode"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
