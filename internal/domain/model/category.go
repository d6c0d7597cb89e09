package model

import "time"

// 商品カテゴリ
type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	//一覧で使うサムネイル画像URL
	ThumbnailURL string `gorm:"type:varchar(500)" json:"thumbnail_url"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
