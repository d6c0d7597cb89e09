package model

import "time"

// お気に入り
// 会員は user_id、未ログインは session_token で持ち主を区別する。
// (user, product) / (session, product) それぞれで1商品1行。
type WishlistEntry struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       *int64    `gorm:"index;uniqueIndex:uq_wishlist_user_product" json:"user_id,omitempty"`
	SessionToken *string   `gorm:"type:varchar(40);index;uniqueIndex:uq_wishlist_session_product" json:"-"`
	ProductID    int64     `gorm:"not null;index;uniqueIndex:uq_wishlist_user_product;uniqueIndex:uq_wishlist_session_product" json:"product_id"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
