package model

import "time"

// マーケティング用の静的コンテンツ群。業務ロジックは持たない。

// トップページのスライダー。クリックでカテゴリへ遷移する。
type Slider struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:varchar(300)" json:"description"`
	ImageURL    string    `gorm:"type:varchar(500);not null" json:"image_url"`
	CategoryID  int64     `gorm:"not null" json:"category_id"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

type OfferAudience string

const (
	OfferAudienceAll      OfferAudience = "all"
	OfferAudienceNew      OfferAudience = "new_user"
	OfferAudienceExisting OfferAudience = "existing_user"
)

type SpecialOffer struct {
	ID                 int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string        `gorm:"type:varchar(200);not null" json:"title"`
	Description        string        `gorm:"type:text" json:"description"`
	DiscountPercentage int           `gorm:"not null" json:"discount_percentage"`
	TargetAudience     OfferAudience `gorm:"type:varchar(20);not null;default:'all'" json:"target_audience"`
	IsActive           bool          `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}

type AboutUs struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  string    `gorm:"type:varchar(500)" json:"image_url"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

type Event struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`
	EventDate   time.Time `gorm:"type:date;not null" json:"event_date"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in_progress"
	ContactStatusResolved   ContactStatus = "resolved"
)

// お問い合わせ
type ContactQuery struct {
	ID         int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string        `gorm:"type:varchar(100);not null" json:"name"`
	Email      string        `gorm:"type:varchar(254);not null" json:"email"`
	Phone      string        `gorm:"type:varchar(15)" json:"phone"`
	Subject    string        `gorm:"type:varchar(200);not null" json:"subject"`
	Message    string        `gorm:"type:text;not null" json:"message"`
	Status     ContactStatus `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	CreatedAt  time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}
