package repository

import (
	"context"
	"time"

	"vastram/internal/domain/model"
)

// マーケティングコンテンツの窓口。薄いCRUDのみ。

type SliderRepository interface {
	ListActive(ctx context.Context, limit int) ([]model.Slider, error)
	Create(ctx context.Context, s model.Slider) (model.Slider, error)
	Update(ctx context.Context, s model.Slider) error
	Delete(ctx context.Context, id int64) error
}

type SpecialOfferRepository interface {
	//最新の有効オファーをlimit件
	ListActive(ctx context.Context, limit int) ([]model.SpecialOffer, error)
	Create(ctx context.Context, o model.SpecialOffer) (model.SpecialOffer, error)
	Update(ctx context.Context, o model.SpecialOffer) error
	Delete(ctx context.Context, id int64) error
}

type AboutUsRepository interface {
	FindActive(ctx context.Context) (model.AboutUs, error)
	Upsert(ctx context.Context, a model.AboutUs) (model.AboutUs, error)
}

type EventRepository interface {
	ListActive(ctx context.Context) ([]model.Event, error)
	Create(ctx context.Context, e model.Event) (model.Event, error)
	Update(ctx context.Context, e model.Event) error
	Delete(ctx context.Context, id int64) error
}

type ContactQueryRepository interface {
	Create(ctx context.Context, q model.ContactQuery) (model.ContactQuery, error)
	FindByID(ctx context.Context, id int64) (model.ContactQuery, error)
	List(ctx context.Context, status string, page int, limit int) ([]model.ContactQuery, int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, resolvedAt *time.Time) error
}
