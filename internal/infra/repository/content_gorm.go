package repository

import (
	"context"
	"errors"
	"time"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"

	"gorm.io/gorm"
)

// マーケティングコンテンツのGORM実装。薄いCRUDのみ。

type SliderGormRepository struct {
	db *gorm.DB
}

func NewSliderGormRepository(db *gorm.DB) *SliderGormRepository {
	return &SliderGormRepository{db: db}
}

func (r *SliderGormRepository) ListActive(ctx context.Context, limit int) ([]model.Slider, error) {
	var list []model.Slider
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return []model.Slider{}, err
	}
	return list, nil
}

func (r *SliderGormRepository) Create(ctx context.Context, s model.Slider) (model.Slider, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Slider{}, err
	}
	return s, nil
}

func (r *SliderGormRepository) Update(ctx context.Context, s model.Slider) error {
	res := r.db.WithContext(ctx).Model(&model.Slider{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"title":       s.Title,
		"description": s.Description,
		"image_url":   s.ImageURL,
		"category_id": s.CategoryID,
		"is_active":   s.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SliderGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Slider{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type SpecialOfferGormRepository struct {
	db *gorm.DB
}

func NewSpecialOfferGormRepository(db *gorm.DB) *SpecialOfferGormRepository {
	return &SpecialOfferGormRepository{db: db}
}

func (r *SpecialOfferGormRepository) ListActive(ctx context.Context, limit int) ([]model.SpecialOffer, error) {
	var list []model.SpecialOffer
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return []model.SpecialOffer{}, err
	}
	return list, nil
}

func (r *SpecialOfferGormRepository) Create(ctx context.Context, o model.SpecialOffer) (model.SpecialOffer, error) {
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.SpecialOffer{}, err
	}
	return o, nil
}

func (r *SpecialOfferGormRepository) Update(ctx context.Context, o model.SpecialOffer) error {
	res := r.db.WithContext(ctx).Model(&model.SpecialOffer{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
		"title":               o.Title,
		"description":         o.Description,
		"discount_percentage": o.DiscountPercentage,
		"target_audience":     o.TargetAudience,
		"is_active":           o.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *SpecialOfferGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.SpecialOffer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type AboutUsGormRepository struct {
	db *gorm.DB
}

func NewAboutUsGormRepository(db *gorm.DB) *AboutUsGormRepository {
	return &AboutUsGormRepository{db: db}
}

// 有効な1件を返す
func (r *AboutUsGormRepository) FindActive(ctx context.Context) (model.AboutUs, error) {
	var a model.AboutUs
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("updated_at desc").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AboutUs{}, repo.ErrNotFound
	}
	if err != nil {
		return model.AboutUs{}, err
	}
	return a, nil
}

func (r *AboutUsGormRepository) Upsert(ctx context.Context, a model.AboutUs) (model.AboutUs, error) {
	if a.ID > 0 {
		res := r.db.WithContext(ctx).Model(&model.AboutUs{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
			"title":     a.Title,
			"content":   a.Content,
			"image_url": a.ImageURL,
			"is_active": a.IsActive,
		})
		if res.Error != nil {
			return model.AboutUs{}, res.Error
		}
		if res.RowsAffected == 0 {
			return model.AboutUs{}, repo.ErrNotFound
		}
		return a, nil
	}

	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.AboutUs{}, err
	}
	return a, nil
}

type EventGormRepository struct {
	db *gorm.DB
}

func NewEventGormRepository(db *gorm.DB) *EventGormRepository {
	return &EventGormRepository{db: db}
}

// 開催日の新しい順
func (r *EventGormRepository) ListActive(ctx context.Context) ([]model.Event, error) {
	var list []model.Event
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("event_date desc").
		Find(&list).Error
	if err != nil {
		return []model.Event{}, err
	}
	return list, nil
}

func (r *EventGormRepository) Create(ctx context.Context, e model.Event) (model.Event, error) {
	if err := r.db.WithContext(ctx).Create(&e).Error; err != nil {
		return model.Event{}, err
	}
	return e, nil
}

func (r *EventGormRepository) Update(ctx context.Context, e model.Event) error {
	res := r.db.WithContext(ctx).Model(&model.Event{}).Where("id = ?", e.ID).Updates(map[string]interface{}{
		"title":       e.Title,
		"description": e.Description,
		"image_url":   e.ImageURL,
		"event_date":  e.EventDate,
		"is_active":   e.IsActive,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *EventGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type ContactQueryGormRepository struct {
	db *gorm.DB
}

func NewContactQueryGormRepository(db *gorm.DB) *ContactQueryGormRepository {
	return &ContactQueryGormRepository{db: db}
}

func (r *ContactQueryGormRepository) Create(ctx context.Context, q model.ContactQuery) (model.ContactQuery, error) {
	if err := r.db.WithContext(ctx).Create(&q).Error; err != nil {
		return model.ContactQuery{}, err
	}
	return q, nil
}

func (r *ContactQueryGormRepository) FindByID(ctx context.Context, id int64) (model.ContactQuery, error) {
	var q model.ContactQuery
	err := r.db.WithContext(ctx).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ContactQuery{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ContactQuery{}, err
	}
	return q, nil
}

func (r *ContactQueryGormRepository) List(ctx context.Context, status string, page int, limit int) ([]model.ContactQuery, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	q := r.db.WithContext(ctx).Model(&model.ContactQuery{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return []model.ContactQuery{}, 0, err
	}

	var list []model.ContactQuery
	offset := (page - 1) * limit
	if err := q.Order("id desc").Limit(limit).Offset(offset).Find(&list).Error; err != nil {
		return []model.ContactQuery{}, 0, err
	}

	return list, total, nil
}

func (r *ContactQueryGormRepository) UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, resolvedAt *time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.ContactQuery{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":      status,
		"resolved_at": resolvedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
