package repository

import (
	"context"
	"errors"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"

	"gorm.io/gorm"
)

type FeedbackGormRepository struct {
	db *gorm.DB
}

// DI
func NewFeedbackGormRepository(db *gorm.DB) *FeedbackGormRepository {
	return &FeedbackGormRepository{db: db}
}

// 注文1件につき1件。2件目はErrDuplicate
func (r *FeedbackGormRepository) Create(ctx context.Context, fb model.OrderFeedback) error {
	if err := r.db.WithContext(ctx).Create(&fb).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repo.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *FeedbackGormRepository) FindByOrderID(ctx context.Context, orderID int64) (model.OrderFeedback, error) {
	var fb model.OrderFeedback
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&fb).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderFeedback{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderFeedback{}, err
	}
	return fb, nil
}
