package repository

import (
	"context"

	"vastram/internal/domain/model"

	"gorm.io/gorm"
)

type LoginHistoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewLoginHistoryGormRepository(db *gorm.DB) *LoginHistoryGormRepository {
	return &LoginHistoryGormRepository{db: db}
}

func (r *LoginHistoryGormRepository) Create(ctx context.Context, h model.LoginHistory) error {
	return r.db.WithContext(ctx).Create(&h).Error
}

func (r *LoginHistoryGormRepository) ListByUserID(ctx context.Context, userID int64, limit int) ([]model.LoginHistory, error) {
	var list []model.LoginHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return []model.LoginHistory{}, err
	}
	return list, nil
}
