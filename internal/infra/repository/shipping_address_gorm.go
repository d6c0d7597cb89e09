package repository

import (
	"context"
	"errors"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"

	"gorm.io/gorm"
)

type ShippingAddressGormRepository struct {
	db *gorm.DB
}

// DI
func NewShippingAddressGormRepository(db *gorm.DB) *ShippingAddressGormRepository {
	return &ShippingAddressGormRepository{db: db}
}

// 配送先スナップショットを作成
func (r *ShippingAddressGormRepository) Create(ctx context.Context, addr model.ShippingAddress) (model.ShippingAddress, error) {
	if err := r.db.WithContext(ctx).Create(&addr).Error; err != nil {
		return model.ShippingAddress{}, err
	}
	return addr, nil
}

func (r *ShippingAddressGormRepository) FindByID(ctx context.Context, id int64) (model.ShippingAddress, error) {
	var a model.ShippingAddress
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShippingAddress{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShippingAddress{}, err
	}
	return a, nil
}
