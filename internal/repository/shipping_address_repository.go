package repository

import (
	"context"

	"vastram/internal/domain/model"
)

// 配送先スナップショットの保存・取得。作成後の更新はしない。
type ShippingAddressRepository interface {
	Create(ctx context.Context, addr model.ShippingAddress) (model.ShippingAddress, error)
	FindByID(ctx context.Context, id int64) (model.ShippingAddress, error)
}
