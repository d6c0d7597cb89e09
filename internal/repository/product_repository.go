package repository

import (
	"context"
	"errors"

	"vastram/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一意制約違反（注文番号の衝突など）
var ErrDuplicate = errors.New("duplicate key")

// 一覧検索
type ProductListQuery struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *int64
	Sort       string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	//トップページ用の抜粋
	ListFeatured(ctx context.Context, limit int) ([]model.Product, error)
	ListNewArrivals(ctx context.Context, days int, limit int) ([]model.Product, error)
	ListMostDiscounted(ctx context.Context, limit int) ([]model.Product, error)

	//同カテゴリの関連商品（自分自身は除く）
	ListRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
}
