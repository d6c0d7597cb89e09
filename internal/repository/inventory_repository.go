package repository

import (
	"context"

	"vastram/internal/domain/model"
)

// 在庫・販売数カウンタの更新。
// すべて相対更新（stock = stock - n をDB側で評価）で、読んだ値の書き戻しはしない。
type InventoryRepository interface {
	// 在庫が足りるときだけ減算。足りなければfalseで何も変えない
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// 在庫戻し（キャンセルなど）
	IncreaseStock(ctx context.Context, productID int64, qty int64) error

	// 販売数を加算
	IncrementSalesCount(ctx context.Context, productID int64, qty int64) error

	// 在庫の現在値を設定
	SetStock(ctx context.Context, productID int64, newStock int64) error

	// 調整履歴作成
	CreateAdjustment(ctx context.Context, adjustment model.InventoryAdjustment) error
}
