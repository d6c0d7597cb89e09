package repository

import (
	"context"

	"vastram/internal/domain/model"
)

type WishlistRepository interface {
	//get-or-create。既にあれば created=false で既存行を返す
	GetOrCreate(ctx context.Context, owner model.Identity, productID int64) (model.WishlistEntry, bool, error)

	//持ち主スコープで削除。他人の行はErrNotFound
	DeleteOwned(ctx context.Context, owner model.Identity, entryID int64) error

	ListByOwner(ctx context.Context, owner model.Identity) ([]model.WishlistEntry, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
