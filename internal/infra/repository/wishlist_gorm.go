package repository

import (
	"context"
	"errors"
	"time"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"

	"gorm.io/gorm"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// 持ち主スコープのWHERE句を組み立てる
func ownerScope(tx *gorm.DB, owner model.Identity) *gorm.DB {
	if owner.IsRegistered() {
		return tx.Where("user_id = ?", owner.UserID)
	}
	return tx.Where("session_token = ?", owner.SessionToken)
}

// get-or-create。既にあれば created=false で既存行を返す
func (r *WishlistGormRepository) GetOrCreate(ctx context.Context, owner model.Identity, productID int64) (model.WishlistEntry, bool, error) {
	if !owner.IsValid() {
		return model.WishlistEntry{}, false, errors.New("invalid owner identity")
	}

	var entry model.WishlistEntry
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := ownerScope(tx, owner).
			Where("product_id = ?", productID).
			First(&entry).Error

		if findErr == nil {
			return nil
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		newEntry := model.WishlistEntry{
			ProductID: productID,
			CreatedAt: time.Now(),
		}
		if owner.IsRegistered() {
			uid := owner.UserID
			newEntry.UserID = &uid
		} else {
			token := owner.SessionToken
			newEntry.SessionToken = &token
		}

		if err := tx.Create(&newEntry).Error; err != nil {
			//同時追加で一意制約に当たったら既存行を取り直す
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				retryErr := ownerScope(tx, owner).
					Where("product_id = ?", productID).
					First(&entry).Error
				if retryErr == nil {
					return nil
				}
			}
			return err
		}

		entry = newEntry
		created = true
		return nil
	})

	if err != nil {
		return model.WishlistEntry{}, false, err
	}
	return entry, created, nil
}

// 持ち主スコープで削除。他人の行はErrNotFound（静かに成功しない）
func (r *WishlistGormRepository) DeleteOwned(ctx context.Context, owner model.Identity, entryID int64) error {
	if !owner.IsValid() {
		return repo.ErrNotFound
	}

	res := ownerScope(r.db.WithContext(ctx), owner).
		Where("id = ?", entryID).
		Delete(&model.WishlistEntry{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *WishlistGormRepository) ListByOwner(ctx context.Context, owner model.Identity) ([]model.WishlistEntry, error) {
	if !owner.IsValid() {
		return []model.WishlistEntry{}, nil
	}

	var entries []model.WishlistEntry
	err := ownerScope(r.db.WithContext(ctx), owner).
		Order("id desc").
		Find(&entries).Error
	if err != nil {
		return []model.WishlistEntry{}, err
	}
	return entries, nil
}

func (r *WishlistGormRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WishlistEntry{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
