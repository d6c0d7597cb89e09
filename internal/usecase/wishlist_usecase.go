package usecase

import (
	"context"
	"net/http"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
)

// お気に入りの業務ロジック。
// 持ち主は会員か匿名セッションのどちらか（Identityで受け取る）。
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	productRepo  repo.ProductRepository
}

// DI
func NewWishlistUsecase(wishlistRepo repo.WishlistRepository, productRepo repo.ProductRepository) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

type WishlistItemResponse struct {
	ID        int64         `json:"id"`
	ProductID int64         `json:"product_id"`
	Product   model.Product `json:"product"`
}

type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
}

// 追加結果。「新規追加」と「既に登録済み」はエラーではなく別の正常系
type AddWishlistOutput struct {
	Entry model.WishlistEntry `json:"entry"`
	Added bool                `json:"added"`
}

func (u *WishlistUsecase) Add(ctx context.Context, owner model.Identity, productID int64) (AddWishlistOutput, error) {
	if !owner.IsValid() {
		return AddWishlistOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return AddWishlistOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	//商品の存在チェック
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return AddWishlistOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return AddWishlistOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return AddWishlistOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	entry, created, err := u.wishlistRepo.GetOrCreate(ctx, owner, productID)
	if err != nil {
		return AddWishlistOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AddWishlistOutput{Entry: entry, Added: created}, nil
}

// 削除は持ち主スコープ。他人の行は「無い」として404
func (u *WishlistUsecase) Remove(ctx context.Context, owner model.Identity, entryID int64) error {
	if !owner.IsValid() {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if entryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.wishlistRepo.DeleteOwned(ctx, owner, entryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *WishlistUsecase) List(ctx context.Context, owner model.Identity) (WishlistResponse, error) {
	if !owner.IsValid() {
		return WishlistResponse{Items: []WishlistItemResponse{}}, nil
	}

	entries, err := u.wishlistRepo.ListByOwner(ctx, owner)
	if err != nil {
		return WishlistResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]WishlistItemResponse, 0, len(entries))
	for _, e := range entries {
		p, err := u.productRepo.FindByID(ctx, e.ProductID)
		if err != nil {
			continue
		}

		items = append(items, WishlistItemResponse{
			ID:        e.ID,
			ProductID: e.ProductID,
			Product:   p,
		})
	}

	return WishlistResponse{Items: items}, nil
}
