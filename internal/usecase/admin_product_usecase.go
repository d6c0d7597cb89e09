package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"

	"github.com/shopspring/decimal"
)

// 管理者の商品・カテゴリ・在庫操作
type AdminProductUsecase struct {
	productRepo   repo.ProductRepository
	categoryRepo  repo.CategoryRepository
	inventoryRepo repo.InventoryRepository
	auditRepo     repo.AuditLogRepository
}

// DI
func NewAdminProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	inventoryRepo repo.InventoryRepository,
	auditRepo repo.AuditLogRepository,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
	}
}

type ProductInput struct {
	CategoryID   int64
	Name         string
	Description  string
	ActualPrice  decimal.Decimal
	SpecialPrice decimal.Decimal
	ImageURL     string
	Stock        int64
	IsActive     bool
	IsFeatured   bool
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	if !in.ActualPrice.IsPositive() || !in.SpecialPrice.IsPositive() {
		return NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	if in.SpecialPrice.GreaterThan(in.ActualPrice) {
		return NewHTTPError(http.StatusBadRequest, "special price exceeds actual price")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}
	return nil
}

func (u *AdminProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "category not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		CategoryID:   in.CategoryID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		ActualPrice:  in.ActualPrice,
		SpecialPrice: in.SpecialPrice,
		ImageURL:     in.ImageURL,
		Stock:        in.Stock,
		IsActive:     in.IsActive,
		IsFeatured:   in.IsFeatured,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 商品情報の更新。在庫と販売数はここでは触らない（在庫はSetStock経由のみ）。
func (u *AdminProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "category not found")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.CategoryID = in.CategoryID
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.ActualPrice = in.ActualPrice
	p.SpecialPrice = in.SpecialPrice
	p.ImageURL = in.ImageURL
	p.IsActive = in.IsActive
	p.IsFeatured = in.IsFeatured

	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *AdminProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.productRepo.SoftDelete(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type SetStockInput struct {
	NewStock int64
	Reason   string
}

// 在庫の絶対値を設定し、差分を調整履歴と監査ログに残す
func (u *AdminProductUsecase) SetStock(ctx context.Context, adminUserID int64, productID int64, in SetStockInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.NewStock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return NewHTTPError(http.StatusBadRequest, "reason required")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.inventoryRepo.SetStock(ctx, productID, in.NewStock); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.inventoryRepo.CreateAdjustment(ctx, model.InventoryAdjustment{
		ProductID:   productID,
		AdminUserID: adminUserID,
		Delta:       in.NewStock - p.Stock,
		Reason:      strings.TrimSpace(in.Reason),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	b, _ := json.Marshal(map[string]int64{"stock": p.Stock})
	a, _ := json.Marshal(map[string]int64{"stock": in.NewStock})
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateStock,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   string(b),
		AfterJSON:    string(a),
	})
	return nil
}

type CategoryInput struct {
	Name         string
	Description  string
	ThumbnailURL string
}

func (u *AdminProductUsecase) CreateCategory(ctx context.Context, in CategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
	})
	if err == repo.ErrDuplicate {
		return model.Category{}, NewHTTPError(http.StatusConflict, "category already exists")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *AdminProductUsecase) UpdateCategory(ctx context.Context, categoryID int64, in CategoryInput) (model.Category, error) {
	if categoryID <= 0 {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	c, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	c.Name = strings.TrimSpace(in.Name)
	c.Description = in.Description
	c.ThumbnailURL = in.ThumbnailURL

	if err := u.categoryRepo.Update(ctx, c); err != nil {
		if err == repo.ErrDuplicate {
			return model.Category{}, NewHTTPError(http.StatusConflict, "category already exists")
		}
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *AdminProductUsecase) DeleteCategory(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.categoryRepo.Delete(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
