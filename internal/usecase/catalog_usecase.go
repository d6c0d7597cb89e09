package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// トップページ・商品閲覧まわりの業務ロジック。読み取りのみ。
type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	sliderRepo   repo.SliderRepository
	offerRepo    repo.SpecialOfferRepository
}

// DI
func NewCatalogUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	sliderRepo repo.SliderRepository,
	offerRepo repo.SpecialOfferRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		sliderRepo:   sliderRepo,
		offerRepo:    offerRepo,
	}
}

// トップページの構成
type HomeOutput struct {
	Categories     []model.Category     `json:"categories"`
	Sliders        []model.Slider       `json:"sliders"`
	Featured       []model.Product      `json:"featured_products"`
	NewArrivals    []model.Product      `json:"new_arrivals"`
	MostDiscounted []model.Product      `json:"most_discounted"`
	SpecialOffers  []model.SpecialOffer `json:"special_offers"`
}

const (
	homeSliderLimit  = 4
	homeSectionLimit = 8

	//新着とみなす日数
	newArrivalDays = 30
)

func (u *CatalogUsecase) Home(ctx context.Context) (HomeOutput, error) {
	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	sliders, err := u.sliderRepo.ListActive(ctx, homeSliderLimit)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//人気＝販売数の多い順
	featured, err := u.productRepo.ListFeatured(ctx, homeSectionLimit)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	arrivals, err := u.productRepo.ListNewArrivals(ctx, newArrivalDays, homeSectionLimit)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	discounted, err := u.productRepo.ListMostDiscounted(ctx, homeSectionLimit)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	offers, err := u.offerRepo.ListActive(ctx, 1)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return HomeOutput{
		Categories:     categories,
		Sliders:        sliders,
		Featured:       featured,
		NewArrivals:    arrivals,
		MostDiscounted: discounted,
		SpecialOffers:  offers,
	}, nil
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *int64
	Sort       string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "q too long")
	}
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		Q:          strings.TrimSpace(in.Q),
		CategoryID: in.CategoryID,
		Sort:       in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

type ProductDetailOutput struct {
	Product model.Product   `json:"product"`

	//割引率は保存値ではなく導出値
	DiscountPercentage int             `json:"discount_percentage"`
	Related            []model.Product `json:"related_products"`
}

const relatedLimit = 6

func (u *CatalogUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//非公開商品は存在しない扱い
	if !p.IsActive {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	related, err := u.productRepo.ListRelated(ctx, p.CategoryID, p.ID, relatedLimit)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductDetailOutput{
		Product:            p,
		DiscountPercentage: p.DiscountPercentage(),
		Related:            related,
	}, nil
}

type CategoryProductsOutput struct {
	Category model.Category  `json:"category"`
	Items    []model.Product `json:"items"`
	Total    int64           `json:"total"`
}

// カテゴリ内の公開商品一覧
func (u *CatalogUsecase) ListCategoryProducts(ctx context.Context, categoryID int64, page int, limit int) (CategoryProductsOutput, error) {
	if categoryID <= 0 {
		return CategoryProductsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	cat, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return CategoryProductsOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CategoryProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		Page:       page,
		Limit:      limit,
		CategoryID: &categoryID,
	})
	if err != nil {
		return CategoryProductsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CategoryProductsOutput{Category: cat, Items: items, Total: total}, nil
}
