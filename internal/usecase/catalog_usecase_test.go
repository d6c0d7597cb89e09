package usecase_test

import (
	"context"
	"strings"
	"testing"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
	"vastram/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CatProductRepoMock struct{ mock.Mock }

func (m *CatProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *CatProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CatProductRepoMock) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatProductRepoMock) ListNewArrivals(ctx context.Context, days int, limit int) ([]model.Product, error) {
	args := m.Called(ctx, days, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatProductRepoMock) ListMostDiscounted(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatProductRepoMock) ListRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]model.Product, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CatProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in CatalogUsecase tests")
}

func (m *CatProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in CatalogUsecase tests")
}

type CatCategoryRepoMock struct{ mock.Mock }

func (m *CatCategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CatCategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CatCategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatCategoryRepoMock) Update(ctx context.Context, c model.Category) error {
	panic("not used in CatalogUsecase tests")
}

func (m *CatCategoryRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in CatalogUsecase tests")
}

type CatSliderRepoMock struct{ mock.Mock }

func (m *CatSliderRepoMock) ListActive(ctx context.Context, limit int) ([]model.Slider, error) {
	args := m.Called(ctx, limit)
	sliders, _ := args.Get(0).([]model.Slider)
	return sliders, args.Error(1)
}

func (m *CatSliderRepoMock) Create(ctx context.Context, s model.Slider) (model.Slider, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatSliderRepoMock) Update(ctx context.Context, s model.Slider) error {
	panic("not used in CatalogUsecase tests")
}

func (m *CatSliderRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in CatalogUsecase tests")
}

type CatOfferRepoMock struct{ mock.Mock }

func (m *CatOfferRepoMock) ListActive(ctx context.Context, limit int) ([]model.SpecialOffer, error) {
	args := m.Called(ctx, limit)
	offers, _ := args.Get(0).([]model.SpecialOffer)
	return offers, args.Error(1)
}

func (m *CatOfferRepoMock) Create(ctx context.Context, o model.SpecialOffer) (model.SpecialOffer, error) {
	panic("not used in CatalogUsecase tests")
}

func (m *CatOfferRepoMock) Update(ctx context.Context, o model.SpecialOffer) error {
	panic("not used in CatalogUsecase tests")
}

func (m *CatOfferRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in CatalogUsecase tests")
}

type catFixture struct {
	products *CatProductRepoMock
	category *CatCategoryRepoMock
	sliders  *CatSliderRepoMock
	offers   *CatOfferRepoMock
	uc       *usecase.CatalogUsecase
}

func newCatalogFixture() *catFixture {
	f := &catFixture{
		products: new(CatProductRepoMock),
		category: new(CatCategoryRepoMock),
		sliders:  new(CatSliderRepoMock),
		offers:   new(CatOfferRepoMock),
	}
	f.uc = usecase.NewCatalogUsecase(f.products, f.category, f.sliders, f.offers)
	return f
}

func TestCatalogUsecase_Home(t *testing.T) {
	f := newCatalogFixture()

	f.category.On("List", mock.Anything).Return([]model.Category{{ID: 3, Name: "Sarees"}}, nil)
	f.sliders.On("ListActive", mock.Anything, 4).Return([]model.Slider{{ID: 1}}, nil)
	f.products.On("ListFeatured", mock.Anything, 8).Return([]model.Product{{ID: 10}}, nil)
	f.products.On("ListNewArrivals", mock.Anything, 30, 8).Return([]model.Product{{ID: 11}}, nil)
	f.products.On("ListMostDiscounted", mock.Anything, 8).Return([]model.Product{{ID: 12}}, nil)
	f.offers.On("ListActive", mock.Anything, 1).Return([]model.SpecialOffer{{ID: 1}}, nil)

	out, err := f.uc.Home(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Categories))
	assert.Equal(t, 1, len(out.Sliders))
	assert.Equal(t, 1, len(out.Featured))
	assert.Equal(t, 1, len(out.NewArrivals))
	assert.Equal(t, 1, len(out.MostDiscounted))
	assert.Equal(t, 1, len(out.SpecialOffers))
}

func TestCatalogUsecase_ListProducts_InvalidPage(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 20})
	assertHTTPStatus(t, err, 400)

	f.products.AssertNotCalled(t, "ListPublic", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_ListProducts_InvalidLimit(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})
	assertHTTPStatus(t, err, 400)
}

func TestCatalogUsecase_ListProducts_QueryTooLong(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, Q: strings.Repeat("a", 101),
	})
	assertHTTPStatus(t, err, 400)
}

func TestCatalogUsecase_ListProducts_InvalidSort(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, Sort: "rating",
	})
	assertHTTPStatus(t, err, 400)
}

func TestCatalogUsecase_ListProducts_TrimsQuery(t *testing.T) {
	f := newCatalogFixture()

	f.products.On("ListPublic", mock.Anything, repo.ProductListQuery{
		Page: 1, Limit: 20, Q: "saree", Sort: "price_asc",
	}).Return([]model.Product{{ID: 10}}, int64(1), nil)

	out, err := f.uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, Q: "  saree  ", Sort: "price_asc",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)

	f.products.AssertExpectations(t)
}

func TestCatalogUsecase_GetProductDetail_DerivesDiscount(t *testing.T) {
	f := newCatalogFixture()

	p := model.Product{ID: 10, CategoryID: 3, IsActive: true,
		ActualPrice:  decimal.NewFromInt(2000),
		SpecialPrice: decimal.NewFromInt(1500)}

	f.products.On("FindByID", mock.Anything, int64(10)).Return(p, nil)
	f.products.On("ListRelated", mock.Anything, int64(3), int64(10), 6).
		Return([]model.Product{{ID: 11}}, nil)

	out, err := f.uc.GetProductDetail(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, 25, out.DiscountPercentage)
	assert.Equal(t, 1, len(out.Related))
}

func TestCatalogUsecase_GetProductDetail_InactiveIsNotFound(t *testing.T) {
	f := newCatalogFixture()

	f.products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, IsActive: false}, nil)

	_, err := f.uc.GetProductDetail(context.Background(), 10)
	assertHTTPStatus(t, err, 404)

	f.products.AssertNotCalled(t, "ListRelated", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogUsecase_ListCategoryProducts_UnknownCategory(t *testing.T) {
	f := newCatalogFixture()

	f.category.On("FindByID", mock.Anything, int64(3)).Return(model.Category{}, repo.ErrNotFound)

	_, err := f.uc.ListCategoryProducts(context.Background(), 3, 1, 20)
	assertHTTPStatus(t, err, 404)
}
