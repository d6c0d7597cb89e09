package usecase_test

import (
	"context"
	"testing"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
	"vastram/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type WishlistRepoMock struct{ mock.Mock }

func (m *WishlistRepoMock) GetOrCreate(ctx context.Context, owner model.Identity, productID int64) (model.WishlistEntry, bool, error) {
	args := m.Called(ctx, owner, productID)
	entry, _ := args.Get(0).(model.WishlistEntry)
	return entry, args.Bool(1), args.Error(2)
}

func (m *WishlistRepoMock) DeleteOwned(ctx context.Context, owner model.Identity, entryID int64) error {
	args := m.Called(ctx, owner, entryID)
	return args.Error(0)
}

func (m *WishlistRepoMock) ListByOwner(ctx context.Context, owner model.Identity) ([]model.WishlistEntry, error) {
	args := m.Called(ctx, owner)
	entries, _ := args.Get(0).([]model.WishlistEntry)
	return entries, args.Error(1)
}

func (m *WishlistRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	panic("not used in WishlistUsecase tests")
}

type WlProductRepoMock struct{ mock.Mock }

func (m *WlProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in WishlistUsecase tests")
}

func (m *WlProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *WlProductRepoMock) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	panic("not used in WishlistUsecase tests")
}

func (m *WlProductRepoMock) ListNewArrivals(ctx context.Context, days int, limit int) ([]model.Product, error) {
	panic("not used in WishlistUsecase tests")
}

func (m *WlProductRepoMock) ListMostDiscounted(ctx context.Context, limit int) ([]model.Product, error) {
	panic("not used in WishlistUsecase tests")
}

func (m *WlProductRepoMock) ListRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]model.Product, error) {
	panic("not used in WishlistUsecase tests")
}

func (m *WlProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in WishlistUsecase tests")
}

func (m *WlProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in WishlistUsecase tests")
}

func (m *WlProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	panic("not used in WishlistUsecase tests")
}

func TestWishlistUsecase_Add_NewEntry(t *testing.T) {
	wlRepo := new(WishlistRepoMock)
	productRepo := new(WlProductRepoMock)
	uc := usecase.NewWishlistUsecase(wlRepo, productRepo)
	owner := model.RegisteredUser(7)

	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, IsActive: true}, nil)
	userID := int64(7)
	wlRepo.On("GetOrCreate", mock.Anything, owner, int64(10)).
		Return(model.WishlistEntry{ID: 1, UserID: &userID, ProductID: 10}, true, nil)

	out, err := uc.Add(context.Background(), owner, 10)
	assert.NoError(t, err)
	assert.True(t, out.Added)
	assert.Equal(t, int64(1), out.Entry.ID)
}

func TestWishlistUsecase_Add_AlreadyExistsIsNotAnError(t *testing.T) {
	wlRepo := new(WishlistRepoMock)
	productRepo := new(WlProductRepoMock)
	uc := usecase.NewWishlistUsecase(wlRepo, productRepo)
	owner := model.AnonymousSession("sess-abc")

	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, IsActive: true}, nil)
	token := "sess-abc"
	wlRepo.On("GetOrCreate", mock.Anything, owner, int64(10)).
		Return(model.WishlistEntry{ID: 1, SessionToken: &token, ProductID: 10}, false, nil)

	out, err := uc.Add(context.Background(), owner, 10)
	assert.NoError(t, err)
	assert.False(t, out.Added)
}

func TestWishlistUsecase_Add_InactiveProduct(t *testing.T) {
	wlRepo := new(WishlistRepoMock)
	productRepo := new(WlProductRepoMock)
	uc := usecase.NewWishlistUsecase(wlRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, IsActive: false}, nil)

	_, err := uc.Add(context.Background(), model.RegisteredUser(7), 10)
	assertHTTPStatus(t, err, 404)

	wlRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestWishlistUsecase_Add_InvalidOwner(t *testing.T) {
	wlRepo := new(WishlistRepoMock)
	productRepo := new(WlProductRepoMock)
	uc := usecase.NewWishlistUsecase(wlRepo, productRepo)

	_, err := uc.Add(context.Background(), model.Identity{}, 10)
	assertHTTPStatus(t, err, 401)
}

func TestWishlistUsecase_Remove_OtherOwnersEntry(t *testing.T) {
	wlRepo := new(WishlistRepoMock)
	productRepo := new(WlProductRepoMock)
	uc := usecase.NewWishlistUsecase(wlRepo, productRepo)
	owner := model.RegisteredUser(7)

	//他人の行は存在しない扱い
	wlRepo.On("DeleteOwned", mock.Anything, owner, int64(99)).Return(repo.ErrNotFound)

	err := uc.Remove(context.Background(), owner, 99)
	assertHTTPStatus(t, err, 404)
}

func TestWishlistUsecase_List_InvalidOwnerReturnsEmpty(t *testing.T) {
	wlRepo := new(WishlistRepoMock)
	productRepo := new(WlProductRepoMock)
	uc := usecase.NewWishlistUsecase(wlRepo, productRepo)

	out, err := uc.List(context.Background(), model.Identity{})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	wlRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestWishlistUsecase_List_ByAnonymousSession(t *testing.T) {
	wlRepo := new(WishlistRepoMock)
	productRepo := new(WlProductRepoMock)
	uc := usecase.NewWishlistUsecase(wlRepo, productRepo)
	owner := model.AnonymousSession("sess-abc")
	token := "sess-abc"

	wlRepo.On("ListByOwner", mock.Anything, owner).Return([]model.WishlistEntry{
		{ID: 1, SessionToken: &token, ProductID: 10},
		{ID: 2, SessionToken: &token, ProductID: 20},
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Silk Saree", IsActive: true}, nil)
	//消された商品はスキップ
	productRepo.On("FindByID", mock.Anything, int64(20)).
		Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.List(context.Background(), owner)
	assert.NoError(t, err)
	if assert.Equal(t, 1, len(out.Items)) {
		assert.Equal(t, int64(10), out.Items[0].ProductID)
	}
}
