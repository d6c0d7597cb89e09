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

type PfUserRepoMock struct{ mock.Mock }

func (m *PfUserRepoMock) Create(ctx context.Context, user *model.User) error {
	panic("not used in ProfileUsecase tests")
}

func (m *PfUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *PfUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *PfUserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *PfUserRepoMock) IncrementTokenVersion(ctx context.Context, userID int64) error {
	panic("not used in ProfileUsecase tests")
}

type PfOrderRepoMock struct{ mock.Mock }

func (m *PfOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	panic("not used in ProfileUsecase tests")
}

func (m *PfOrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	panic("not used in ProfileUsecase tests")
}

func (m *PfOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	panic("not used in ProfileUsecase tests")
}

func (m *PfOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	panic("not used in ProfileUsecase tests")
}

func (m *PfOrderRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PfOrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	panic("not used in ProfileUsecase tests")
}

type PfWishlistRepoMock struct{ mock.Mock }

func (m *PfWishlistRepoMock) GetOrCreate(ctx context.Context, owner model.Identity, productID int64) (model.WishlistEntry, bool, error) {
	panic("not used in ProfileUsecase tests")
}

func (m *PfWishlistRepoMock) DeleteOwned(ctx context.Context, owner model.Identity, entryID int64) error {
	panic("not used in ProfileUsecase tests")
}

func (m *PfWishlistRepoMock) ListByOwner(ctx context.Context, owner model.Identity) ([]model.WishlistEntry, error) {
	panic("not used in ProfileUsecase tests")
}

func (m *PfWishlistRepoMock) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func newProfileFixture() (*usecase.ProfileUsecase, *PfUserRepoMock, *PfOrderRepoMock, *PfWishlistRepoMock) {
	userRepo := new(PfUserRepoMock)
	orderRepo := new(PfOrderRepoMock)
	wlRepo := new(PfWishlistRepoMock)
	return usecase.NewProfileUsecase(userRepo, orderRepo, wlRepo), userRepo, orderRepo, wlRepo
}

func TestProfileUsecase_GetProfile(t *testing.T) {
	uc, userRepo, orderRepo, wlRepo := newProfileFixture()
	userID := int64(7)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID: userID, Email: "asha@example.com", FirstName: "Asha", LastName: "Rao",
	}, nil)
	orderRepo.On("CountByUserID", mock.Anything, userID).Return(int64(3), nil)
	wlRepo.On("CountByUserID", mock.Anything, userID).Return(int64(5), nil)

	out, err := uc.GetProfile(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "asha@example.com", out.Email)
	assert.Equal(t, int64(3), out.OrderCount)
	assert.Equal(t, int64(5), out.WishlistCount)
}

func TestProfileUsecase_GetProfile_UnknownUser(t *testing.T) {
	uc, userRepo, _, _ := newProfileFixture()

	userRepo.On("FindByID", mock.Anything, int64(7)).Return(nil, repo.ErrUserNotFound)

	_, err := uc.GetProfile(context.Background(), 7)
	assertHTTPStatus(t, err, 404)
}

func TestProfileUsecase_UpdateProfile_EmailTaken(t *testing.T) {
	uc, userRepo, _, _ := newProfileFixture()
	userID := int64(7)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID: userID, Email: "asha@example.com",
	}, nil)
	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").
		Return(&model.User{ID: 99, Email: "taken@example.com"}, nil)

	_, err := uc.UpdateProfile(context.Background(), userID, usecase.UpdateProfileInput{
		Email: "Taken@Example.com",
	})
	assertHTTPStatus(t, err, 409)

	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileUsecase_UpdateProfile_NormalizesEmail(t *testing.T) {
	uc, userRepo, orderRepo, wlRepo := newProfileFixture()
	userID := int64(7)

	userRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
		ID: userID, Email: "asha@example.com", FirstName: "Asha",
	}, nil)
	userRepo.On("FindByEmail", mock.Anything, "new@example.com").
		Return(nil, repo.ErrUserNotFound)

	var updated *model.User
	userRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { updated = args.Get(1).(*model.User) }).
		Return(nil)
	orderRepo.On("CountByUserID", mock.Anything, userID).Return(int64(0), nil)
	wlRepo.On("CountByUserID", mock.Anything, userID).Return(int64(0), nil)

	_, err := uc.UpdateProfile(context.Background(), userID, usecase.UpdateProfileInput{
		FirstName: " Asha ", LastName: "Rao", Email: "  New@Example.com ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Asha", updated.FirstName)
}
