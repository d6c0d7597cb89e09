package auth_test

import (
	"context"
	"testing"
	"time"

	"vastram/internal/domain/model"
	"vastram/internal/repository"
	auth "vastram/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) IncrementTokenVersion(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// テストで時刻を固定する
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestRegisterUserUsecase_Execute(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := auth.NewRegisterUserUsecase(userRepo, fakeHasher{}, fixedClock{testNow})

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").
		Return(nil, repository.ErrUserNotFound)

	var created *model.User
	userRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*model.User) }).
		Return(nil)

	out, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:     "  Asha@Example.com ",
		Password:  "correct horse battery",
		FirstName: "Asha",
		LastName:  "Rao",
	})
	assert.NoError(t, err)

	//emailは小文字へ正規化して保存する
	assert.Equal(t, "asha@example.com", created.Email)
	assert.Equal(t, "hashed:correct horse battery", created.PasswordHash)
	assert.Equal(t, model.RoleUser, created.Role)
	assert.True(t, created.IsActive)

	//返却時はハッシュを落とす
	assert.Equal(t, "", out.User.PasswordHash)
}

func TestRegisterUserUsecase_Execute_InvalidEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := auth.NewRegisterUserUsecase(userRepo, fakeHasher{}, fixedClock{testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "not-an-email",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidEmailFormat)

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUserUsecase_Execute_PasswordTooShort(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := auth.NewRegisterUserUsecase(userRepo, fakeHasher{}, fixedClock{testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "asha@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
}

func TestRegisterUserUsecase_Execute_WeakPassword(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := auth.NewRegisterUserUsecase(userRepo, fakeHasher{}, fixedClock{testNow})

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "asha@example.com",
		Password: "123456789012",
	})
	assert.ErrorIs(t, err, auth.ErrWeakPassword)
}

func TestRegisterUserUsecase_Execute_EmailAlreadyExists(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := auth.NewRegisterUserUsecase(userRepo, fakeHasher{}, fixedClock{testNow})

	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").
		Return(&model.User{ID: 1, Email: "asha@example.com"}, nil)

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "asha@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUserUsecase_Execute_DuplicateOnInsert(t *testing.T) {
	userRepo := new(UserRepoMock)
	uc := auth.NewRegisterUserUsecase(userRepo, fakeHasher{}, fixedClock{testNow})

	//FindByEmailとCreateの間に他のリクエストが同じemailを作った場合
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").
		Return(nil, repository.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := uc.Execute(context.Background(), auth.RegisterUserInput{
		Email:    "asha@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}
