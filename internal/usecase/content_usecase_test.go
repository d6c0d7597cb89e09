package usecase_test

import (
	"context"
	"testing"
	"time"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
	"vastram/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CtAboutRepoMock struct{ mock.Mock }

func (m *CtAboutRepoMock) FindActive(ctx context.Context) (model.AboutUs, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).(model.AboutUs)
	return a, args.Error(1)
}

func (m *CtAboutRepoMock) Upsert(ctx context.Context, a model.AboutUs) (model.AboutUs, error) {
	panic("not used in ContentUsecase tests")
}

type CtEventRepoMock struct{ mock.Mock }

func (m *CtEventRepoMock) ListActive(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]model.Event)
	return events, args.Error(1)
}

func (m *CtEventRepoMock) Create(ctx context.Context, e model.Event) (model.Event, error) {
	panic("not used in ContentUsecase tests")
}

func (m *CtEventRepoMock) Update(ctx context.Context, e model.Event) error {
	panic("not used in ContentUsecase tests")
}

func (m *CtEventRepoMock) Delete(ctx context.Context, id int64) error {
	panic("not used in ContentUsecase tests")
}

type CtContactRepoMock struct{ mock.Mock }

func (m *CtContactRepoMock) Create(ctx context.Context, q model.ContactQuery) (model.ContactQuery, error) {
	args := m.Called(ctx, q)
	created, _ := args.Get(0).(model.ContactQuery)
	return created, args.Error(1)
}

func (m *CtContactRepoMock) FindByID(ctx context.Context, id int64) (model.ContactQuery, error) {
	panic("not used in ContentUsecase tests")
}

func (m *CtContactRepoMock) List(ctx context.Context, status string, page int, limit int) ([]model.ContactQuery, int64, error) {
	panic("not used in ContentUsecase tests")
}

func (m *CtContactRepoMock) UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, resolvedAt *time.Time) error {
	panic("not used in ContentUsecase tests")
}

func newContentFixture() (*usecase.ContentUsecase, *CtAboutRepoMock, *CtEventRepoMock, *CtContactRepoMock) {
	aboutRepo := new(CtAboutRepoMock)
	eventRepo := new(CtEventRepoMock)
	contactRepo := new(CtContactRepoMock)
	return usecase.NewContentUsecase(aboutRepo, eventRepo, contactRepo), aboutRepo, eventRepo, contactRepo
}

func TestContentUsecase_GetAboutUs_NotConfigured(t *testing.T) {
	uc, aboutRepo, _, _ := newContentFixture()

	aboutRepo.On("FindActive", mock.Anything).Return(model.AboutUs{}, repo.ErrNotFound)

	_, err := uc.GetAboutUs(context.Background())
	assertHTTPStatus(t, err, 404)
}

func TestContentUsecase_SubmitContact(t *testing.T) {
	uc, _, _, contactRepo := newContentFixture()

	var created model.ContactQuery
	contactRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(model.ContactQuery) }).
		Return(model.ContactQuery{ID: 5, Status: model.ContactStatusNew}, nil)

	out, err := uc.SubmitContact(context.Background(), usecase.SubmitContactInput{
		Name:    " Asha ",
		Email:   "asha@example.com",
		Subject: "sizes",
		Message: "Do you stock XL?",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)

	//新規問い合わせは必ずnewで入る
	assert.Equal(t, model.ContactStatusNew, created.Status)
	assert.Equal(t, "Asha", created.Name)
}

func TestContentUsecase_SubmitContact_MissingFields(t *testing.T) {
	uc, _, _, contactRepo := newContentFixture()

	_, err := uc.SubmitContact(context.Background(), usecase.SubmitContactInput{
		Name: "Asha", Email: "asha@example.com", Subject: "", Message: "msg",
	})
	assertHTTPStatus(t, err, 400)

	contactRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContentUsecase_SubmitContact_PhoneIsOptional(t *testing.T) {
	uc, _, _, contactRepo := newContentFixture()

	contactRepo.On("Create", mock.Anything, mock.Anything).
		Return(model.ContactQuery{ID: 6}, nil)

	_, err := uc.SubmitContact(context.Background(), usecase.SubmitContactInput{
		Name: "Asha", Email: "asha@example.com", Subject: "sizes", Message: "msg",
	})
	assert.NoError(t, err)
}

func TestContentUsecase_ListEvents(t *testing.T) {
	uc, _, eventRepo, _ := newContentFixture()

	eventRepo.On("ListActive", mock.Anything).Return([]model.Event{{ID: 1}}, nil)

	events, err := uc.ListEvents(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(events))
}
