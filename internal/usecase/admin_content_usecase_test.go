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

type AcSliderRepoMock struct{ mock.Mock }

func (m *AcSliderRepoMock) ListActive(ctx context.Context, limit int) ([]model.Slider, error) {
	panic("not used in AdminContentUsecase tests")
}

func (m *AcSliderRepoMock) Create(ctx context.Context, s model.Slider) (model.Slider, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Slider)
	return created, args.Error(1)
}

func (m *AcSliderRepoMock) Update(ctx context.Context, s model.Slider) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *AcSliderRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AcOfferRepoMock struct{ mock.Mock }

func (m *AcOfferRepoMock) ListActive(ctx context.Context, limit int) ([]model.SpecialOffer, error) {
	panic("not used in AdminContentUsecase tests")
}

func (m *AcOfferRepoMock) Create(ctx context.Context, o model.SpecialOffer) (model.SpecialOffer, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(model.SpecialOffer)
	return created, args.Error(1)
}

func (m *AcOfferRepoMock) Update(ctx context.Context, o model.SpecialOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *AcOfferRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AcAboutRepoMock struct{ mock.Mock }

func (m *AcAboutRepoMock) FindActive(ctx context.Context) (model.AboutUs, error) {
	panic("not used in AdminContentUsecase tests")
}

func (m *AcAboutRepoMock) Upsert(ctx context.Context, a model.AboutUs) (model.AboutUs, error) {
	args := m.Called(ctx, a)
	saved, _ := args.Get(0).(model.AboutUs)
	return saved, args.Error(1)
}

type AcEventRepoMock struct{ mock.Mock }

func (m *AcEventRepoMock) ListActive(ctx context.Context) ([]model.Event, error) {
	panic("not used in AdminContentUsecase tests")
}

func (m *AcEventRepoMock) Create(ctx context.Context, e model.Event) (model.Event, error) {
	args := m.Called(ctx, e)
	created, _ := args.Get(0).(model.Event)
	return created, args.Error(1)
}

func (m *AcEventRepoMock) Update(ctx context.Context, e model.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *AcEventRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type AcContactRepoMock struct{ mock.Mock }

func (m *AcContactRepoMock) Create(ctx context.Context, q model.ContactQuery) (model.ContactQuery, error) {
	panic("not used in AdminContentUsecase tests")
}

func (m *AcContactRepoMock) FindByID(ctx context.Context, id int64) (model.ContactQuery, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(model.ContactQuery)
	return q, args.Error(1)
}

func (m *AcContactRepoMock) List(ctx context.Context, status string, page int, limit int) ([]model.ContactQuery, int64, error) {
	args := m.Called(ctx, status, page, limit)
	list, _ := args.Get(0).([]model.ContactQuery)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *AcContactRepoMock) UpdateStatus(ctx context.Context, id int64, status model.ContactStatus, resolvedAt *time.Time) error {
	args := m.Called(ctx, id, status, resolvedAt)
	return args.Error(0)
}

type AcAuditRepoMock struct{ mock.Mock }

func (m *AcAuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AcAuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	panic("not used in AdminContentUsecase tests")
}

type acFixture struct {
	sliders *AcSliderRepoMock
	offers  *AcOfferRepoMock
	about   *AcAboutRepoMock
	events  *AcEventRepoMock
	contact *AcContactRepoMock
	audit   *AcAuditRepoMock
	uc      *usecase.AdminContentUsecase
}

func newAdminContentFixture() *acFixture {
	f := &acFixture{
		sliders: new(AcSliderRepoMock),
		offers:  new(AcOfferRepoMock),
		about:   new(AcAboutRepoMock),
		events:  new(AcEventRepoMock),
		contact: new(AcContactRepoMock),
		audit:   new(AcAuditRepoMock),
	}
	f.uc = usecase.NewAdminContentUsecase(f.sliders, f.offers, f.about, f.events, f.contact, f.audit)
	return f
}

func TestAdminContentUsecase_UpdateContactStatus_NewToInProgress(t *testing.T) {
	f := newAdminContentFixture()

	f.contact.On("FindByID", mock.Anything, int64(5)).
		Return(model.ContactQuery{ID: 5, Status: model.ContactStatusNew}, nil)
	f.contact.On("UpdateStatus", mock.Anything, int64(5), model.ContactStatusInProgress, (*time.Time)(nil)).
		Return(nil)

	var logged model.AuditLog
	f.audit.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { logged = args.Get(1).(model.AuditLog) }).
		Return(nil)

	err := f.uc.UpdateContactStatus(context.Background(), 1, 5, model.ContactStatusInProgress)
	assert.NoError(t, err)

	assert.Equal(t, model.AuditActionUpdateContactStatus, logged.Action)
	assert.JSONEq(t, `{"status":"new"}`, logged.BeforeJSON)
	assert.JSONEq(t, `{"status":"in_progress"}`, logged.AfterJSON)

	f.contact.AssertExpectations(t)
}

func TestAdminContentUsecase_UpdateContactStatus_ResolveSetsResolvedAt(t *testing.T) {
	f := newAdminContentFixture()

	f.contact.On("FindByID", mock.Anything, int64(5)).
		Return(model.ContactQuery{ID: 5, Status: model.ContactStatusInProgress}, nil)

	var resolvedAt *time.Time
	f.contact.On("UpdateStatus", mock.Anything, int64(5), model.ContactStatusResolved, mock.Anything).
		Run(func(args mock.Arguments) { resolvedAt, _ = args.Get(3).(*time.Time) }).
		Return(nil)
	f.audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := f.uc.UpdateContactStatus(context.Background(), 1, 5, model.ContactStatusResolved)
	assert.NoError(t, err)
	assert.NotNil(t, resolvedAt)
}

func TestAdminContentUsecase_UpdateContactStatus_BackwardTransitionRejected(t *testing.T) {
	f := newAdminContentFixture()

	f.contact.On("FindByID", mock.Anything, int64(5)).
		Return(model.ContactQuery{ID: 5, Status: model.ContactStatusResolved}, nil)

	//resolvedからは戻せない
	err := f.uc.UpdateContactStatus(context.Background(), 1, 5, model.ContactStatusInProgress)
	assertHTTPStatus(t, err, 409)

	f.contact.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminContentUsecase_UpdateContactStatus_InvalidStatus(t *testing.T) {
	f := newAdminContentFixture()

	err := f.uc.UpdateContactStatus(context.Background(), 1, 5, model.ContactStatus("closed"))
	assertHTTPStatus(t, err, 400)
}

func TestAdminContentUsecase_CreateOffer_DiscountOutOfRange(t *testing.T) {
	f := newAdminContentFixture()

	_, err := f.uc.CreateOffer(context.Background(), usecase.SpecialOfferInput{
		Title:              "Monsoon Sale",
		DiscountPercentage: 120,
		TargetAudience:     model.OfferAudienceAll,
		IsActive:           true,
	})
	assertHTTPStatus(t, err, 400)

	f.offers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminContentUsecase_CreateSlider_RequiresTitleAndImage(t *testing.T) {
	f := newAdminContentFixture()

	_, err := f.uc.CreateSlider(context.Background(), usecase.SliderInput{
		Title: "  ", ImageURL: "https://cdn.example.com/s.jpg", CategoryID: 3,
	})
	assertHTTPStatus(t, err, 400)
}

func TestAdminContentUsecase_ListContacts_FiltersByStatus(t *testing.T) {
	f := newAdminContentFixture()

	f.contact.On("List", mock.Anything, "new", 1, 50).
		Return([]model.ContactQuery{{ID: 5, Status: model.ContactStatusNew}}, int64(1), nil)

	out, err := f.uc.ListContacts(context.Background(), usecase.ContactListInput{Status: "new"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
}
