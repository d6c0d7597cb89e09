package usecase

import (
	"context"
	"net/http"
	"strings"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
	"vastram/internal/validator"
)

// 静的コンテンツとお問い合わせの業務ロジック
type ContentUsecase struct {
	aboutRepo   repo.AboutUsRepository
	eventRepo   repo.EventRepository
	contactRepo repo.ContactQueryRepository
}

// DI
func NewContentUsecase(
	aboutRepo repo.AboutUsRepository,
	eventRepo repo.EventRepository,
	contactRepo repo.ContactQueryRepository,
) *ContentUsecase {
	return &ContentUsecase{
		aboutRepo:   aboutRepo,
		eventRepo:   eventRepo,
		contactRepo: contactRepo,
	}
}

func (u *ContentUsecase) GetAboutUs(ctx context.Context) (model.AboutUs, error) {
	a, err := u.aboutRepo.FindActive(ctx)
	if err == repo.ErrNotFound {
		return model.AboutUs{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.AboutUs{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return a, nil
}

func (u *ContentUsecase) ListEvents(ctx context.Context) ([]model.Event, error) {
	events, err := u.eventRepo.ListActive(ctx)
	if err != nil {
		return []model.Event{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return events, nil
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// お問い合わせ送信（phoneは任意）
func (u *ContentUsecase) SubmitContact(ctx context.Context, in SubmitContactInput) (model.ContactQuery, error) {
	if err := validator.ValidateContact(in.Name, in.Email, in.Subject, in.Message); err != nil {
		return model.ContactQuery{}, NewHTTPError(http.StatusBadRequest, "missing required fields")
	}

	q, err := u.contactRepo.Create(ctx, model.ContactQuery{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
		Status:  model.ContactStatusNew,
	})
	if err != nil {
		return model.ContactQuery{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return q, nil
}
