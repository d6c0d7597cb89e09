package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
)

// 管理者の静的コンテンツ操作
type AdminContentUsecase struct {
	sliderRepo  repo.SliderRepository
	offerRepo   repo.SpecialOfferRepository
	aboutRepo   repo.AboutUsRepository
	eventRepo   repo.EventRepository
	contactRepo repo.ContactQueryRepository
	auditRepo   repo.AuditLogRepository
}

// DI
func NewAdminContentUsecase(
	sliderRepo repo.SliderRepository,
	offerRepo repo.SpecialOfferRepository,
	aboutRepo repo.AboutUsRepository,
	eventRepo repo.EventRepository,
	contactRepo repo.ContactQueryRepository,
	auditRepo repo.AuditLogRepository,
) *AdminContentUsecase {
	return &AdminContentUsecase{
		sliderRepo:  sliderRepo,
		offerRepo:   offerRepo,
		aboutRepo:   aboutRepo,
		eventRepo:   eventRepo,
		contactRepo: contactRepo,
		auditRepo:   auditRepo,
	}
}

type SliderInput struct {
	Title       string
	Description string
	ImageURL    string
	CategoryID  int64
	IsActive    bool
}

func (u *AdminContentUsecase) CreateSlider(ctx context.Context, in SliderInput) (model.Slider, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ImageURL) == "" || in.CategoryID <= 0 {
		return model.Slider{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	s, err := u.sliderRepo.Create(ctx, model.Slider{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return model.Slider{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

func (u *AdminContentUsecase) UpdateSlider(ctx context.Context, sliderID int64, in SliderInput) error {
	if sliderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ImageURL) == "" || in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	err := u.sliderRepo.Update(ctx, model.Slider{
		ID:          sliderID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsActive:    in.IsActive,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminContentUsecase) DeleteSlider(ctx context.Context, sliderID int64) error {
	if sliderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.sliderRepo.Delete(ctx, sliderID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type SpecialOfferInput struct {
	Title              string
	Description        string
	DiscountPercentage int
	TargetAudience     model.OfferAudience
	IsActive           bool
}

func (in SpecialOfferInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return NewHTTPError(http.StatusBadRequest, "title required")
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return NewHTTPError(http.StatusBadRequest, "invalid discount")
	}
	switch in.TargetAudience {
	case model.OfferAudienceAll, model.OfferAudienceNew, model.OfferAudienceExisting:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid audience")
	}
	return nil
}

func (u *AdminContentUsecase) CreateOffer(ctx context.Context, in SpecialOfferInput) (model.SpecialOffer, error) {
	if err := in.validate(); err != nil {
		return model.SpecialOffer{}, err
	}
	o, err := u.offerRepo.Create(ctx, model.SpecialOffer{
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		TargetAudience:     in.TargetAudience,
		IsActive:           in.IsActive,
	})
	if err != nil {
		return model.SpecialOffer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

func (u *AdminContentUsecase) UpdateOffer(ctx context.Context, offerID int64, in SpecialOfferInput) error {
	if offerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return err
	}
	err := u.offerRepo.Update(ctx, model.SpecialOffer{
		ID:                 offerID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		TargetAudience:     in.TargetAudience,
		IsActive:           in.IsActive,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminContentUsecase) DeleteOffer(ctx context.Context, offerID int64) error {
	if offerID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.offerRepo.Delete(ctx, offerID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type AboutUsInput struct {
	Title    string
	Content  string
	ImageURL string
}

// About Usは1件運用なのでUpsert
func (u *AdminContentUsecase) SaveAboutUs(ctx context.Context, in AboutUsInput) (model.AboutUs, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return model.AboutUs{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	a, err := u.aboutRepo.Upsert(ctx, model.AboutUs{
		Title:    strings.TrimSpace(in.Title),
		Content:  in.Content,
		ImageURL: in.ImageURL,
		IsActive: true,
	})
	if err != nil {
		return model.AboutUs{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return a, nil
}

type EventInput struct {
	Title       string
	Description string
	ImageURL    string
	EventDate   time.Time
	IsActive    bool
}

func (u *AdminContentUsecase) CreateEvent(ctx context.Context, in EventInput) (model.Event, error) {
	if strings.TrimSpace(in.Title) == "" || in.EventDate.IsZero() {
		return model.Event{}, NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	e, err := u.eventRepo.Create(ctx, model.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		EventDate:   in.EventDate,
		IsActive:    in.IsActive,
	})
	if err != nil {
		return model.Event{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return e, nil
}

func (u *AdminContentUsecase) UpdateEvent(ctx context.Context, eventID int64, in EventInput) error {
	if eventID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" || in.EventDate.IsZero() {
		return NewHTTPError(http.StatusBadRequest, "invalid input")
	}
	err := u.eventRepo.Update(ctx, model.Event{
		ID:          eventID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		EventDate:   in.EventDate,
		IsActive:    in.IsActive,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminContentUsecase) DeleteEvent(ctx context.Context, eventID int64) error {
	if eventID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.eventRepo.Delete(ctx, eventID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type ContactListInput struct {
	Status string
	Page   int
	Limit  int
}

type ContactListOutput struct {
	Queries []model.ContactQuery `json:"queries"`
	Total   int64                `json:"total"`
}

func (u *AdminContentUsecase) ListContacts(ctx context.Context, in ContactListInput) (ContactListOutput, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 50
	}
	if in.Status != "" && !isValidContactStatus(model.ContactStatus(in.Status)) {
		return ContactListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	list, total, err := u.contactRepo.List(ctx, in.Status, in.Page, in.Limit)
	if err != nil {
		return ContactListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ContactListOutput{Queries: list, Total: total}, nil
}

// お問い合わせのステータス遷移は new → in_progress → resolved の一方向のみ
func (u *AdminContentUsecase) UpdateContactStatus(ctx context.Context, adminUserID int64, contactID int64, newStatus model.ContactStatus) error {
	if contactID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if !isValidContactStatus(newStatus) {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	q, err := u.contactRepo.FindByID(ctx, contactID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !contactTransitionAllowed(q.Status, newStatus) {
		return NewHTTPError(http.StatusConflict, "invalid status transition")
	}

	var resolvedAt *time.Time
	if newStatus == model.ContactStatusResolved {
		now := time.Now()
		resolvedAt = &now
	}

	if err := u.contactRepo.UpdateStatus(ctx, contactID, newStatus, resolvedAt); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	b, _ := json.Marshal(map[string]string{"status": string(q.Status)})
	a, _ := json.Marshal(map[string]string{"status": string(newStatus)})
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateContactStatus,
		ResourceType: model.AuditResourceContact,
		ResourceID:   contactID,
		BeforeJSON:   string(b),
		AfterJSON:    string(a),
	})
	return nil
}

func isValidContactStatus(s model.ContactStatus) bool {
	switch s {
	case model.ContactStatusNew, model.ContactStatusInProgress, model.ContactStatusResolved:
		return true
	}
	return false
}

func contactTransitionAllowed(from, to model.ContactStatus) bool {
	switch from {
	case model.ContactStatusNew:
		return to == model.ContactStatusInProgress || to == model.ContactStatusResolved
	case model.ContactStatusInProgress:
		return to == model.ContactStatusResolved
	}
	return false
}
