package usecase

import (
	"context"
	"net/http"
	"strings"

	repo "vastram/internal/repository"
)

// マイページの業務ロジック
type ProfileUsecase struct {
	userRepo     repo.UserRepository
	orderRepo    repo.OrderRepository
	wishlistRepo repo.WishlistRepository
}

// DI
func NewProfileUsecase(
	userRepo repo.UserRepository,
	orderRepo repo.OrderRepository,
	wishlistRepo repo.WishlistRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		wishlistRepo: wishlistRepo,
	}
}

type ProfileOutput struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	OrderCount    int64  `json:"order_count"`
	WishlistCount int64  `json:"wishlist_count"`
}

func (u *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrUserNotFound {
		return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orderCount, err := u.orderRepo.CountByUserID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	wishlistCount, err := u.wishlistRepo.CountByUserID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProfileOutput{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		OrderCount:    orderCount,
		WishlistCount: wishlistCount,
	}, nil
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return ProfileOutput{}, NewHTTPError(http.StatusBadRequest, "email required")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err == repo.ErrUserNotFound {
		return ProfileOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//メール変更時だけ重複チェック
	if email != user.Email {
		other, err := u.userRepo.FindByEmail(ctx, email)
		if err != nil && err != repo.ErrUserNotFound {
			return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err == nil && other.ID != userID {
			return ProfileOutput{}, NewHTTPError(http.StatusConflict, "email already in use")
		}
	}

	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.Email = email

	if err := u.userRepo.Update(ctx, user); err != nil {
		if err == repo.ErrDuplicate {
			return ProfileOutput{}, NewHTTPError(http.StatusConflict, "email already in use")
		}
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out, err := u.GetProfile(ctx, userID)
	if err != nil {
		return ProfileOutput{}, err
	}
	return out, nil
}
