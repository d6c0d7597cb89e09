package auth

import (
	"context"
	"errors"
	"time"

	"vastram/internal/domain/model"
	"vastram/internal/repository"
)

// RefreshTokenが無効（期限切れ・使用済み・失効済み）
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// AccessTokenの更新と、RefreshTokenの使い回し防止（ローテーション）
type RefreshUsecase struct {
	userRepo repository.UserRepository
	rtRepo   repository.RefreshTokenRepository
	issuer   AccessTokenIssuer
	idGen    IDGenerator
	clock    Clock
	ttl      time.Duration
}

func NewRefreshUsecase(
	userRepo repository.UserRepository,
	rtRepo repository.RefreshTokenRepository,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
	ttl time.Duration,
) *RefreshUsecase {
	return &RefreshUsecase{
		userRepo: userRepo,
		rtRepo:   rtRepo,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
		ttl:      ttl,
	}
}

type RefreshOutput struct {
	Token JwtAccessToken `json:"token"`
}

type RefreshSideEffect struct {
	PlainRefreshToken string
}

// RefreshTokenを検証して新しいAccessToken/RefreshTokenを発行する。
// 古い RefreshToken はこの場で使用済みにする（1回きり）。
func (u *RefreshUsecase) Execute(ctx context.Context, plainRefresh string) (RefreshOutput, RefreshSideEffect, error) {
	var out RefreshOutput
	var side RefreshSideEffect

	if plainRefresh == "" {
		return out, side, ErrInvalidRefreshToken
	}

	stored, err := u.rtRepo.FindByTokenHash(ctx, hashRefreshToken(plainRefresh))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return out, side, ErrInvalidRefreshToken
		}
		return out, side, err
	}

	now := u.clock.Now()
	if stored.UsedAt != nil || stored.RevokedAt != nil || now.After(stored.ExpiresAt) {
		return out, side, ErrInvalidRefreshToken
	}

	user, err := u.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return out, side, ErrInvalidRefreshToken
		}
		return out, side, err
	}
	if !user.IsActive {
		return out, side, ErrUserInactive
	}

	//古いトークンを使用済みへ
	if err := u.rtRepo.MarkUsed(ctx, stored.ID, now); err != nil {
		return out, side, err
	}

	accessToken, accessExp, err := u.issuer.Issue(user.ID, user.Role, user.TokenVersion, now)
	if err != nil {
		return out, side, err
	}

	//新しいRefreshTokenを発行（ローテーション）
	plainNext, err := generateSecureToken(32)
	if err != nil {
		return out, side, err
	}
	next := &model.RefreshToken{
		ID:        u.idGen.NewID(),
		UserID:    user.ID,
		TokenHash: hashRefreshToken(plainNext),
		UserAgent: stored.UserAgent,
		ExpiresAt: now.Add(u.ttl),
	}
	if err := u.rtRepo.Create(ctx, next); err != nil {
		return out, side, err
	}

	out.Token = JwtAccessToken{
		AccessToken:  accessToken,
		ExpiresIn:    int(accessExp.Sub(now).Seconds()),
		TokenVersion: user.TokenVersion,
	}
	side.PlainRefreshToken = plainNext
	return out, side, nil
}

// 全端末ログアウト。TokenVersionを進めて既発行のJWTも無効にする。
type LogoutAllUsecase struct {
	userRepo repository.UserRepository
	rtRepo   repository.RefreshTokenRepository
}

func NewLogoutAllUsecase(
	userRepo repository.UserRepository,
	rtRepo repository.RefreshTokenRepository,
) *LogoutAllUsecase {
	return &LogoutAllUsecase{userRepo: userRepo, rtRepo: rtRepo}
}

func (u *LogoutAllUsecase) Execute(ctx context.Context, userID int64) error {
	if err := u.rtRepo.DeleteAllByUserID(ctx, userID); err != nil {
		return err
	}
	return u.userRepo.IncrementTokenVersion(ctx, userID)
}
