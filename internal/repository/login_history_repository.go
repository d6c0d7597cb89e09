package repository

import (
	"context"

	"vastram/internal/domain/model"
)

type LoginHistoryRepository interface {
	Create(ctx context.Context, h model.LoginHistory) error
	ListByUserID(ctx context.Context, userID int64, limit int) ([]model.LoginHistory, error)
}
