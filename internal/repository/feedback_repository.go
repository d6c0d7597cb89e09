package repository

import (
	"context"

	"vastram/internal/domain/model"
)

type FeedbackRepository interface {
	//注文1件につき1件。既にあればErrDuplicate
	Create(ctx context.Context, fb model.OrderFeedback) error
	FindByOrderID(ctx context.Context, orderID int64) (model.OrderFeedback, error)
}
