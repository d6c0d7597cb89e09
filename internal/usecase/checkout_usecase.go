package usecase

import (
	"context"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"vastram/internal/domain/model"
	repo "vastram/internal/repository"
	"vastram/internal/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutUsecase はカートを注文に変換する。
// システム内で複数エンティティを同時に書き換えるのはここだけなので、
// 全手順を1トランザクションで行い、途中で失敗したら全て巻き戻す。
type CheckoutUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

type CheckoutInput struct {
	FullName string
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
}

// 注文番号の衝突時に作り直す回数の上限
const orderTokenRetries = 3

// 注文番号：TSH + UUID由来の16進12桁（大文字）
// 一意性はDBの一意制約で担保し、衝突したら作り直す
func newOrderToken() string {
	u := uuid.New()
	return "TSH" + strings.ToUpper(hex.EncodeToString(u[:])[:12])
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, userID int64, in CheckoutInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//配送先の必須チェック。エラーならカートはそのまま（再入力できる）
	form := validator.ShippingForm{
		FullName: in.FullName,
		Phone:    in.Phone,
		Address:  in.Address,
		City:     in.City,
		State:    in.State,
		Pincode:  in.Pincode,
	}
	if err := validator.ValidateShipping(form); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "missing shipping fields")
	}

	var out OrderOutput

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カート明細取得（この時点のスナップショットが合計の根拠になる）
		lines, err := r.CartItems().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		orderItems := make([]model.OrderItem, 0, len(lines))
		total := decimal.Zero

		for _, line := range lines {
			//商品取得
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !p.IsActive {
				return NewHTTPError(http.StatusBadRequest, "invalid")
			}

			//在庫減算（足りないなら false）。相対更新なので同時注文でも取り合いにならない
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "out of stock")
			}

			//販売数も加算
			if err := r.Inventory().IncrementSalesCount(ctx, line.ProductID, line.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//価格スナップショット（この瞬間のspecial_price。以後の価格変更は無関係）
			now := time.Now()
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           line.ProductID,
				ProductNameSnapshot: p.Name,
				Price:               p.SpecialPrice,
				Quantity:            line.Quantity,
				CreatedAt:           now,
			})

			total = total.Add(p.SpecialPrice.Mul(decimal.NewFromInt(line.Quantity)))
		}

		//配送先スナップショット作成
		addr, err := r.ShippingAddresses().Create(ctx, model.ShippingAddress{
			UserID:   userID,
			FullName: strings.TrimSpace(in.FullName),
			Phone:    strings.TrimSpace(in.Phone),
			Address:  strings.TrimSpace(in.Address),
			City:     strings.TrimSpace(in.City),
			State:    strings.TrimSpace(in.State),
			Pincode:  strings.TrimSpace(in.Pincode),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文作成。番号が衝突したら作り直す（上限あり）
		now := time.Now()
		var orderID int64
		var token string

		for attempt := 0; ; attempt++ {
			token = newOrderToken()
			orderID, err = r.Orders().Create(ctx, model.Order{
				OrderToken:        token,
				UserID:            userID,
				ShippingAddressID: addr.ID,
				Status:            model.OrderStatusPending,
				TotalAmount:       total,
				CreatedAt:         now,
				UpdatedAt:         now,
			})
			if err == nil {
				break
			}
			if err == repo.ErrDuplicate && attempt < orderTokenRetries-1 {
				continue
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートを空にする（同じカートから二度注文させない）
		if err := r.CartItems().DeleteAllByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created := model.Order{
			ID:                orderID,
			OrderToken:        token,
			UserID:            userID,
			ShippingAddressID: addr.ID,
			Status:            model.OrderStatusPending,
			TotalAmount:       total,
			CreatedAt:         now,
		}
		out = toOrderOutput(created, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}
