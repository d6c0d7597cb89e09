package validator

import (
	"errors"
	"strings"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// 配送先フォームの必須項目が欠けている
	ErrMissingShippingField = errors.New("missing shipping field")
)

// 配送先フォームの入力
type ShippingForm struct {
	FullName string
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
}

// 配送先の必須チェック。全項目が非空であること。
// エラーでもカートには触らない（再入力できるように呼び出し側で何も変えない）。
func ValidateShipping(f ShippingForm) error {
	fields := []string{f.FullName, f.Phone, f.Address, f.City, f.State, f.Pincode}
	for _, v := range fields {
		if strings.TrimSpace(v) == "" {
			return ErrMissingShippingField
		}
	}
	return nil
}

// お問い合わせフォームの必須チェック（phoneは任意）
func ValidateContact(name, email, subject, message string) error {
	if strings.TrimSpace(name) == "" ||
		strings.TrimSpace(email) == "" ||
		strings.TrimSpace(subject) == "" ||
		strings.TrimSpace(message) == "" {
		return ErrInvalidInput
	}
	if !isEmailLike(email) {
		return ErrInvalidInput
	}
	return nil
}

// レビューの入力チェック
func ValidateFeedback(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(comment) == "" {
		return ErrInvalidInput
	}
	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
