package validator_test

import (
	"testing"

	"vastram/internal/validator"

	"github.com/stretchr/testify/assert"
)

func validForm() validator.ShippingForm {
	return validator.ShippingForm{
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Address:  "12 MG Road",
		City:     "Bengaluru",
		State:    "Karnataka",
		Pincode:  "560001",
	}
}

func TestValidateShipping(t *testing.T) {
	assert.NoError(t, validator.ValidateShipping(validForm()))
}

func TestValidateShipping_MissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *validator.ShippingForm)
	}{
		{"empty full name", func(f *validator.ShippingForm) { f.FullName = "" }},
		{"blank phone", func(f *validator.ShippingForm) { f.Phone = "   " }},
		{"empty address", func(f *validator.ShippingForm) { f.Address = "" }},
		{"empty city", func(f *validator.ShippingForm) { f.City = "" }},
		{"empty state", func(f *validator.ShippingForm) { f.State = "" }},
		{"blank pincode", func(f *validator.ShippingForm) { f.Pincode = "\t" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			assert.ErrorIs(t, validator.ValidateShipping(f), validator.ErrMissingShippingField)
		})
	}
}

func TestValidateContact(t *testing.T) {
	//phoneは任意なのでValidateContactの引数に入っていない
	assert.NoError(t, validator.ValidateContact("Asha", "asha@example.com", "sizes", "Do you stock XL?"))

	assert.Error(t, validator.ValidateContact("", "asha@example.com", "sizes", "msg"))
	assert.Error(t, validator.ValidateContact("Asha", "", "sizes", "msg"))
	assert.Error(t, validator.ValidateContact("Asha", "asha@example.com", "", "msg"))
	assert.Error(t, validator.ValidateContact("Asha", "asha@example.com", "sizes", "   "))
}

func TestValidateContact_EmailFormat(t *testing.T) {
	bad := []string{"not-an-email", "@example.com", "asha@", "asha@example", "a@b@c.com"}
	for _, email := range bad {
		assert.Error(t, validator.ValidateContact("Asha", email, "sizes", "msg"), "email: %s", email)
	}

	assert.NoError(t, validator.ValidateContact("Asha", "asha@shop.example.in", "sizes", "msg"))
}

func TestValidateFeedback(t *testing.T) {
	assert.NoError(t, validator.ValidateFeedback(1, "meh"))
	assert.NoError(t, validator.ValidateFeedback(5, "great"))

	assert.Error(t, validator.ValidateFeedback(0, "great"))
	assert.Error(t, validator.ValidateFeedback(6, "great"))
	assert.Error(t, validator.ValidateFeedback(3, "  "))
}
