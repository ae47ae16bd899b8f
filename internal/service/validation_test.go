package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() RegisterInput {
	return RegisterInput{
		Name:       "A",
		Email:      "a@x.com",
		Password:   "secret",
		FullName:   "Ana",
		NationalID: "123",
		Address:    "Main St",
		BirthDate:  "2000-01-01",
		RoleID:     1,
	}
}

func TestRegisterInputValidate(t *testing.T) {
	assert.True(t, validInput().Validate().Empty())

	t.Run("each missing field is reported under its own key", func(t *testing.T) {
		cases := map[string]func(*RegisterInput){
			"name":        func(in *RegisterInput) { in.Name = "" },
			"email":       func(in *RegisterInput) { in.Email = "" },
			"password":    func(in *RegisterInput) { in.Password = "" },
			"full_name":   func(in *RegisterInput) { in.FullName = "" },
			"national_id": func(in *RegisterInput) { in.NationalID = "" },
			"address":     func(in *RegisterInput) { in.Address = "" },
			"birth_date":  func(in *RegisterInput) { in.BirthDate = "" },
			"role_id":     func(in *RegisterInput) { in.RoleID = 0 },
		}
		for field, clear := range cases {
			in := validInput()
			clear(&in)
			errs := in.Validate()
			assert.Contains(t, errs, field, "field %s", field)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		in := validInput()
		in.Email = "not-an-email"
		assert.Contains(t, in.Validate(), "email")
	})

	t.Run("malformed birth date", func(t *testing.T) {
		in := validInput()
		in.BirthDate = "01/01/2000"
		assert.Contains(t, in.Validate(), "birth_date")
	})
}

func TestValidateLogin(t *testing.T) {
	assert.True(t, ValidateLogin("a@x.com", "secret").Empty())
	assert.Contains(t, ValidateLogin("", "secret"), "email")
	assert.Contains(t, ValidateLogin("a@x.com", ""), "password")
	assert.Contains(t, ValidateLogin("nope", "secret"), "email")
}

func TestValidatePasswordChange(t *testing.T) {
	assert.True(t, ValidatePasswordChange("old", "longenough").Empty())
	assert.Contains(t, ValidatePasswordChange("", "longenough"), "old_password")
	assert.Contains(t, ValidatePasswordChange("old", ""), "new_password")
	assert.Contains(t, ValidatePasswordChange("old", "short"), "new_password")

	// exactly the minimum length passes
	assert.True(t, ValidatePasswordChange("old", "sixsix").Empty())
}
