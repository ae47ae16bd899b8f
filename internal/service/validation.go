package service

import (
	"net/mail"
	"time"
)

// MinPasswordLength applies to password changes.
const MinPasswordLength = 6

const birthDateLayout = "2006-01-02"

// FieldErrors collects violated rules keyed by field name.
type FieldErrors map[string][]string

func (f FieldErrors) add(field, rule string) {
	f[field] = append(f[field], rule)
}

// Empty reports whether no rule was violated.
func (f FieldErrors) Empty() bool {
	return len(f) == 0
}

// Details converts the errors to the response detail shape.
func (f FieldErrors) Details() map[string]any {
	details := make(map[string]any, len(f))
	for field, rules := range f {
		details[field] = rules
	}
	return details
}

// RegisterInput carries all registration fields.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	FullName   string
	NationalID string
	Address    string
	BirthDate  string
	RoleID     int64
}

// Validate checks shape rules only; uniqueness is checked against storage by
// the workflow.
func (in RegisterInput) Validate() FieldErrors {
	errs := FieldErrors{}
	requireField(errs, "name", in.Name)
	requireField(errs, "email", in.Email)
	requireField(errs, "password", in.Password)
	requireField(errs, "full_name", in.FullName)
	requireField(errs, "national_id", in.NationalID)
	requireField(errs, "address", in.Address)

	if in.Email != "" && !validEmail(in.Email) {
		errs.add("email", "email must be a valid email address")
	}
	if in.BirthDate == "" {
		errs.add("birth_date", "birth_date is required")
	} else if _, err := time.Parse(birthDateLayout, in.BirthDate); err != nil {
		errs.add("birth_date", "birth_date must be a valid date")
	}
	if in.RoleID == 0 {
		errs.add("role_id", "role_id is required")
	}
	return errs
}

// ParsedBirthDate returns the birth date; Validate must have passed.
func (in RegisterInput) ParsedBirthDate() time.Time {
	t, _ := time.Parse(birthDateLayout, in.BirthDate)
	return t
}

// ValidateLogin checks the login payload shape.
func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}
	requireField(errs, "email", email)
	requireField(errs, "password", password)
	if email != "" && !validEmail(email) {
		errs.add("email", "email must be a valid email address")
	}
	return errs
}

// ValidatePasswordChange checks the password-change payload shape.
func ValidatePasswordChange(oldPassword, newPassword string) FieldErrors {
	errs := FieldErrors{}
	requireField(errs, "old_password", oldPassword)
	if newPassword == "" {
		errs.add("new_password", "new_password is required")
	} else if len(newPassword) < MinPasswordLength {
		errs.add("new_password", "new_password must be at least 6 characters")
	}
	return errs
}

func requireField(errs FieldErrors, field, value string) {
	if value == "" {
		errs.add(field, field+" is required")
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
