package auth

import (
	"github.com/go-playground/validator/v10"

	"github.com/solilop/solilop-backend/internal/domain"
)

const (
	minPasswordLen = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLen = 72
	maxEmailLen    = 254
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterInput holds parameters for creating an account.
type RegisterInput struct {
	Email        string
	Password     string
	LopCharacter domain.LopCharacter
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "at least 8 characters"})
	case len(i.Password) > maxPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "at most 72 bytes"})
	}

	if i.LopCharacter == "" {
		errs = append(errs, domain.FieldError{Field: "lop_character", Message: "required"})
	} else if !i.LopCharacter.IsValid() {
		errs = append(errs, domain.FieldError{Field: "lop_character", Message: "invalid lop character"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds credentials for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks presence only; wrong credentials are reported as unauthorized.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLen:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case validate.Var(email, "email") != nil:
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}
