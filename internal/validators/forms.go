// Package validators checks user input on the client before it is sent to
// the backend, so obvious mistakes get an immediate message instead of a
// network round trip.
package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LoginForm is the login screen's input.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignupForm is the registration screen's input.
type SignupForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,e164"`
	Password string `validate:"required,min=8"`
}

// ComplaintForm is the resident's new-complaint input.
type ComplaintForm struct {
	Title       string `validate:"required,min=3,max=120"`
	Description string `validate:"required,min=10"`
}

// VisitorEntryForm is the guard's gate-entry input.
type VisitorEntryForm struct {
	Name   string `validate:"required,min=2"`
	Phone  string `validate:"required"`
	FlatID string `validate:"required"`
}

// FlatForm is the admin's create/update flat input.
type FlatForm struct {
	Number string `validate:"required"`
	Wing   string `validate:"required,alpha,max=3"`
	Floor  int    `validate:"gte=0,lte=200"`
}

// NoticeForm is the admin's new-notice input.
type NoticeForm struct {
	Title string `validate:"required,min=3,max=120"`
	Body  string `validate:"required"`
}

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and flattens any failures
// into a single human-readable error suitable for a form footer.
func ValidateStruct(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "e164":
		return field + " must be a phone number like +919812345678"
	case "alpha":
		return field + " must contain letters only"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
