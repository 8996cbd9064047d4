package validation

import (
	"github.com/go-playground/validator/v10"

	"blogql-be/internal/models"
)

const minPasswordLength = 5

var validate = validator.New()

// ValidateSignup checks signup input and returns the first violated rule as a
// user error, or nil when everything passes. Checks run in a fixed order and
// short-circuit: email format, then password length, then name/bio presence.
// No side effects.
func ValidateSignup(email, password, name, bio string) *models.UserError {
	if err := validate.Var(email, "required,email"); err != nil {
		return &models.UserError{Message: "Invalid email"}
	}

	if len(password) < minPasswordLength {
		return &models.UserError{Message: "Invalid password"}
	}

	if name == "" || bio == "" {
		return &models.UserError{Message: "Invalid name or bio"}
	}

	return nil
}
