package validation

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps validator.Validate so it can be plugged into echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Engine exposes the underlying validator for struct-level registrations.
func (cv *CustomValidator) Engine() *validator.Validate {
	return cv.validator
}

// New builds a validator that understands null.* types and the project rules.
// The server must not start with a broken rule set, so a registration failure panics.
func New() *CustomValidator {
	v := validator.New()

	registerNullTypes(v)

	if err := registerRules(v); err != nil {
		panic("validation: failed to register rules: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
