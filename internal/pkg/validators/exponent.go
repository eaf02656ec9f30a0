package validators

import (
	"github.com/go-playground/validator/v10"
)

// PublicExponentValidation accepts 0 (meaning "choose automatically") or an odd
// exponent of at least 3. Even exponents can never be coprime to phi(n).
func PublicExponentValidation(fl validator.FieldLevel) bool {
	e := fl.Field().Uint()
	return e == 0 || (e >= 3 && e%2 == 1)
}

// NewValidator returns a validator with the project's custom tags registered
func NewValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("exponent", PublicExponentValidation); err != nil {
		return nil, err
	}
	return validate, nil
}
