// Package validator adapts go-playground/validator to echo.
package validator

import (
	"alzassist/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator with the domain validations registered.
func New() *CustomValidator {
	validate := validator.New()
	if err := RegisterValidators(validate); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: validate}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// RegisterValidators adds the role and connection_decision tags.
func RegisterValidators(validate *validator.Validate) error {
	err := validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})
	if err != nil {
		return errors.Wrap(err, "register role validation")
	}

	err = validate.RegisterValidation("connection_decision", func(fl validator.FieldLevel) bool {
		return entity.ConnectionStatus(fl.Field().String()).IsDecision()
	})
	if err != nil {
		return errors.Wrap(err, "register connection_decision validation")
	}

	return nil
}

// Message flattens validation errors into a single detail string.
func Message(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	msg := ""
	for i, fe := range validationErrs {
		if i > 0 {
			msg += "; "
		}
		msg += fe.Field() + " failed on " + fe.Tag()
	}

	return msg
}
