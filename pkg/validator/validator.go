package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/divyamsavsaviya/CMPE280-AI-Voice-Agent/internal/domain/entities"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	// speaker accepts any role tag ParseSpeaker understands
	_ = v.RegisterValidation("speaker", func(fl validator.FieldLevel) bool {
		_, err := entities.ParseSpeaker(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
