package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/knaito/naraigoto-api/internal/models"
)

// NewValidator returns a validator with the planner's custom tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for blank tag names.
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return models.IsWeekday(fl.Field().String())
	})
	_ = v.RegisterValidation("lessonstatus", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, valid := range models.Statuses {
			if s == valid {
				return true
			}
		}
		return false
	})
	return v
}
