package utils

import (
	"main/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("category", ValidateCategoryRule)
	v.RegisterValidation("frequency", ValidateFrequencyRule)
}

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

// ValidateCategoryRule accepts the known task categories; empty falls
// back to the private default downstream.
func ValidateCategoryRule(fl validator.FieldLevel) bool {
	category := model.Category(fl.Field().String())
	return category == "" || model.ValidCategory(category)
}

// ValidateFrequencyRule accepts the known recurrence frequencies.
func ValidateFrequencyRule(fl validator.FieldLevel) bool {
	return model.ValidFrequency(model.Frequency(fl.Field().String()))
}
