package config

import (
	"EportsTech/internal/entity"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		return entity.Language(fl.Field().String()).Valid()
	})

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.ServiceCategory(fl.Field().String()).Valid()
	})

	return v
}
