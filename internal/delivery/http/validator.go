package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/auramap/auramap-backend/internal/domain"
)

// registerValidators adds domain validations to gin's binding engine.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("profilekey", func(fl validator.FieldLevel) bool {
		return domain.ProfileKey(fl.Field().String()).Valid()
	})
}
