package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"collabhub_backend/internal/models"
)

// registerCustomRules installs the status-set rules backed by
// models/statuses.go.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	_, ok := models.ParseUserRole(fl.Field().String())
	return ok
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	_, ok := models.ParseApplicationStatus(fl.Field().String())
	return ok
}
