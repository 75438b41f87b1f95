package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"resumebuilder_backend/internal/models"
)

// registerCustomRules installs the project's custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-subscription-plan", validateSubscriptionPlan)
}

func validateSubscriptionPlan(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are handled by 'required'
	}
	switch value {
	case models.PlanBasic, models.PlanPremium:
		return true
	default:
		return false
	}
}
