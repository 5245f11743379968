package validator

import (
	"log"

	"arenaapp_backend/internal/listing"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the catalog-specific validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-listing-type': one of the seven catalog entity types
	mustRegister("is-listing-type", validateListingType)

	// 'is-lang': a supported interface language
	mustRegister("is-lang", validateLang)
}

func validateListingType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty is for 'required' to decide
	}
	return listing.ValidType(listing.Type(value))
}

func validateLang(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case listing.LangES, listing.LangEN, listing.LangPT:
		return true
	default:
		return false
	}
}
