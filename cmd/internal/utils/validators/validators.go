package validators

import (
	"imoveis/cmd/internal/contract"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagPresent must be registered with Present before MissingFields is used.
const TagPresent = "present"

// Present rejects blank strings. Absent and null values never reach it:
// the validator reports them as failures for any tag.
func Present(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

var propertyRules = func() map[string]any {
	rules := make(map[string]any, len(contract.RequiredPropertyFields))
	for _, field := range contract.RequiredPropertyFields {
		rules[field] = TagPresent
	}
	return rules
}()

// MissingFields lists the required property fields that payload lacks,
// in the order of contract.RequiredPropertyFields. Only presence is
// checked; value types are left to the caller.
func MissingFields(validate *validator.Validate, payload map[string]any) []string {
	problems := validate.ValidateMap(payload, propertyRules)

	missing := []string{}
	for _, field := range contract.RequiredPropertyFields {
		if _, failed := problems[field]; failed {
			missing = append(missing, field)
		}
	}
	return missing
}
