package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/settings/settings.go
//   type Settings struct {
//       Keys     pan.Bindings `json:"keys" validate:"required"`
//       MaxSpeed float64      `json:"maxSpeed" validate:"gt=0"`
//   }
//
// and pan.Bindings fields carry `validate:"required,keyname"`.

import (
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// keyname: a key identifier as reported by the terminal ("w", "up", "ctrl+w", " ").
		_ = validatorInst.RegisterValidation("keyname", isKeyName)
	})
	return validatorInst
}

// isKeyName rejects empty names, invalid UTF-8 and control characters.
func isKeyName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
