package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return theme.ValidColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator, with the color tag registered.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateThemeFile checks every color value of every theme.
func ValidateThemeFile(file *ThemeFile) error {
	if file == nil {
		return themeerrors.NewValidationError("themes", "themes file is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(file))
}

// ValidateSettings checks the assembled settings.
func ValidateSettings(s *Settings) error {
	if s == nil {
		return themeerrors.NewValidationError("settings", "settings are nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(s))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "color" {
			msg = fmt.Sprintf("%q is not a valid color", ve.Value())
		}
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace,
// e.g. "themes[0].config.colors.accent".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
