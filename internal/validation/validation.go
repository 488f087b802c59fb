// Package validation holds the field-level predicates shared by the venue
// and artist forms, and registers them as go-playground validator tags.
package validation

import (
	"net/url"
	"regexp"

	"fyyur/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// 1234567890, 123.456.7890, 123-456-7890, 123 456 7890, (123)4567890
var phonePattern = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)

const (
	TagPhone    = "phone"
	TagGenres   = "genres"
	TagState    = "usstate"
	TagURL      = "absurl"
	TagNotBlank = "notblank" // 只有空白視同未填
)

func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidGenres reports whether every selected value is a known genre.
func ValidGenres(selected []string) bool {
	for _, g := range selected {
		if !model.IsGenre(g) {
			return false
		}
	}
	return true
}

func ValidState(v string) bool {
	return model.IsState(v)
}

// IsValidURL accepts absolute URLs only (scheme and host present).
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Register installs the custom tags on v.
func Register(v *validator.Validate) error {
	rules := map[string]validator.Func{
		TagPhone: func(fl validator.FieldLevel) bool {
			return IsValidPhone(fl.Field().String())
		},
		TagGenres: func(fl validator.FieldLevel) bool {
			genres, ok := fl.Field().Interface().([]string)
			return ok && ValidGenres(genres)
		},
		TagState: func(fl validator.FieldLevel) bool {
			return ValidState(fl.Field().String())
		},
		TagURL: func(fl validator.FieldLevel) bool {
			return IsValidURL(fl.Field().String())
		},
		TagNotBlank: validators.NotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
