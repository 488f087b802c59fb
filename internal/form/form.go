package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"fyyur/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FormErrorKey collects errors that cannot be attributed to a single field.
const FormErrorKey = "form"

// FieldErrors 欄位錯誤訊息，key 為表單欄位名稱
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Any() bool {
	return len(e) > 0
}

var (
	setupOnce sync.Once
	setupErr  error
	engine    *validator.Validate
)

// Setup registers the custom tags on gin's binding engine and makes
// validation errors report form field names. Safe to call repeatedly.
func Setup() error {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = errors.New("gin binding engine is not go-playground validator")
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		if err := validation.Register(v); err != nil {
			setupErr = fmt.Errorf("register validators: %w", err)
			return
		}
		engine = v
	})
	return setupErr
}

// bind runs the structural validation. Bound values stay on obj even when
// validation fails so the form can be re-rendered with the user's input.
func bind(c *gin.Context, obj any, errs FieldErrors) bool {
	if err := Setup(); err != nil {
		errs.Add(FormErrorKey, "Form validation is unavailable.")
		return false
	}
	err := c.ShouldBindWith(obj, binding.Form)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs.Add(fe.Field(), messageFor(fe))
		}
	} else {
		errs.Add(FormErrorKey, "Invalid submission.")
	}
	return false
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min", validation.TagNotBlank:
		return "This field is required."
	case validation.TagURL:
		return "Invalid URL."
	case "number":
		return "Not a valid integer value."
	case "datetime":
		return "Not a valid datetime value."
	default:
		return "Not a valid value."
	}
}

// checkProfile runs the domain rules shared by venues and artists: phone,
// then genres, then state. The first failure is recorded and stops the rest.
func checkProfile(errs FieldErrors, phone string, genres []string, state string) bool {
	if err := Setup(); err != nil {
		errs.Add(FormErrorKey, "Form validation is unavailable.")
		return false
	}
	if err := engine.Var(phone, "omitempty,"+validation.TagPhone); err != nil {
		errs.Add("phone", "Invalid phone.")
		return false
	}
	if err := engine.Var(genres, validation.TagGenres); err != nil {
		errs.Add("genres", "Invalid genres.")
		return false
	}
	if err := engine.Var(state, validation.TagState); err != nil {
		errs.Add("state", "Invalid state.")
		return false
	}
	return true
}
