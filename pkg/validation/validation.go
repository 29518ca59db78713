package validation

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"citydash.app/pkg/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// TrimAndValidate trims string and reports whether anything is left
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// Struct checks v against its `validate` tags. The first failing field
// becomes the message of a validation AppError; label names it for users.
func Struct(v interface{}, label func(field string) string) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(errors.ValidationError, "invalid input", err)
	}

	first := fieldErrs[0]
	name := first.Field()
	if label != nil {
		name = label(name)
	}
	return errors.Wrap(errors.ValidationError, describe(name, first), err)
}

func describe(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must not be less than %s", name, fe.Param())
	case "url":
		return name + " must be an absolute URL"
	default:
		return fmt.Sprintf("%s failed the %q rule", name, fe.Tag())
	}
}
