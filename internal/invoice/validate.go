package invoice

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gompdf/invoicepdf/internal/i18n"
)

// ErrInvalid is returned when invoice data fails schema validation
var ErrInvalid = errors.New("invalid invoice data")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(f reflect.Value) interface{} {
		d, ok := f.Interface().(Date)
		if !ok || d.IsZero() {
			return ""
		}
		return d.String()
	}, Date{})

	mustRegister(v, "language", func(fl validator.FieldLevel) bool {
		return i18n.Language(fl.Field().String()).IsSupported()
	})
	mustRegister(v, "currency", func(fl validator.FieldLevel) bool {
		return Currency(fl.Field().String()).IsSupported()
	})
	mustRegister(v, "dateformat", func(fl validator.FieldLevel) bool {
		return IsDateFormat(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Validate checks d against the input schema
func Validate(d *Data) error {
	if d == nil {
		return fmt.Errorf("%w: no data", ErrInvalid)
	}
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate invoice: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
