package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("koanf")
		if len(name) == 0 {
			name = fld.Name
		}

		return strings.SplitN(name, ",", 2)[0] // nolint: mnd
	})

	return validate
}

func validate(conf *Configuration) error {
	err := newValidator().Struct(conf)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("'%s' failed on '%s'", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(msgs, ", "))
}
