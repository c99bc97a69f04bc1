// Package validate checks dto inputs with go-playground/validator tags and
// reports failures as apperror.ErrValidation.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		// decimals reach the dgte/dlte tags as exact strings, never as floats
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("dgte", compareDecimal(func(d, bound decimal.Decimal) bool {
			return d.GreaterThanOrEqual(bound)
		}))
		_ = v.RegisterValidation("dlte", compareDecimal(func(d, bound decimal.Decimal) bool {
			return d.LessThanOrEqual(bound)
		}))
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return model.Category(fl.Field().String()).Valid()
		})
		instance = v
	})
	return instance
}

func compareDecimal(ok func(d, bound decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d, decimal.RequireFromString(fl.Param()))
	}
}

func Struct(s interface{}) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation("%v", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return apperror.Validation("%s", strings.Join(msgs, "; "))
}

// Var checks a single value against tag, reporting failures under name.
func Var(value interface{}, tag, name string) error {
	err := get().Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation("%v", err)
	}
	return apperror.Validation("%s", describeAs(verrs[0], name))
}

func describe(fe validator.FieldError) string {
	return describeAs(fe, fe.Field())
}

func describeAs(fe validator.FieldError, name string) string {
	field := strings.ToLower(name)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "category":
		return fmt.Sprintf("%s %q is not a known category", field, fmt.Sprint(fe.Value()))
	case "email":
		return field + " is not a valid email"
	case "dgte":
		return fmt.Sprintf("%s must be gte %s", field, fe.Param())
	case "dlte":
		return fmt.Sprintf("%s must be lte %s", field, fe.Param())
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// Optional trims s and maps blank input to nil.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalPtr is Optional for partial updates: nil stays nil (no change).
// A blank value becomes a pointer to nil, meaning "clear the field".
func OptionalPtr(s *string) **string {
	if s == nil {
		return nil
	}
	v := Optional(*s)
	return &v
}

func Trim(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
