package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edge-marketplace/marketplace/internal/core/domain"
)

// RequestValidator checks request payloads for Echo's c.Validate. Failures
// name fields by their json or query key, as the client sent them.
type RequestValidator struct {
	v *validator.Validate
}

// NewValidator builds a RequestValidator with the marketplace's custom tags:
//
//	itemstatus  the value is a known domain.ItemStatus
func NewValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(wireName)
	_ = v.RegisterValidation("itemstatus", func(fl validator.FieldLevel) bool {
		return domain.ItemStatus(fl.Field().String()).Valid()
	})
	return &RequestValidator{v: v}
}

// Validate implements echo.Validator. All failing fields are reported in one
// error, joined with "; ".
func (rv *RequestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	msgs := make([]string, len(ve))
	for n, fe := range ve {
		msgs[n] = describe(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func wireName(f reflect.StructField) string {
	for _, key := range []string{"json", "query"} {
		if name, _, _ := strings.Cut(f.Tag.Get(key), ","); name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(f.Name)
}

func describe(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()
	countable := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return field + " must be greater than " + param
	case "min":
		if countable {
			return fmt.Sprintf("%s must contain at least %s entries", field, param)
		}
		return field + " must be at least " + param
	case "max":
		if countable {
			return fmt.Sprintf("%s must contain at most %s entries", field, param)
		}
		return field + " must be at most " + param
	case "oneof":
		return field + " must be one of: " + param
	case "itemstatus":
		return fmt.Sprintf("%s must be one of: %s %s %s", field, domain.StatusPending, domain.StatusApproved, domain.StatusRejected)
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}
