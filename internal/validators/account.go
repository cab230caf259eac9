// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/agil-auth/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON keys of the request bodies.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
	FieldFullName = "fullName"
)

// structFields maps the JSON field names above to the Go struct field names
// expected by validator.StructPartial.
var structFields = map[string]string{
	FieldUsername: "Username",
	FieldEmail:    "Email",
	FieldPassword: "Password",
	FieldPhone:    "Phone",
	FieldFullName: "FullName",
}

// AccountValidator validates registration and login requests using the
// `validate` struct tags on the models.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs an AccountValidator with the "notblank"
// rule registered.
func NewAccountValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank rejects strings consisting only of whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &AccountValidator{validate: v}
}

// Validate checks a models.RegisterRequest or models.LoginRequest (value or
// pointer). When fields are given only those fields are checked.
//
// Every failure wraps ErrMissingField and names the first offending field.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateStruct(&value, fields...)
	case *models.RegisterRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(value, fields...)

	case models.LoginRequest:
		return v.validateStruct(&value, fields...)
	case *models.LoginRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateStruct(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateStruct(obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.Struct(obj)
	} else {
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := structFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			names = append(names, name)
		}
		err = v.validate.StructPartial(obj, names...)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, jsonName(validationErrors[0].StructField()))
	}

	// validator.InvalidValidationError
	return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
}

func jsonName(structField string) string {
	for jsonField, goField := range structFields {
		if goField == structField {
			return jsonField
		}
	}
	return structField
}
