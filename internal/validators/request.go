// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/anime-saver/internal/logger"
	"github.com/MKhiriev/anime-saver/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements [Validator] for the request DTOs in models
// using the struct tags understood by go-playground/validator.
//
// Failures of a "required" rule are reported as [ErrMissingRequiredFields],
// every other rule as [ErrInvalidRequest]. Both are wrapped together with
// the names of the offending fields.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator] with the custom
// "season" rule registered.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// "season" accepts the four MyAnimeList season names.
	// Ошибка возможна только при пустом теге, поэтому игнорируем её.
	_ = validate.RegisterValidation("season", func(fl validator.FieldLevel) bool {
		return models.Season(fl.Field().String()).Valid()
	})

	return &RequestValidator{validate: validate}
}

// Validate checks obj, which must be a struct or a pointer to one. When
// fields are given only those struct fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ErrUnsupportedType
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		logger.FromContext(ctx).Err(err).Str("func", "*RequestValidator.Validate").Msg("unexpected validator error")
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	sentinel := ErrInvalidRequest
	names := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if fieldErr.Tag() == "required" {
			sentinel = ErrMissingRequiredFields
		}
		names = append(names, fieldErr.Field())
	}

	return fmt.Errorf("%w: %s", sentinel, strings.Join(names, ", "))
}
