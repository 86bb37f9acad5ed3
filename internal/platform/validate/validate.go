// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// Services validate their whole input before touching storage. Each field
// reports at most one problem: once a rule fails for a field, later rules
// for that field are skipped.
package validate

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
)

// DateLayout is the calendar date format accepted by the API.
const DateLayout = time.DateOnly

const (
	messageFailed   = "Validation failed"
	messageRequired = "Este campo es obligatorio"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

// Validator collects field errors. It is not safe for concurrent use; build
// one per operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	return v.check(field, strings.TrimSpace(value) == "", messageRequired)
}

// MaxLen fails if value has more than max runes.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.check(field, utf8.RuneCountInString(value) > max, fmt.Sprintf("Máximo %d caracteres", max))
}

// MinLen fails if value has fewer than min runes.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	return v.check(field, utf8.RuneCountInString(value) < min, fmt.Sprintf("Mínimo %d caracteres", min))
}

// Email fails if value is not an RFC 5322 address.
func (v *Validator) Email(field, value string) *Validator {
	_, err := mail.ParseAddress(value)
	return v.check(field, err != nil, "Debe ser un correo electrónico válido")
}

// Date fails if value is not a [DateLayout] calendar date. On success the
// parsed date is stored in target.
func (v *Validator) Date(field, value string, target *time.Time) *Validator {
	parsed, err := time.Parse(DateLayout, value)
	if err == nil && target != nil {
		*target = parsed
	}
	return v.check(field, err != nil, "Debe ser una fecha con formato YYYY-MM-DD")
}

// OneOf fails if value is not one of allowed. The comparison is exact.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	return v.check(field, !slices.Contains(allowed, value), "Debe ser uno de: "+strings.Join(allowed, ", "))
}

// Custom fails with message when failed is true.
//
//	v.Custom("fecha_fin", end.Before(start), "Debe ser posterior a fecha_inicio")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	return v.check(field, failed, message)
}

// Failed reports whether a rule has already failed for field.
func (v *Validator) Failed(field string) bool {
	return slices.ContainsFunc(v.errs, func(e apperr.FieldError) bool { return e.Field == field })
}

// Err returns a VALIDATION_ERROR listing every failed field, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(messageFailed, v.errs...)
}

func (v *Validator) check(field string, failed bool, message string) *Validator {
	if failed && !v.Failed(field) {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// FieldError is a VALIDATION_ERROR for a single field.
func FieldError(field, message string) *apperr.AppError {
	return apperr.ValidationError(messageFailed, apperr.FieldError{Field: field, Message: message})
}

// Missing is a VALIDATION_ERROR for a single absent field.
func Missing(field string) *apperr.AppError {
	return FieldError(field, messageRequired)
}
