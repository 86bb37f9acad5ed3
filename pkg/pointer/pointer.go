// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer helps with optional values in request payloads, where a nil
pointer means "field not supplied" and must not be confused with a zero value.
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Val dereferences p, returning the zero value for nil.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Or dereferences p, returning current when the field was not supplied.
// Partial updates use it to keep stored values.
func Or[T any](p *T, current T) T {
	if p == nil {
		return current
	}
	return *p
}

// Map applies transform to the value behind p and returns a pointer to the
// result. The original value is left untouched and nil stays nil.
func Map[T, U any](p *T, transform func(T) U) *U {
	if p == nil {
		return nil
	}
	return To(transform(*p))
}
