// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package requestutil reads request bodies and the authenticated caller on
// behalf of handlers.
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/ctxutil"
	"github.com/taibuivan/postgrado/internal/platform/sec"
	"github.com/taibuivan/postgrado/internal/platform/validate"
)

// MaxBodyBytes caps every JSON body. A full payment batch fits well below it.
const MaxBodyBytes = 1 << 20

// ErrBodyTooLarge is returned for bodies over [MaxBodyBytes].
var ErrBodyTooLarge = apperr.New(http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "El cuerpo de la solicitud es demasiado grande.")

/*
DecodeJSON decodes a single JSON value from the request body into target.

Returns:
  - error: ErrBodyTooLarge, or validate.ErrInvalidJSON for an empty,
    malformed or trailing-data body
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, MaxBodyBytes))

	if err := decoder.Decode(target); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return validate.ErrInvalidJSON
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

// RequiredPrincipal returns the authenticated caller, or a 401 when the
// route was reached anonymously.
func RequiredPrincipal(request *http.Request) (*sec.Principal, error) {
	if principal := ctxutil.Principal(request.Context()); principal != nil {
		return principal, nil
	}
	return nil, apperr.Unauthorized("Usuario no autenticado")
}
