// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes the JSON bodies of every API handler.
//
// Most endpoints answer with the `{"data": ...}` envelope. A few endpoints
// consumed by the existing frontend keep their historical bodies
// (`{"message", "data"}`, `{"codigo_cohorte"}`, `{"exists", "new_code"}`);
// those are written through [JSON] directly. Errors always carry the
// `"error"` key.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/taibuivan/postgrado/internal/platform/apperr"
	"github.com/taibuivan/postgrado/internal/platform/ctxutil"
	"github.com/taibuivan/postgrado/pkg/pagination"
)

// Envelope is the `{"data": ...}` success body.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// MessageEnvelope pairs a human-readable message with the affected resource.
type MessageEnvelope[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// Page is a list body with its pagination block.
type Page[T any] struct {
	Data []T            `json:"data"`
	Meta pagination.Meta `json:"meta"`
}

// ErrorBody is the body of every failed request.
type ErrorBody struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON writes payload with statusCode. Encoding errors are ignored: the
// status line is already on the wire.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes data inside the success envelope.
func OK[T any](writer http.ResponseWriter, data T) {
	JSON(writer, http.StatusOK, Envelope[T]{Data: data})
}

// Message writes a `{"message", "data"}` body with the given status.
func Message[T any](writer http.ResponseWriter, statusCode int, message string, data T) {
	JSON(writer, statusCode, MessageEnvelope[T]{Message: message, Data: data})
}

// Paginated writes one page of items together with meta.
func Paginated[T any](writer http.ResponseWriter, items []T, meta pagination.Meta) {
	if items == nil {
		items = []T{}
	}
	JSON(writer, http.StatusOK, Page[T]{Data: items, Meta: meta})
}

/*
Error renders err as an [ErrorBody].

Description: An [apperr.AppError] anywhere in the chain decides the status
and code. Any other error becomes a generic INTERNAL_ERROR. Every 5xx is
logged with the request logger and its correlation ID.
*/
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()

	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.Logger(ctx).ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.RequestID(ctx)),
			slog.String("path", request.URL.Path),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorBody{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
