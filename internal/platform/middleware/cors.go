// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/postgrado/internal/platform/constants"
)

// OriginPolicy decides which browser origins may call the API.
type OriginPolicy interface {
	IsDevelopment() bool
	AllowsOrigin(origin string) bool
}

var (
	corsMethods        = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsAllowedHeaders = strings.Join([]string{"Accept", "Content-Type", constants.HeaderAuthorization, constants.HeaderXRequestID}, ", ")
)

// CORS answers pre-flight requests and sets CORS headers for allowed origins.
// Every origin is allowed in development.
func CORS(policy OriginPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			header := writer.Header()
			header.Add("Vary", constants.HeaderOrigin)
			if policy.IsDevelopment() || policy.AllowsOrigin(origin) {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", corsMethods)
				header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
				header.Set("Access-Control-Expose-Headers", constants.HeaderXRequestID)
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Set("Access-Control-Max-Age", "600")
			}

			if request.Method == http.MethodOptions && request.Header.Get("Access-Control-Request-Method") != "" {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
