// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/auth"
)

// requestLogger tags every request with a request id and logs method, path,
// status and duration.
func (a *API) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		rw := &respCapture{ResponseWriter: w, status: 200}
		next.ServeHTTP(rw, r)

		a.logger.Info("HTTP request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", rw.status,
			"duration", time.Since(start).String(),
		)
	})
}

// requireAuth rejects requests without a valid bearer token and attaches
// the resolved identity to the request context.
func (a *API) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := a.authn.Authenticate(r)
		if err != nil {
			a.writeError(w, http.StatusUnauthorized, "authentication_failed", "Invalid or missing bearer token")
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	}
}

// requireAdmin additionally rejects authenticated non-admins before any
// store or mirror effect takes place.
func (a *API) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFrom(r.Context())
		if !ok || !identity.IsAdmin() {
			a.writeError(w, http.StatusForbidden, "permission_denied", "Insufficient permissions")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type respCapture struct {
	http.ResponseWriter
	status int
}

func (w *respCapture) WriteHeader(code int) { w.status = code; w.ResponseWriter.WriteHeader(code) }
