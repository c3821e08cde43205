// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/niklasalamak0/PT-Bakat-Website/internal/auth"
)

const sessionTokenTTL = 24 * time.Hour

// demoCredentials is the fixed credential list for the admin panel. Real
// user management is out of scope for a marketing site.
var demoCredentials = []struct {
	Username string
	Password string
	Role     string
}{
	{Username: "admin", Password: "admin123", Role: auth.RoleAdmin},
	{Username: "manager", Password: "manager123", Role: auth.RoleManager},
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !a.decodeBody(w, r, &req) {
		return
	}

	role := ""
	for _, c := range demoCredentials {
		if c.Username == req.Username && c.Password == req.Password {
			role = c.Role
			break
		}
	}
	if role == "" {
		a.writeError(w, http.StatusUnauthorized, "unauthenticated", "Invalid credentials")
		return
	}

	token, err := a.authn.GenerateSessionToken(req.Username, role, sessionTokenTTL)
	if err != nil {
		if errors.Is(err, auth.ErrSecretUnset) {
			a.writeError(w, http.StatusInternalServerError, "configuration_error", "Admin secret is not configured")
			return
		}
		a.logger.Error("Failed to issue session token", "user", req.Username, "error", err)
		a.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to issue session token")
		return
	}

	a.writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: req.Username, Username: req.Username, Role: role},
	})
}
