package auth

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestAuthenticate_StaticSecret(t *testing.T) {
	a := NewTokenAuth("super-secret")

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer super-secret")

	id, err := a.Authenticate(r)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if id.UserID != "admin" || id.Role != RoleAdmin {
		t.Errorf("identity = %+v", id)
	}
	if !id.IsAdmin() {
		t.Error("static secret identity must be admin")
	}
}

func TestAuthenticate_SessionToken(t *testing.T) {
	a := NewTokenAuth("super-secret")

	token, err := a.GenerateSessionToken("manager", RoleManager, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	id, err := a.Authenticate(r)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if id.UserID != "manager" || id.Role != RoleManager {
		t.Errorf("identity = %+v", id)
	}
	if id.IsAdmin() {
		t.Error("manager must not be admin")
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	a := NewTokenAuth("super-secret")
	other := NewTokenAuth("different-secret")
	foreign, _ := other.GenerateSessionToken("admin", RoleAdmin, time.Hour)
	expired, _ := a.GenerateSessionToken("admin", RoleAdmin, -time.Hour)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"wrong secret", "Bearer not-the-secret"},
		{"token signed with other secret", "Bearer " + foreign},
		{"expired session token", "Bearer " + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if _, err := a.Authenticate(r); err == nil {
				t.Error("expected authentication to fail")
			}
		})
	}
}

func TestAuthenticate_UnsetSecret(t *testing.T) {
	a := NewTokenAuth("")
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer anything")
	if _, err := a.Authenticate(r); err == nil {
		t.Error("unset secret must reject all tokens")
	}
	if _, err := a.GenerateSessionToken("admin", RoleAdmin, time.Hour); err == nil {
		t.Error("unset secret must refuse to sign tokens")
	}
}
