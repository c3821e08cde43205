// Copyright 2025 PT Bakat Karya Teknik
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
)

type contextKey string

const identityKey contextKey = "identity"

// Known roles. Only admins may perform mutating operations; managers get
// read access to the admin surfaces.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID string
	Role   string
	Email  string
}

// IsAdmin reports whether the identity may perform mutating operations.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// WithIdentity attaches the identity to the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom retrieves the identity from the context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
