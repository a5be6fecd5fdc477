// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session defines the boundary to the authentication
// collaborator. Session storage lives outside this service; all the
// persistence layer needs is the acting user's id, carried on the
// request context.
package session

import "context"

// Provider resolves the acting user's id for the current request.
type Provider interface {
	// UserID returns the authenticated user's id, or false when the
	// request is anonymous.
	UserID(ctx context.Context) (string, bool)
}

type ctxKey struct{}

// WithUserID returns a context carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// ContextProvider reads the user id placed on the context by the
// authentication middleware.
type ContextProvider struct{}

// UserID implements Provider.
func (ContextProvider) UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
