// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"sort"

	"github.com/olegiv/samay-barta/internal/model"
)

// Permissions derives a user's effective permission set by following
// the user → role → permission relations.
type Permissions struct {
	users *Users
	roles *Roles
}

// NewPermissions creates the permission resolver.
func NewPermissions(users *Users, roles *Roles) *Permissions {
	return &Permissions{users: users, roles: roles}
}

// Resolve returns the union of the permissions of every role the user
// belongs to, with duplicates collapsed. Roles that no longer exist
// are skipped. An unknown or malformed user id yields an empty set,
// never an error. The result is sorted; order carries no meaning.
func (p *Permissions) Resolve(ctx context.Context, userID string) []model.Permission {
	user := p.users.GetByID(ctx, userID)
	if user == nil {
		return []model.Permission{}
	}

	seen := map[model.Permission]bool{}
	for _, roleID := range user.Roles {
		role := p.roles.GetByID(ctx, roleID)
		if role == nil {
			continue
		}
		for _, perm := range role.Permissions {
			seen[perm] = true
		}
	}

	permissions := make([]model.Permission, 0, len(seen))
	for perm := range seen {
		permissions = append(permissions, perm)
	}
	sort.Slice(permissions, func(i, j int) bool { return permissions[i] < permissions[j] })
	return permissions
}
