// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Permission is an opaque capability token granted to a role and
// inherited by the role's users.
type Permission string

// Role groups permissions under a name. Deleting a role retracts its
// id from every user's roles set.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// CreateRoleParams carries the fields for a new role.
type CreateRoleParams struct {
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// UpdateRoleParams carries the fields a role update may change.
type UpdateRoleParams struct {
	Name        *string       `json:"name"`
	Permissions *[]Permission `json:"permissions"`
}

// RoleFromDoc maps a raw role document to a Role. A missing updatedAt
// falls back to createdAt.
func RoleFromDoc(doc bson.M) *Role {
	if doc == nil {
		return nil
	}

	created := docTime(doc["createdAt"])
	updated := docTime(doc["updatedAt"])
	if updated.IsZero() {
		updated = created
	}

	permissions := []Permission{}
	for _, p := range docStringSlice(doc["permissions"]) {
		permissions = append(permissions, Permission(p))
	}

	return &Role{
		ID:          docID(doc["_id"]),
		Name:        docString(doc["name"]),
		Permissions: permissions,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
