// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// User represents a CMS user. Roles holds the ids of the roles the
// user belongs to.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Roles        []string  `json:"roles"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateUserParams carries the fields for a new user. Password is
// required and is hashed before it is stored.
type CreateUserParams struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
	IsActive *bool    `json:"isActive"` // Defaults to true when absent
}

// UpdateUserParams carries the fields a user update may change.
// A nil Password leaves the stored credential untouched.
type UpdateUserParams struct {
	Username *string   `json:"username"`
	Email    *string   `json:"email"`
	Password *string   `json:"password"`
	Roles    *[]string `json:"roles"`
	IsActive *bool     `json:"isActive"`
}

// UserFromDoc maps a raw user document to a User. A missing isActive
// defaults to true; a missing updatedAt falls back to createdAt.
func UserFromDoc(doc bson.M) *User {
	if doc == nil {
		return nil
	}

	created := docTime(doc["createdAt"])
	updated := docTime(doc["updatedAt"])
	if updated.IsZero() {
		updated = created
	}

	return &User{
		ID:           docID(doc["_id"]),
		Username:     docString(doc["username"]),
		Email:        docString(doc["email"]),
		PasswordHash: docString(doc["passwordHash"]),
		Roles:        docStringSlice(doc["roles"]),
		IsActive:     docBool(doc["isActive"], true),
		CreatedAt:    created,
		UpdatedAt:    updated,
	}
}
