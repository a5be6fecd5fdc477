// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package repo implements the persistence layer: one repository per
// entity kind, plus permission resolution and dashboard analytics
// built on top of them.
//
// Every public operation acquires a database handle from the
// connection manager, runs one or more queries against a named
// collection and maps the results through internal/model. Operational
// failures are logged with the operation name and entity id, then
// absorbed into a safe default: nil for single-entity results, false
// for delete outcomes, an empty slice for lists and 0 for counts.
// Callers never see a raw store error. A syntactically invalid
// ObjectID is a definite not-found and short-circuits before any
// store access.
package repo

import "go.mongodb.org/mongo-driver/bson/primitive"

// Logical collection names.
const (
	colArticles = "articles"
	colGadgets  = "advertisements"
	colSeo      = "seo_settings"
	colUsers    = "users"
	colRoles    = "roles"
)

// parseID validates an entity id and converts it to an ObjectID.
// Invalid ids are an expected client input condition, not an error.
func parseID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
