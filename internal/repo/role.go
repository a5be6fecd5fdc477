// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store"
)

// Roles is the repository for roles.
type Roles struct {
	store store.Acquirer
	log   *slog.Logger
}

// NewRoles creates the roles repository.
func NewRoles(st store.Acquirer, log *slog.Logger) *Roles {
	return &Roles{store: st, log: log}
}

// List returns all roles sorted by name.
func (r *Roles) List(ctx context.Context) []model.Role {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		r.log.Error("acquiring store", "op", "roles.list", "error", err)
		return []model.Role{}
	}

	docs, err := db.Collection(colRoles).Find(ctx, bson.M{}, bson.D{{Key: "name", Value: 1}})
	if err != nil {
		r.log.Error("listing roles", "op", "roles.list", "error", err)
		return []model.Role{}
	}

	roles := make([]model.Role, 0, len(docs))
	for _, doc := range docs {
		roles = append(roles, *model.RoleFromDoc(doc))
	}
	return roles
}

// GetByID returns a role, or nil when the id is malformed or nothing
// matches.
func (r *Roles) GetByID(ctx context.Context, id string) *model.Role {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	db, err := r.store.Acquire(ctx)
	if err != nil {
		r.log.Error("acquiring store", "op", "roles.get", "id", id, "error", err)
		return nil
	}

	doc, err := db.Collection(colRoles).FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Error("fetching role", "op", "roles.get", "id", id, "error", err)
		return nil
	}
	return model.RoleFromDoc(doc)
}

// Create inserts a new role and returns it as read back from the
// store.
func (r *Roles) Create(ctx context.Context, p model.CreateRoleParams) *model.Role {
	db, err := r.store.Acquire(ctx)
	if err != nil {
		r.log.Error("acquiring store", "op", "roles.create", "error", err)
		return nil
	}

	permissions := make([]string, 0, len(p.Permissions))
	for _, perm := range p.Permissions {
		permissions = append(permissions, string(perm))
	}

	now := time.Now().UTC()
	doc := bson.M{
		"_id":         primitive.NewObjectID(),
		"name":        p.Name,
		"permissions": permissions,
		"createdAt":   now,
		"updatedAt":   now,
	}

	coll := db.Collection(colRoles)
	if err := coll.InsertOne(ctx, doc); err != nil {
		r.log.Error("inserting role", "op", "roles.create", "error", err)
		return nil
	}

	inserted, err := coll.FindOne(ctx, bson.M{"_id": doc["_id"]})
	if err != nil {
		r.log.Error("reading back role", "op", "roles.create", "error", err)
		return nil
	}
	return model.RoleFromDoc(inserted)
}

// Update applies the supplied changes and stamps updatedAt.
func (r *Roles) Update(ctx context.Context, id string, p model.UpdateRoleParams) *model.Role {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Permissions != nil {
		permissions := make([]string, 0, len(*p.Permissions))
		for _, perm := range *p.Permissions {
			permissions = append(permissions, string(perm))
		}
		set["permissions"] = permissions
	}

	db, err := r.store.Acquire(ctx)
	if err != nil {
		r.log.Error("acquiring store", "op", "roles.update", "id", id, "error", err)
		return nil
	}

	doc, err := db.Collection(colRoles).FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, false)
	if err != nil {
		r.log.Error("updating role", "op", "roles.update", "id", id, "error", err)
		return nil
	}
	return model.RoleFromDoc(doc)
}

// Delete removes a role. On success it detaches the role id from
// every user's roles set in a compensating second step. The two steps
// are not transactional: when the detach fails after the role is
// gone, dangling references persist and the failure is surfaced in
// the log only.
func (r *Roles) Delete(ctx context.Context, id string) bool {
	oid, ok := parseID(id)
	if !ok {
		return false
	}

	db, err := r.store.Acquire(ctx)
	if err != nil {
		r.log.Error("acquiring store", "op", "roles.delete", "id", id, "error", err)
		return false
	}

	deleted, err := db.Collection(colRoles).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		r.log.Error("deleting role", "op", "roles.delete", "id", id, "error", err)
		return false
	}
	if deleted != 1 {
		return false
	}

	detached, err := db.Collection(colUsers).UpdateMany(ctx,
		bson.M{"roles": id},
		bson.M{"$pull": bson.M{"roles": id}},
	)
	if err != nil {
		r.log.Error("detaching deleted role from users, dangling references remain",
			"op", "roles.delete", "id", id, "error", err)
		return true
	}
	if detached > 0 {
		r.log.Info("detached deleted role from users", "op", "roles.delete", "id", id, "users", detached)
	}
	return true
}
