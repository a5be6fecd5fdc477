// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/samay-barta/internal/auth"
	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store"
)

// Users is the repository for CMS users.
type Users struct {
	store store.Acquirer
	log   *slog.Logger
}

// NewUsers creates the users repository.
func NewUsers(st store.Acquirer, log *slog.Logger) *Users {
	return &Users{store: st, log: log}
}

// List returns all users sorted by username.
func (u *Users) List(ctx context.Context) []model.User {
	db, err := u.store.Acquire(ctx)
	if err != nil {
		u.log.Error("acquiring store", "op", "users.list", "error", err)
		return []model.User{}
	}

	docs, err := db.Collection(colUsers).Find(ctx, bson.M{}, bson.D{{Key: "username", Value: 1}})
	if err != nil {
		u.log.Error("listing users", "op", "users.list", "error", err)
		return []model.User{}
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, *model.UserFromDoc(doc))
	}
	return users
}

// GetByID returns a user, or nil when the id is malformed or nothing
// matches.
func (u *Users) GetByID(ctx context.Context, id string) *model.User {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	db, err := u.store.Acquire(ctx)
	if err != nil {
		u.log.Error("acquiring store", "op", "users.get", "id", id, "error", err)
		return nil
	}

	doc, err := db.Collection(colUsers).FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		u.log.Error("fetching user", "op", "users.get", "id", id, "error", err)
		return nil
	}
	return model.UserFromDoc(doc)
}

// GetByUsername returns a user by username, or nil.
func (u *Users) GetByUsername(ctx context.Context, username string) *model.User {
	db, err := u.store.Acquire(ctx)
	if err != nil {
		u.log.Error("acquiring store", "op", "users.getByUsername", "error", err)
		return nil
	}

	doc, err := db.Collection(colUsers).FindOne(ctx, bson.M{"username": username})
	if err != nil {
		u.log.Error("fetching user", "op", "users.getByUsername", "error", err)
		return nil
	}
	return model.UserFromDoc(doc)
}

// Create inserts a new user. A non-empty password is required; it is
// hashed with argon2id before it is stored, and only the hash is ever
// written. A missing isActive defaults to true.
func (u *Users) Create(ctx context.Context, p model.CreateUserParams) *model.User {
	if p.Password == "" {
		u.log.Warn("rejecting user create without password", "op", "users.create", "username", p.Username)
		return nil
	}

	passwordHash, err := auth.HashPassword(p.Password)
	if err != nil {
		u.log.Error("hashing password", "op", "users.create", "error", err)
		return nil
	}

	db, err := u.store.Acquire(ctx)
	if err != nil {
		u.log.Error("acquiring store", "op", "users.create", "error", err)
		return nil
	}

	isActive := true
	if p.IsActive != nil {
		isActive = *p.IsActive
	}
	roles := p.Roles
	if roles == nil {
		roles = []string{}
	}

	now := time.Now().UTC()
	doc := bson.M{
		"_id":          primitive.NewObjectID(),
		"username":     p.Username,
		"email":        p.Email,
		"passwordHash": passwordHash,
		"roles":        roles,
		"isActive":     isActive,
		"createdAt":    now,
		"updatedAt":    now,
	}

	coll := db.Collection(colUsers)
	if err := coll.InsertOne(ctx, doc); err != nil {
		u.log.Error("inserting user", "op", "users.create", "error", err)
		return nil
	}

	inserted, err := coll.FindOne(ctx, bson.M{"_id": doc["_id"]})
	if err != nil {
		u.log.Error("reading back user", "op", "users.create", "error", err)
		return nil
	}
	return model.UserFromDoc(inserted)
}

// Update applies the supplied changes. The credential is only touched
// when a new password is explicitly supplied, in which case its hash
// replaces the stored one; a plaintext password key is never written.
func (u *Users) Update(ctx context.Context, id string, p model.UpdateUserParams) *model.User {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Username != nil {
		set["username"] = *p.Username
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Roles != nil {
		set["roles"] = *p.Roles
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.Password != nil && *p.Password != "" {
		passwordHash, err := auth.HashPassword(*p.Password)
		if err != nil {
			u.log.Error("hashing password", "op", "users.update", "id", id, "error", err)
			return nil
		}
		set["passwordHash"] = passwordHash
	}

	db, err := u.store.Acquire(ctx)
	if err != nil {
		u.log.Error("acquiring store", "op", "users.update", "id", id, "error", err)
		return nil
	}

	doc, err := db.Collection(colUsers).FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, false)
	if err != nil {
		u.log.Error("updating user", "op", "users.update", "id", id, "error", err)
		return nil
	}
	return model.UserFromDoc(doc)
}

// Delete removes a user and reports whether exactly one document was
// removed.
func (u *Users) Delete(ctx context.Context, id string) bool {
	oid, ok := parseID(id)
	if !ok {
		return false
	}

	db, err := u.store.Acquire(ctx)
	if err != nil {
		u.log.Error("acquiring store", "op", "users.delete", "id", id, "error", err)
		return false
	}

	deleted, err := db.Collection(colUsers).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		u.log.Error("deleting user", "op", "users.delete", "id", id, "error", err)
		return false
	}
	return deleted == 1
}
