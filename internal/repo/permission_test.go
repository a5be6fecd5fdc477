// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store/storetest"
)

func TestPermissionsResolveUnion(t *testing.T) {
	db := storetest.New()
	users := NewUsers(db, testLogger())
	roles := NewRoles(db, testLogger())
	perms := NewPermissions(users, roles)
	ctx := context.Background()

	editors := primitive.NewObjectID()
	publishers := primitive.NewObjectID()
	db.Seed(colRoles,
		bson.M{"_id": editors, "name": "editors",
			"permissions": []string{"articles:read", "articles:write"}},
		bson.M{"_id": publishers, "name": "publishers",
			"permissions": []string{"articles:write", "articles:publish"}},
	)

	userID := primitive.NewObjectID()
	db.Seed(colUsers, bson.M{"_id": userID, "username": "lead", "roles": []string{
		editors.Hex(),
		publishers.Hex(),
		primitive.NewObjectID().Hex(), // role deleted since assignment
	}})

	got := perms.Resolve(ctx, userID.Hex())
	want := []model.Permission{"articles:publish", "articles:read", "articles:write"}
	if len(got) != len(want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Resolve = %v, want %v", got, want)
		}
	}
}

func TestPermissionsResolveUnknownUser(t *testing.T) {
	db := storetest.New()
	perms := NewPermissions(NewUsers(db, testLogger()), NewRoles(db, testLogger()))
	ctx := context.Background()

	if got := perms.Resolve(ctx, primitive.NewObjectID().Hex()); len(got) != 0 {
		t.Errorf("Resolve for unknown user = %v, want empty", got)
	}
	if got := perms.Resolve(ctx, "malformed"); got == nil || len(got) != 0 {
		t.Errorf("Resolve for malformed id = %v, want empty non-nil", got)
	}
}

func TestPermissionsResolveUserWithoutRoles(t *testing.T) {
	db := storetest.New()
	perms := NewPermissions(NewUsers(db, testLogger()), NewRoles(db, testLogger()))

	userID := primitive.NewObjectID()
	db.Seed(colUsers, bson.M{"_id": userID, "username": "plain", "roles": []string{}})

	if got := perms.Resolve(context.Background(), userID.Hex()); len(got) != 0 {
		t.Errorf("Resolve = %v, want empty", got)
	}
}
