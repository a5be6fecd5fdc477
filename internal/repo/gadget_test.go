// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store/storetest"
)

func TestGadgetsCreateThenGet(t *testing.T) {
	db := storetest.New()
	gadgets := NewGadgets(db, testLogger())
	ctx := context.Background()

	created := gadgets.Create(ctx, model.CreateGadgetParams{
		Section:  "homepage-sidebar",
		Title:    "Weather widget",
		Content:  "<div id=\"weather\"></div>",
		IsActive: true,
		Order:    1,
	})
	if created == nil {
		t.Fatal("Create returned nil")
	}

	got := gadgets.GetByID(ctx, created.ID)
	if got == nil {
		t.Fatal("GetByID returned nil")
	}
	if got.Section != "homepage-sidebar" || !got.IsActive || got.Order != 1 {
		t.Errorf("GetByID = %+v", got)
	}
}

func TestGadgetsListActiveBySectionMatchesLegacyPlacement(t *testing.T) {
	db := storetest.New()
	gadgets := NewGadgets(db, testLogger())

	older := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)
	db.Seed(colGadgets,
		// Legacy document shape: placement instead of section.
		bson.M{"_id": primitive.NewObjectID(), "placement": "sidebar", "title": "legacy",
			"isActive": true, "order": 2, "createdAt": older},
		bson.M{"_id": primitive.NewObjectID(), "section": "sidebar", "title": "current",
			"isActive": true, "order": 1, "createdAt": older},
		bson.M{"_id": primitive.NewObjectID(), "section": "sidebar", "title": "inactive",
			"isActive": false, "order": 0, "createdAt": older},
		bson.M{"_id": primitive.NewObjectID(), "section": "sidebar", "title": "tied-newer",
			"isActive": true, "order": 2, "createdAt": newer},
		bson.M{"_id": primitive.NewObjectID(), "section": "footer", "title": "elsewhere",
			"isActive": true, "order": 0, "createdAt": older},
	)

	got := gadgets.ListActiveBySection(context.Background(), "sidebar")
	if len(got) != 3 {
		t.Fatalf("ListActiveBySection = %d gadgets, want 3", len(got))
	}
	titles := []string{got[0].Title, got[1].Title, got[2].Title}
	want := []string{"current", "tied-newer", "legacy"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("order = %v, want %v", titles, want)
		}
	}
	if got[2].Section != "sidebar" {
		t.Errorf("legacy placement not mapped to section: %+v", got[2])
	}
}

func TestGadgetsUpdatePromotesLegacyAliases(t *testing.T) {
	db := storetest.New()
	gadgets := NewGadgets(db, testLogger())

	oid := primitive.NewObjectID()
	db.Seed(colGadgets, bson.M{
		"_id":         oid,
		"placement":   "sidebar",
		"codeSnippet": "<b>old</b>",
		"adType":      "banner",
		"imageUrl":    "http://example.com/a.png",
		"isActive":    true,
		"createdAt":   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	updated := gadgets.Update(context.Background(), oid.Hex(), model.UpdateGadgetParams{
		Placement:   strp("footer"),
		CodeSnippet: strp("<i>new</i>"),
	})
	if updated == nil {
		t.Fatal("Update returned nil")
	}
	if updated.Section != "footer" || updated.Content != "<i>new</i>" {
		t.Errorf("aliases not promoted: %+v", updated)
	}

	doc := db.Docs(colGadgets)[0]
	for _, stale := range []string{"placement", "codeSnippet", "adType", "imageUrl"} {
		if _, ok := doc[stale]; ok {
			t.Errorf("stale field %q survived the update", stale)
		}
	}
	if doc["section"] != "footer" || doc["content"] != "<i>new</i>" {
		t.Errorf("current fields not written: %v", doc)
	}
}

func TestGadgetsUpdateKeepsLegacyFieldsWhenUntouched(t *testing.T) {
	db := storetest.New()
	gadgets := NewGadgets(db, testLogger())

	oid := primitive.NewObjectID()
	db.Seed(colGadgets, bson.M{
		"_id":         oid,
		"placement":   "sidebar",
		"codeSnippet": "<b>old</b>",
		"isActive":    true,
	})

	// An update that only flips isActive must not destroy the legacy
	// fields that still hold the gadget's only copy of its data.
	updated := gadgets.Update(context.Background(), oid.Hex(), model.UpdateGadgetParams{
		IsActive: boolp(false),
	})
	if updated == nil {
		t.Fatal("Update returned nil")
	}
	if updated.Section != "sidebar" || updated.Content != "<b>old</b>" {
		t.Errorf("legacy data lost: %+v", updated)
	}
}

func TestGadgetsUsedSections(t *testing.T) {
	db := storetest.New()
	gadgets := NewGadgets(db, testLogger())

	db.Seed(colGadgets,
		bson.M{"_id": primitive.NewObjectID(), "section": "sidebar"},
		bson.M{"_id": primitive.NewObjectID(), "section": "sidebar"},
		bson.M{"_id": primitive.NewObjectID(), "placement": "footer"},
		bson.M{"_id": primitive.NewObjectID(), "section": "header"},
	)

	got := gadgets.UsedSections(context.Background())
	want := []string{"footer", "header", "sidebar"}
	if len(got) != len(want) {
		t.Fatalf("UsedSections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UsedSections = %v, want %v", got, want)
		}
	}
}

func TestGadgetsInvalidIDSkipsStore(t *testing.T) {
	db := storetest.New()
	gadgets := NewGadgets(db, testLogger())
	ctx := context.Background()

	if got := gadgets.GetByID(ctx, "zzz"); got != nil {
		t.Errorf("GetByID = %+v, want nil", got)
	}
	if gadgets.Delete(ctx, "zzz") {
		t.Error("Delete = true, want false")
	}
	if n := db.AccessCount(colGadgets); n != 0 {
		t.Errorf("store accesses = %d, want 0", n)
	}
}
