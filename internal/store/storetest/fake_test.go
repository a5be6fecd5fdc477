package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestMatchOperatorsAndOr(t *testing.T) {
	db := New()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	db.Seed("items",
		bson.M{"_id": "a", "when": base, "section": "header"},
		bson.M{"_id": "b", "when": base.Add(24 * time.Hour), "placement": "header"},
		bson.M{"_id": "c", "when": base.Add(48 * time.Hour), "section": "footer"},
	)

	coll := db.Collection("items")
	ctx := context.Background()

	n, err := coll.CountDocuments(ctx, bson.M{"when": bson.M{"$gte": base.Add(12 * time.Hour)}})
	if err != nil {
		t.Fatalf("CountDocuments: %v", err)
	}
	if n != 2 {
		t.Errorf("range count = %d, want 2", n)
	}

	docs, err := coll.Find(ctx, bson.M{"$or": []bson.M{{"section": "header"}, {"placement": "header"}}}, bson.D{{Key: "when", Value: -1}})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("$or matched %d docs, want 2", len(docs))
	}
	if docs[0]["_id"] != "b" {
		t.Errorf("descending sort: first doc = %v, want b", docs[0]["_id"])
	}
}

func TestArrayContainsAndPull(t *testing.T) {
	db := New()
	db.Seed("users",
		bson.M{"_id": "u1", "roles": []string{"r1", "r2"}},
		bson.M{"_id": "u2", "roles": []string{"r2"}},
	)

	coll := db.Collection("users")
	ctx := context.Background()

	n, err := coll.UpdateMany(ctx, bson.M{"roles": "r1"}, bson.M{"$pull": bson.M{"roles": "r1"}})
	if err != nil {
		t.Fatalf("UpdateMany: %v", err)
	}
	if n != 1 {
		t.Errorf("UpdateMany modified %d, want 1", n)
	}

	docs := db.Docs("users")
	for _, doc := range docs {
		for _, role := range doc["roles"].([]string) {
			if role == "r1" {
				t.Errorf("role r1 still present in %v", doc)
			}
		}
	}
}

func TestUpsertAndAccessCounting(t *testing.T) {
	db := New()
	coll := db.Collection("settings")
	ctx := context.Background()

	doc, err := coll.FindOneAndUpdate(ctx, bson.M{"_id": "fixed"}, bson.M{"$set": bson.M{"title": "x"}}, true)
	if err != nil {
		t.Fatalf("FindOneAndUpdate: %v", err)
	}
	if doc["_id"] != "fixed" || doc["title"] != "x" {
		t.Errorf("upserted doc = %v", doc)
	}
	if got := db.AccessCount("settings"); got != 1 {
		t.Errorf("AccessCount = %d, want 1", got)
	}
	if got := db.AccessCount("untouched"); got != 0 {
		t.Errorf("AccessCount(untouched) = %d, want 0", got)
	}
}

func TestFailCollection(t *testing.T) {
	db := New()
	db.FailCollection("articles", errors.New("boom"))

	if _, err := db.Collection("articles").CountDocuments(context.Background(), bson.M{}); err == nil {
		t.Fatal("expected injected error")
	}
}
