package model

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestArticleFromDoc_Nil(t *testing.T) {
	if got := ArticleFromDoc(nil); got != nil {
		t.Fatalf("ArticleFromDoc(nil) = %v, want nil", got)
	}
	if got := GadgetFromDoc(nil); got != nil {
		t.Fatalf("GadgetFromDoc(nil) = %v, want nil", got)
	}
	if got := SeoSettingsFromDoc(nil); got != nil {
		t.Fatalf("SeoSettingsFromDoc(nil) = %v, want nil", got)
	}
	if got := UserFromDoc(nil); got != nil {
		t.Fatalf("UserFromDoc(nil) = %v, want nil", got)
	}
	if got := RoleFromDoc(nil); got != nil {
		t.Fatalf("RoleFromDoc(nil) = %v, want nil", got)
	}
}

func TestArticleFromDoc(t *testing.T) {
	id := primitive.NewObjectID()
	published := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	article := ArticleFromDoc(bson.M{
		"_id":              id,
		"title":            "Flood warning issued",
		"content":          "Body",
		"excerpt":          "Short",
		"category":         "National",
		"publishedDate":    primitive.NewDateTimeFromTime(published),
		"imageUrl":         "https://example.com/a.jpg",
		"inlineAdSnippets": bson.A{"<script>ad one</script>"},
		"authorId":         "abc123",
		"metaKeywords":     bson.A{"flood", "weather"},
	})

	if article.ID != id.Hex() {
		t.Errorf("ID = %q, want %q", article.ID, id.Hex())
	}
	if !article.PublishedDate.Equal(published) {
		t.Errorf("PublishedDate = %v, want %v", article.PublishedDate, published)
	}
	if !reflect.DeepEqual(article.MetaKeywords, []string{"flood", "weather"}) {
		t.Errorf("MetaKeywords = %v", article.MetaKeywords)
	}
	if len(article.InlineAdSnippets) != 1 {
		t.Errorf("InlineAdSnippets = %v", article.InlineAdSnippets)
	}
}

func TestArticleFromDoc_StringDate(t *testing.T) {
	article := ArticleFromDoc(bson.M{
		"_id":           primitive.NewObjectID(),
		"publishedDate": "2025-12-01T08:00:00Z",
	})

	want := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	if !article.PublishedDate.Equal(want) {
		t.Errorf("PublishedDate = %v, want %v", article.PublishedDate, want)
	}
	if article.MetaKeywords == nil {
		t.Error("MetaKeywords should be an empty slice, not nil")
	}
}

func TestGadgetFromDoc_LegacyAliases(t *testing.T) {
	gadget := GadgetFromDoc(bson.M{
		"_id":         primitive.NewObjectID(),
		"placement":   "sidebar",
		"codeSnippet": "<div>ad</div>",
		"isActive":    true,
		"order":       int32(3),
	})

	if gadget.Section != "sidebar" {
		t.Errorf("Section = %q, want %q (legacy placement)", gadget.Section, "sidebar")
	}
	if gadget.Content != "<div>ad</div>" {
		t.Errorf("Content = %q, want legacy codeSnippet value", gadget.Content)
	}
	if gadget.Order != 3 {
		t.Errorf("Order = %d, want 3", gadget.Order)
	}
}

func TestGadgetFromDoc_CurrentFieldsWin(t *testing.T) {
	gadget := GadgetFromDoc(bson.M{
		"_id":         primitive.NewObjectID(),
		"section":     "header",
		"placement":   "sidebar",
		"content":     "new",
		"codeSnippet": "old",
	})

	if gadget.Section != "header" {
		t.Errorf("Section = %q, want current field to win", gadget.Section)
	}
	if gadget.Content != "new" {
		t.Errorf("Content = %q, want current field to win", gadget.Content)
	}
}

func TestUserFromDoc_Defaults(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := UserFromDoc(bson.M{
		"_id":       primitive.NewObjectID(),
		"username":  "reporter",
		"createdAt": created,
	})

	if !user.IsActive {
		t.Error("missing isActive should default to true")
	}
	if !user.UpdatedAt.Equal(created) {
		t.Errorf("UpdatedAt = %v, want createdAt fallback %v", user.UpdatedAt, created)
	}
	if user.Roles == nil {
		t.Error("Roles should be an empty slice, not nil")
	}
}

func TestUserFromDoc_ExplicitInactive(t *testing.T) {
	user := UserFromDoc(bson.M{
		"_id":      primitive.NewObjectID(),
		"isActive": false,
	})
	if user.IsActive {
		t.Error("explicit isActive=false must not be overridden by the default")
	}
}

func TestRoleFromDoc(t *testing.T) {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)
	role := RoleFromDoc(bson.M{
		"_id":         primitive.NewObjectID(),
		"name":        "editor",
		"permissions": bson.A{"articles:write", "articles:publish"},
		"createdAt":   created,
		"updatedAt":   updated,
	})

	want := []Permission{"articles:write", "articles:publish"}
	if !reflect.DeepEqual(role.Permissions, want) {
		t.Errorf("Permissions = %v, want %v", role.Permissions, want)
	}
	if !role.UpdatedAt.Equal(updated) {
		t.Errorf("UpdatedAt = %v, want %v", role.UpdatedAt, updated)
	}
}

func TestSeoSettingsFromDoc_StringID(t *testing.T) {
	settings := SeoSettingsFromDoc(bson.M{
		"_id":       SeoSettingsID,
		"siteTitle": "Samay Barta Lite",
	})
	if settings.ID != SeoSettingsID {
		t.Errorf("ID = %q, want fixed string key %q", settings.ID, SeoSettingsID)
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"array", `["a","b"]`, StringList{"a", "b"}},
		{"legacy comma string", `"news, bangla news ,latest"`, StringList{"news", "bangla news", "latest"}},
		{"empty string", `""`, StringList{}},
		{"trailing commas", `"a,,b,"`, StringList{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.in, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplitKeywords(t *testing.T) {
	got := SplitKeywords(" news ,, bangla news,ai news ")
	want := []string{"news", "bangla news", "ai news"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitKeywords = %v, want %v", got, want)
	}
}
