// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store/storetest"
)

func TestSeoGetReturnsRichDefaultsWithoutWriting(t *testing.T) {
	db := storetest.New()
	seo := NewSeoSettings(db, testLogger())

	got := seo.Get(context.Background())
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.SiteTitle != "Samay Barta Lite" {
		t.Errorf("SiteTitle = %q, want rich default", got.SiteTitle)
	}
	if got.OGLocale != "bn_BD" {
		t.Errorf("OGLocale = %q, want bn_BD", got.OGLocale)
	}
	if n := len(db.Docs(colSeo)); n != 0 {
		t.Errorf("Get persisted %d documents; defaults must stay synthetic", n)
	}
}

func TestSeoGetFallsBackToMinimalDefaultsOnStoreError(t *testing.T) {
	db := storetest.New()
	db.FailCollection(colSeo, errors.New("socket closed"))
	seo := NewSeoSettings(db, testLogger())

	got := seo.Get(context.Background())
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.SiteTitle != "Samay Barta Lite - Default" {
		t.Errorf("SiteTitle = %q, want minimal default", got.SiteTitle)
	}
}

func TestSeoGetFallsBackToMinimalDefaultsWhenUnreachable(t *testing.T) {
	db := storetest.New()
	db.AcquireErr = errors.New("no reachable servers")
	seo := NewSeoSettings(db, testLogger())

	got := seo.Get(context.Background())
	if got == nil || got.SiteTitle != "Samay Barta Lite - Default" {
		t.Errorf("Get = %+v, want minimal default", got)
	}
}

func TestSeoUpdateUpsertsSingleton(t *testing.T) {
	db := storetest.New()
	seo := NewSeoSettings(db, testLogger())
	ctx := context.Background()

	updated := seo.Update(ctx, model.UpdateSeoSettingsParams{
		SiteTitle:       "Samay Barta",
		MetaDescription: "All the news.",
		MetaKeywords:    []string{"news"},
	})
	if updated == nil {
		t.Fatal("Update returned nil")
	}
	if updated.ID != model.SeoSettingsID {
		t.Errorf("ID = %q, want fixed singleton key", updated.ID)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("UpdatedAt was not stamped")
	}

	// A second update must land on the same document.
	seo.Update(ctx, model.UpdateSeoSettingsParams{SiteTitle: "Samay Barta v2"})
	docs := db.Docs(colSeo)
	if len(docs) != 1 {
		t.Fatalf("collection holds %d documents, want 1", len(docs))
	}

	got := seo.Get(ctx)
	if got.SiteTitle != "Samay Barta v2" {
		t.Errorf("SiteTitle after update = %q, want Samay Barta v2", got.SiteTitle)
	}
}
