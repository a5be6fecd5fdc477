// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store"
)

// SeoSettings is the repository for the site-wide SEO settings
// singleton, stored under a fixed document key.
type SeoSettings struct {
	store store.Acquirer
	log   *slog.Logger
}

// NewSeoSettings creates the SEO settings repository.
func NewSeoSettings(st store.Acquirer, log *slog.Logger) *SeoSettings {
	return &SeoSettings{store: st, log: log}
}

// Get returns the stored settings, a rich hardcoded default when no
// document exists yet, or a minimal default when the store cannot be
// read. Defaults are synthesized only, never written to the store,
// and Get never fails.
func (s *SeoSettings) Get(ctx context.Context) *model.SeoSettings {
	db, err := s.store.Acquire(ctx)
	if err != nil {
		s.log.Error("acquiring store", "op", "seo.get", "error", err)
		return minimalSeoDefaults()
	}

	doc, err := db.Collection(colSeo).FindOne(ctx, bson.M{"_id": model.SeoSettingsID})
	if err != nil {
		s.log.Error("fetching SEO settings", "op", "seo.get", "error", err)
		return minimalSeoDefaults()
	}
	if doc == nil {
		return richSeoDefaults()
	}
	return model.SeoSettingsFromDoc(doc)
}

// Update upserts the settings document under the fixed key and
// returns the persisted result.
func (s *SeoSettings) Update(ctx context.Context, p model.UpdateSeoSettingsParams) *model.SeoSettings {
	db, err := s.store.Acquire(ctx)
	if err != nil {
		s.log.Error("acquiring store", "op", "seo.update", "error", err)
		return nil
	}

	set := bson.M{
		"siteTitle":       p.SiteTitle,
		"metaDescription": p.MetaDescription,
		"metaKeywords":    emptyIfNil(p.MetaKeywords),
		"faviconUrl":      p.FaviconURL,
		"ogSiteName":      p.OGSiteName,
		"ogLocale":        p.OGLocale,
		"ogType":          p.OGType,
		"twitterCard":     p.TwitterCard,
		"twitterSite":     p.TwitterSite,
		"twitterCreator":  p.TwitterCreator,
		"updatedAt":       time.Now().UTC(),

		"footerYoutubeUrl":   p.FooterYoutubeURL,
		"footerFacebookUrl":  p.FooterFacebookURL,
		"footerMoreLinksUrl": p.FooterMoreLinksURL,
	}

	doc, err := db.Collection(colSeo).FindOneAndUpdate(ctx,
		bson.M{"_id": model.SeoSettingsID}, bson.M{"$set": set}, true)
	if err != nil {
		s.log.Error("updating SEO settings", "op", "seo.update", "error", err)
		return nil
	}
	return model.SeoSettingsFromDoc(doc)
}

// richSeoDefaults is what a site without stored settings presents.
func richSeoDefaults() *model.SeoSettings {
	return &model.SeoSettings{
		ID:              model.SeoSettingsID,
		SiteTitle:       "Samay Barta Lite",
		MetaDescription: "Your concise news source, powered by AI.",
		MetaKeywords:    []string{"news", "bangla news", "ai news", "latest news"},
		FaviconURL:      "/favicon.ico",
		OGSiteName:      "Samay Barta Lite",
		OGLocale:        "bn_BD",
		OGType:          "website",
		TwitterCard:     "summary_large_image",
		UpdatedAt:       time.Now().UTC(),

		FooterYoutubeURL:   "https://youtube.com",
		FooterFacebookURL:  "https://facebook.com",
		FooterMoreLinksURL: "#",
	}
}

// minimalSeoDefaults is the last-resort fallback when the store is
// unreadable.
func minimalSeoDefaults() *model.SeoSettings {
	return &model.SeoSettings{
		ID:              model.SeoSettingsID,
		SiteTitle:       "Samay Barta Lite - Default",
		MetaDescription: "Default description.",
		MetaKeywords:    []string{},
		FaviconURL:      "/favicon.ico",
		UpdatedAt:       time.Now().UTC(),

		FooterYoutubeURL:   "https://youtube.com",
		FooterFacebookURL:  "https://facebook.com",
		FooterMoreLinksURL: "#",
	}
}
