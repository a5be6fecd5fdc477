// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// SeoSettingsID is the fixed document key of the site-wide SEO
// settings singleton. Exactly one such document ever exists.
const SeoSettingsID = "global_seo_settings_doc"

// SeoSettings holds the site-wide SEO configuration.
type SeoSettings struct {
	ID              string    `json:"id"`
	SiteTitle       string    `json:"siteTitle"`
	MetaDescription string    `json:"metaDescription"`
	MetaKeywords    []string  `json:"metaKeywords"`
	FaviconURL      string    `json:"faviconUrl,omitempty"`
	OGSiteName      string    `json:"ogSiteName,omitempty"`
	OGLocale        string    `json:"ogLocale,omitempty"`
	OGType          string    `json:"ogType,omitempty"`
	TwitterCard     string    `json:"twitterCard,omitempty"`
	TwitterSite     string    `json:"twitterSite,omitempty"`
	TwitterCreator  string    `json:"twitterCreator,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Footer social links
	FooterYoutubeURL   string `json:"footerYoutubeUrl,omitempty"`
	FooterFacebookURL  string `json:"footerFacebookUrl,omitempty"`
	FooterMoreLinksURL string `json:"footerMoreLinksUrl,omitempty"`
}

// UpdateSeoSettingsParams carries the writable SEO settings fields.
type UpdateSeoSettingsParams struct {
	SiteTitle       string     `json:"siteTitle"`
	MetaDescription string     `json:"metaDescription"`
	MetaKeywords    StringList `json:"metaKeywords"`
	FaviconURL      string     `json:"faviconUrl"`
	OGSiteName      string     `json:"ogSiteName"`
	OGLocale        string     `json:"ogLocale"`
	OGType          string     `json:"ogType"`
	TwitterCard     string     `json:"twitterCard"`
	TwitterSite     string     `json:"twitterSite"`
	TwitterCreator  string     `json:"twitterCreator"`

	FooterYoutubeURL   string `json:"footerYoutubeUrl"`
	FooterFacebookURL  string `json:"footerFacebookUrl"`
	FooterMoreLinksURL string `json:"footerMoreLinksUrl"`
}

// SeoSettingsFromDoc maps the stored settings document to SeoSettings.
func SeoSettingsFromDoc(doc bson.M) *SeoSettings {
	if doc == nil {
		return nil
	}
	return &SeoSettings{
		ID:              docID(doc["_id"]),
		SiteTitle:       docString(doc["siteTitle"]),
		MetaDescription: docString(doc["metaDescription"]),
		MetaKeywords:    docStringSlice(doc["metaKeywords"]),
		FaviconURL:      docString(doc["faviconUrl"]),
		OGSiteName:      docString(doc["ogSiteName"]),
		OGLocale:        docString(doc["ogLocale"]),
		OGType:          docString(doc["ogType"]),
		TwitterCard:     docString(doc["twitterCard"]),
		TwitterSite:     docString(doc["twitterSite"]),
		TwitterCreator:  docString(doc["twitterCreator"]),
		UpdatedAt:       docTime(doc["updatedAt"]),

		FooterYoutubeURL:   docString(doc["footerYoutubeUrl"]),
		FooterFacebookURL:  docString(doc["footerFacebookUrl"]),
		FooterMoreLinksURL: docString(doc["footerMoreLinksUrl"]),
	}
}
