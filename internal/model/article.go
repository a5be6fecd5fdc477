// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// NewsArticle represents a published news article.
// PublishedDate is stamped at creation and never changes afterwards;
// AuthorID is resolved from the acting session at write time.
type NewsArticle struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Excerpt          string    `json:"excerpt"`
	Category         string    `json:"category"`
	PublishedDate    time.Time `json:"publishedDate"`
	ImageURL         string    `json:"imageUrl"`
	DataAIHint       string    `json:"dataAiHint,omitempty"`
	InlineAdSnippets []string  `json:"inlineAdSnippets"`
	AuthorID         string    `json:"authorId,omitempty"`

	// SEO fields
	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	MetaKeywords    []string `json:"metaKeywords"`
	OGTitle         string   `json:"ogTitle,omitempty"`
	OGDescription   string   `json:"ogDescription,omitempty"`
	OGImage         string   `json:"ogImage,omitempty"`
	CanonicalURL    string   `json:"canonicalUrl,omitempty"`

	// Article-specific social links
	ArticleYoutubeURL   string `json:"articleYoutubeUrl,omitempty"`
	ArticleFacebookURL  string `json:"articleFacebookUrl,omitempty"`
	ArticleMoreLinksURL string `json:"articleMoreLinksUrl,omitempty"`
}

// CreateArticleParams carries caller-supplied fields for a new article.
// There is deliberately no publishedDate or authorId here: the former
// is stamped by the repository, the latter comes from the session.
type CreateArticleParams struct {
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt"`
	Category         string     `json:"category"`
	ImageURL         string     `json:"imageUrl"`
	DataAIHint       string     `json:"dataAiHint"`
	InlineAdSnippets StringList `json:"inlineAdSnippets"`

	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	MetaKeywords    StringList `json:"metaKeywords"`
	OGTitle         string     `json:"ogTitle"`
	OGDescription   string     `json:"ogDescription"`
	OGImage         string     `json:"ogImage"`
	CanonicalURL    string     `json:"canonicalUrl"`

	ArticleYoutubeURL   string `json:"articleYoutubeUrl"`
	ArticleFacebookURL  string `json:"articleFacebookUrl"`
	ArticleMoreLinksURL string `json:"articleMoreLinksUrl"`
}

// UpdateArticleParams carries the fields an update may change.
// Nil pointers leave the stored value untouched. publishedDate is
// absent by construction, so a caller cannot rewrite it.
type UpdateArticleParams struct {
	Title            *string     `json:"title"`
	Content          *string     `json:"content"`
	Excerpt          *string     `json:"excerpt"`
	Category         *string     `json:"category"`
	ImageURL         *string     `json:"imageUrl"`
	DataAIHint       *string     `json:"dataAiHint"`
	InlineAdSnippets *StringList `json:"inlineAdSnippets"`
	AuthorID         *string     `json:"authorId"` // Overridden by the session when one is present

	MetaTitle       *string     `json:"metaTitle"`
	MetaDescription *string     `json:"metaDescription"`
	MetaKeywords    *StringList `json:"metaKeywords"`
	OGTitle         *string     `json:"ogTitle"`
	OGDescription   *string     `json:"ogDescription"`
	OGImage         *string     `json:"ogImage"`
	CanonicalURL    *string     `json:"canonicalUrl"`

	ArticleYoutubeURL   *string `json:"articleYoutubeUrl"`
	ArticleFacebookURL  *string `json:"articleFacebookUrl"`
	ArticleMoreLinksURL *string `json:"articleMoreLinksUrl"`
}

// ArticleFromDoc maps a raw article document to a NewsArticle.
func ArticleFromDoc(doc bson.M) *NewsArticle {
	if doc == nil {
		return nil
	}
	return &NewsArticle{
		ID:               docID(doc["_id"]),
		Title:            docString(doc["title"]),
		Content:          docString(doc["content"]),
		Excerpt:          docString(doc["excerpt"]),
		Category:         docString(doc["category"]),
		PublishedDate:    docTime(doc["publishedDate"]),
		ImageURL:         docString(doc["imageUrl"]),
		DataAIHint:       docString(doc["dataAiHint"]),
		InlineAdSnippets: docStringSlice(doc["inlineAdSnippets"]),
		AuthorID:         docString(doc["authorId"]),

		MetaTitle:       docString(doc["metaTitle"]),
		MetaDescription: docString(doc["metaDescription"]),
		MetaKeywords:    docStringSlice(doc["metaKeywords"]),
		OGTitle:         docString(doc["ogTitle"]),
		OGDescription:   docString(doc["ogDescription"]),
		OGImage:         docString(doc["ogImage"]),
		CanonicalURL:    docString(doc["canonicalUrl"]),

		ArticleYoutubeURL:   docString(doc["articleYoutubeUrl"]),
		ArticleFacebookURL:  docString(doc["articleFacebookUrl"]),
		ArticleMoreLinksURL: docString(doc["articleMoreLinksUrl"]),
	}
}
