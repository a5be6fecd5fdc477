// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/singleflight"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/session"
	"github.com/olegiv/samay-barta/internal/store"
)

// Articles is the repository for news articles.
type Articles struct {
	store   store.Acquirer
	session session.Provider
	log     *slog.Logger

	// seeding guards the one-time seed insert so concurrent first
	// reads cannot double-seed.
	seeding singleflight.Group
}

// NewArticles creates the articles repository.
func NewArticles(st store.Acquirer, sess session.Provider, log *slog.Logger) *Articles {
	return &Articles{store: st, session: sess, log: log}
}

// ListArticlesParams filters a List call. Zero values mean
// "unfiltered". The date range is inclusive on both ends.
type ListArticlesParams struct {
	AuthorID  string
	StartDate *time.Time
	EndDate   *time.Time
}

func (p ListArticlesParams) empty() bool {
	return p.AuthorID == "" && p.StartDate == nil && p.EndDate == nil
}

// List returns articles matching the filter, newest first. An
// unfiltered call against an empty collection seeds the bundled
// starter dataset first, so a fresh deployment is never blank.
func (a *Articles) List(ctx context.Context, p ListArticlesParams) []model.NewsArticle {
	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "articles.list", "error", err)
		return []model.NewsArticle{}
	}

	filter := bson.M{}
	if p.AuthorID != "" {
		filter["authorId"] = p.AuthorID
	}
	if p.StartDate != nil || p.EndDate != nil {
		dateRange := bson.M{}
		if p.StartDate != nil {
			dateRange["$gte"] = *p.StartDate
		}
		if p.EndDate != nil {
			dateRange["$lte"] = *p.EndDate
		}
		filter["publishedDate"] = dateRange
	}

	if p.empty() {
		if err := a.EnsureSeeded(ctx); err != nil {
			a.log.Error("seeding articles", "op", "articles.list", "error", err)
		}
	}

	docs, err := db.Collection(colArticles).Find(ctx, filter, bson.D{{Key: "publishedDate", Value: -1}})
	if err != nil {
		a.log.Error("listing articles", "op", "articles.list", "error", err)
		return []model.NewsArticle{}
	}

	articles := make([]model.NewsArticle, 0, len(docs))
	for _, doc := range docs {
		articles = append(articles, *model.ArticleFromDoc(doc))
	}
	return articles
}

// EnsureSeeded inserts the bundled starter articles when the
// collection is empty and a seed dataset is bundled. It is idempotent
// and safe to call concurrently: the empty-check and insert run as a
// single flight, so simultaneous first requests seed exactly once.
func (a *Articles) EnsureSeeded(ctx context.Context) error {
	if len(seedArticles) == 0 {
		return nil
	}

	_, err, _ := a.seeding.Do("articles", func() (any, error) {
		db, err := a.store.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		coll := db.Collection(colArticles)

		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("counting articles: %w", err)
		}
		if count > 0 {
			return nil, nil
		}

		inserted, err := coll.InsertMany(ctx, seedDocuments())
		if err != nil {
			return nil, fmt.Errorf("inserting seed articles: %w", err)
		}
		a.log.Info("seeded initial news articles", "count", inserted)
		return nil, nil
	})
	return err
}

// GetByID returns an article, or nil when the id is malformed or
// nothing matches.
func (a *Articles) GetByID(ctx context.Context, id string) *model.NewsArticle {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "articles.get", "id", id, "error", err)
		return nil
	}

	doc, err := db.Collection(colArticles).FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		a.log.Error("fetching article", "op", "articles.get", "id", id, "error", err)
		return nil
	}
	return model.ArticleFromDoc(doc)
}

// Create inserts a new article. The publish date is stamped here and
// the author id is resolved from the acting session; caller-supplied
// values for either are ignored. The returned entity is read back
// from the store after the insert.
func (a *Articles) Create(ctx context.Context, p model.CreateArticleParams) *model.NewsArticle {
	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "articles.create", "error", err)
		return nil
	}

	doc := bson.M{
		"_id":              primitive.NewObjectID(),
		"title":            p.Title,
		"content":          p.Content,
		"excerpt":          p.Excerpt,
		"category":         p.Category,
		"publishedDate":    time.Now().UTC(),
		"imageUrl":         p.ImageURL,
		"dataAiHint":       p.DataAIHint,
		"inlineAdSnippets": emptyIfNil(p.InlineAdSnippets),
		"metaTitle":        p.MetaTitle,
		"metaDescription":  p.MetaDescription,
		"metaKeywords":     emptyIfNil(p.MetaKeywords),
		"ogTitle":          p.OGTitle,
		"ogDescription":    p.OGDescription,
		"ogImage":          p.OGImage,
		"canonicalUrl":     p.CanonicalURL,

		"articleYoutubeUrl":   p.ArticleYoutubeURL,
		"articleFacebookUrl":  p.ArticleFacebookURL,
		"articleMoreLinksUrl": p.ArticleMoreLinksURL,
	}
	if authorID, ok := a.session.UserID(ctx); ok {
		doc["authorId"] = authorID
	}

	coll := db.Collection(colArticles)
	if err := coll.InsertOne(ctx, doc); err != nil {
		a.log.Error("inserting article", "op", "articles.create", "error", err)
		return nil
	}

	// Read back what the store persisted rather than trusting the
	// in-memory document.
	inserted, err := coll.FindOne(ctx, bson.M{"_id": doc["_id"]})
	if err != nil {
		a.log.Error("reading back article", "op", "articles.create", "error", err)
		return nil
	}
	return model.ArticleFromDoc(inserted)
}

// Update applies the supplied changes to an article. The publish date
// cannot be changed, and a session-resolved author id takes
// precedence over a client-supplied one.
func (a *Articles) Update(ctx context.Context, id string, p model.UpdateArticleParams) *model.NewsArticle {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "articles.update", "id", id, "error", err)
		return nil
	}

	set := bson.M{}
	setString := func(field string, v *string) {
		if v != nil {
			set[field] = *v
		}
	}
	setString("title", p.Title)
	setString("content", p.Content)
	setString("excerpt", p.Excerpt)
	setString("category", p.Category)
	setString("imageUrl", p.ImageURL)
	setString("dataAiHint", p.DataAIHint)
	setString("metaTitle", p.MetaTitle)
	setString("metaDescription", p.MetaDescription)
	setString("ogTitle", p.OGTitle)
	setString("ogDescription", p.OGDescription)
	setString("ogImage", p.OGImage)
	setString("canonicalUrl", p.CanonicalURL)
	setString("articleYoutubeUrl", p.ArticleYoutubeURL)
	setString("articleFacebookUrl", p.ArticleFacebookURL)
	setString("articleMoreLinksUrl", p.ArticleMoreLinksURL)

	if p.InlineAdSnippets != nil {
		set["inlineAdSnippets"] = emptyIfNil(*p.InlineAdSnippets)
	}
	if p.MetaKeywords != nil {
		set["metaKeywords"] = emptyIfNil(*p.MetaKeywords)
	}

	// Session identity wins over whatever the client sent.
	if authorID, ok := a.session.UserID(ctx); ok {
		set["authorId"] = authorID
	} else if p.AuthorID != nil {
		set["authorId"] = *p.AuthorID
	}

	coll := db.Collection(colArticles)

	// Nothing to change. MongoDB rejects an empty $set, so read the
	// current document instead.
	if len(set) == 0 {
		doc, err := coll.FindOne(ctx, bson.M{"_id": oid})
		if err != nil {
			a.log.Error("fetching article", "op", "articles.update", "id", id, "error", err)
			return nil
		}
		return model.ArticleFromDoc(doc)
	}

	doc, err := coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, false)
	if err != nil {
		a.log.Error("updating article", "op", "articles.update", "id", id, "error", err)
		return nil
	}
	return model.ArticleFromDoc(doc)
}

// Delete removes an article and reports whether exactly one document
// was removed.
func (a *Articles) Delete(ctx context.Context, id string) bool {
	oid, ok := parseID(id)
	if !ok {
		return false
	}

	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "articles.delete", "id", id, "error", err)
		return false
	}

	deleted, err := db.Collection(colArticles).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		a.log.Error("deleting article", "op", "articles.delete", "id", id, "error", err)
		return false
	}
	return deleted == 1
}

// emptyIfNil keeps collection-typed fields as real arrays in the
// store, never null.
func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
