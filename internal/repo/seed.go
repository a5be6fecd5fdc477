// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// seedArticle is one entry of the bundled starter dataset.
type seedArticle struct {
	title         string
	content       string
	excerpt       string
	category      string
	publishedDate time.Time
	imageURL      string
	dataAIHint    string
	metaKeywords  []string
}

// seedArticles is the starter dataset inserted into an empty articles
// collection so a fresh deployment has content to show. Seeded
// articles carry no author id.
var seedArticles = []seedArticle{
	{
		title:         "Welcome to Samay Barta Lite",
		content:       "Samay Barta Lite is now live. This concise news platform brings you the latest headlines with AI-assisted summaries, so you can catch up in moments rather than minutes.",
		excerpt:       "The concise news platform is now live.",
		category:      "Announcements",
		publishedDate: time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		imageURL:      "https://placehold.co/600x400.png",
		dataAIHint:    "newspaper launch",
		metaKeywords:  []string{"news", "launch", "samay barta"},
	},
	{
		title:         "Monsoon Arrives Early Across the Delta",
		content:       "Meteorologists confirmed the monsoon reached the delta region nearly two weeks ahead of schedule. Farmers welcomed the early rain, though low-lying districts are preparing for possible flooding.",
		excerpt:       "The monsoon reached the delta two weeks ahead of schedule.",
		category:      "National",
		publishedDate: time.Date(2025, 1, 5, 14, 30, 0, 0, time.UTC),
		imageURL:      "https://placehold.co/600x400.png",
		dataAIHint:    "monsoon rain",
		metaKeywords:  []string{"weather", "monsoon", "flooding"},
	},
	{
		title:         "National Team Clinches Series in Final Over",
		content:       "A six off the last ball sealed a dramatic series win for the national side. The captain praised the middle order for holding its nerve under pressure in front of a packed home crowd.",
		excerpt:       "A last-ball six sealed a dramatic series win.",
		category:      "Sports",
		publishedDate: time.Date(2025, 1, 4, 20, 15, 0, 0, time.UTC),
		imageURL:      "https://placehold.co/600x400.png",
		dataAIHint:    "cricket stadium",
		metaKeywords:  []string{"cricket", "sports", "series win"},
	},
}

// seedDocuments builds insertable documents from the starter dataset,
// assigning each a fresh ObjectID.
func seedDocuments() []bson.M {
	docs := make([]bson.M, 0, len(seedArticles))
	for _, a := range seedArticles {
		docs = append(docs, bson.M{
			"_id":              primitive.NewObjectID(),
			"title":            a.title,
			"content":          a.content,
			"excerpt":          a.excerpt,
			"category":         a.category,
			"publishedDate":    a.publishedDate,
			"imageUrl":         a.imageURL,
			"dataAiHint":       a.dataAIHint,
			"inlineAdSnippets": []string{},
			"metaTitle":        "",
			"metaDescription":  "",
			"metaKeywords":     a.metaKeywords,
			"ogTitle":          "",
			"ogDescription":    "",
			"ogImage":          "",
			"canonicalUrl":     "",

			"articleYoutubeUrl":   "",
			"articleFacebookUrl":  "",
			"articleMoreLinksUrl": "",
		})
	}
	return docs
}
