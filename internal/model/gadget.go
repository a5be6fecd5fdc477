// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Gadget is a configurable content block (advertisement or widget)
// assigned to a named layout section. Order is the tie-break sort key
// within a section.
type Gadget struct {
	ID        string    `json:"id"`
	Section   string    `json:"section"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateGadgetParams carries the fields for a new gadget.
type CreateGadgetParams struct {
	Section  string `json:"section"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"isActive"`
	Order    int    `json:"order"`
}

// UpdateGadgetParams carries the fields a gadget update may change.
// Placement and CodeSnippet are legacy aliases still submitted by
// older clients; the repository promotes them to Section and Content.
// Stale fields from retired document shapes (adType, imageUrl,
// linkUrl, altText, articleId) have no home here, so they can never
// reach the store on write.
type UpdateGadgetParams struct {
	Section  *string `json:"section"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"isActive"`
	Order    *int    `json:"order"`

	Placement   *string `json:"placement"`
	CodeSnippet *string `json:"codeSnippet"`
}

// GadgetFromDoc maps a raw advertisement document to a Gadget,
// reconciling the legacy placement/codeSnippet field names.
func GadgetFromDoc(doc bson.M) *Gadget {
	if doc == nil {
		return nil
	}

	section := docString(doc["section"])
	if section == "" {
		section = docString(doc["placement"])
	}
	content := docString(doc["content"])
	if content == "" {
		content = docString(doc["codeSnippet"])
	}

	return &Gadget{
		ID:        docID(doc["_id"]),
		Section:   section,
		Title:     docString(doc["title"]),
		Content:   content,
		IsActive:  docBool(doc["isActive"], false),
		Order:     docInt(doc["order"]),
		CreatedAt: docTime(doc["createdAt"]),
	}
}
