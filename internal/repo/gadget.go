// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store"
)

// Gadgets is the repository for layout gadgets, stored in the legacy
// "advertisements" collection.
type Gadgets struct {
	store store.Acquirer
	log   *slog.Logger
}

// NewGadgets creates the gadgets repository.
func NewGadgets(st store.Acquirer, log *slog.Logger) *Gadgets {
	return &Gadgets{store: st, log: log}
}

// List returns all gadgets grouped by section, ordered within each
// section by the explicit order key and then newest first.
func (g *Gadgets) List(ctx context.Context) []model.Gadget {
	db, err := g.store.Acquire(ctx)
	if err != nil {
		g.log.Error("acquiring store", "op", "gadgets.list", "error", err)
		return []model.Gadget{}
	}

	docs, err := db.Collection(colGadgets).Find(ctx, bson.M{}, bson.D{
		{Key: "section", Value: 1},
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
	})
	if err != nil {
		g.log.Error("listing gadgets", "op", "gadgets.list", "error", err)
		return []model.Gadget{}
	}
	return mapGadgets(docs)
}

// ListActiveBySection returns the active gadgets of a layout section,
// matching both the current field name and the legacy "placement"
// alias, ordered by the explicit order key and then newest first.
func (g *Gadgets) ListActiveBySection(ctx context.Context, section string) []model.Gadget {
	db, err := g.store.Acquire(ctx)
	if err != nil {
		g.log.Error("acquiring store", "op", "gadgets.listActive", "section", section, "error", err)
		return []model.Gadget{}
	}

	filter := bson.M{
		"$or": []bson.M{
			{"section": section},
			{"placement": section},
		},
		"isActive": true,
	}
	docs, err := db.Collection(colGadgets).Find(ctx, filter, bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
	})
	if err != nil {
		g.log.Error("listing active gadgets", "op", "gadgets.listActive", "section", section, "error", err)
		return []model.Gadget{}
	}
	return mapGadgets(docs)
}

// GetByID returns a gadget, or nil when the id is malformed or
// nothing matches.
func (g *Gadgets) GetByID(ctx context.Context, id string) *model.Gadget {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	db, err := g.store.Acquire(ctx)
	if err != nil {
		g.log.Error("acquiring store", "op", "gadgets.get", "id", id, "error", err)
		return nil
	}

	doc, err := db.Collection(colGadgets).FindOne(ctx, bson.M{"_id": oid})
	if err != nil {
		g.log.Error("fetching gadget", "op", "gadgets.get", "id", id, "error", err)
		return nil
	}
	return model.GadgetFromDoc(doc)
}

// Create inserts a new gadget and returns it as read back from the
// store.
func (g *Gadgets) Create(ctx context.Context, p model.CreateGadgetParams) *model.Gadget {
	db, err := g.store.Acquire(ctx)
	if err != nil {
		g.log.Error("acquiring store", "op", "gadgets.create", "error", err)
		return nil
	}

	doc := bson.M{
		"_id":       primitive.NewObjectID(),
		"section":   p.Section,
		"title":     p.Title,
		"content":   p.Content,
		"isActive":  p.IsActive,
		"order":     p.Order,
		"createdAt": time.Now().UTC(),
	}

	coll := db.Collection(colGadgets)
	if err := coll.InsertOne(ctx, doc); err != nil {
		g.log.Error("inserting gadget", "op", "gadgets.create", "error", err)
		return nil
	}

	inserted, err := coll.FindOne(ctx, bson.M{"_id": doc["_id"]})
	if err != nil {
		g.log.Error("reading back gadget", "op", "gadgets.create", "error", err)
		return nil
	}
	return model.GadgetFromDoc(inserted)
}

// Update applies the supplied changes. Legacy alias fields still sent
// by older clients (placement, codeSnippet) are promoted to their
// current names, and retired fields from old document shapes are
// unset so they do not linger alongside the current schema.
func (g *Gadgets) Update(ctx context.Context, id string, p model.UpdateGadgetParams) *model.Gadget {
	oid, ok := parseID(id)
	if !ok {
		return nil
	}

	db, err := g.store.Acquire(ctx)
	if err != nil {
		g.log.Error("acquiring store", "op", "gadgets.update", "id", id, "error", err)
		return nil
	}

	section := p.Section
	if section == nil {
		section = p.Placement
	}
	content := p.Content
	if content == nil {
		content = p.CodeSnippet
	}

	set := bson.M{}
	if section != nil {
		set["section"] = *section
	}
	if content != nil {
		set["content"] = *content
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	if p.Order != nil {
		set["order"] = *p.Order
	}

	// Scrub stale fields from retired document shapes. The legacy
	// aliases are only dropped once their value has moved to the
	// current field name.
	unset := bson.M{
		"adType":    "",
		"imageUrl":  "",
		"linkUrl":   "",
		"altText":   "",
		"articleId": "",
	}
	if section != nil {
		unset["placement"] = ""
	}
	if content != nil {
		unset["codeSnippet"] = ""
	}

	// MongoDB rejects an empty $set document.
	update := bson.M{"$unset": unset}
	if len(set) > 0 {
		update["$set"] = set
	}

	doc, err := db.Collection(colGadgets).FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, false)
	if err != nil {
		g.log.Error("updating gadget", "op", "gadgets.update", "id", id, "error", err)
		return nil
	}
	return model.GadgetFromDoc(doc)
}

// Delete removes a gadget and reports whether exactly one document
// was removed.
func (g *Gadgets) Delete(ctx context.Context, id string) bool {
	oid, ok := parseID(id)
	if !ok {
		return false
	}

	db, err := g.store.Acquire(ctx)
	if err != nil {
		g.log.Error("acquiring store", "op", "gadgets.delete", "id", id, "error", err)
		return false
	}

	deleted, err := db.Collection(colGadgets).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		g.log.Error("deleting gadget", "op", "gadgets.delete", "id", id, "error", err)
		return false
	}
	return deleted == 1
}

// UsedSections returns every layout section that currently has a
// gadget assigned, across both the current and legacy field names.
func (g *Gadgets) UsedSections(ctx context.Context) []string {
	db, err := g.store.Acquire(ctx)
	if err != nil {
		g.log.Error("acquiring store", "op", "gadgets.usedSections", "error", err)
		return []string{}
	}

	coll := db.Collection(colGadgets)
	sections, err := coll.Distinct(ctx, "section", bson.M{})
	if err != nil {
		g.log.Error("listing sections", "op", "gadgets.usedSections", "error", err)
		return []string{}
	}
	placements, err := coll.Distinct(ctx, "placement", bson.M{})
	if err != nil {
		g.log.Error("listing legacy placements", "op", "gadgets.usedSections", "error", err)
		return []string{}
	}

	seen := map[string]bool{}
	out := []string{}
	for _, v := range append(sections, placements...) {
		s, ok := v.(string)
		if !ok || s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func mapGadgets(docs []bson.M) []model.Gadget {
	gadgets := make([]model.Gadget, 0, len(docs))
	for _, doc := range docs {
		gadgets = append(gadgets, *model.GadgetFromDoc(doc))
	}
	return gadgets
}
