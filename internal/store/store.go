// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store owns the MongoDB connection lifecycle and exposes the
// narrow Database/Collection surface the repositories are built on.
// The raw driver handle never leaves this package.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Acquirer produces a ready-to-use database handle. Manager is the
// production implementation; storetest provides an in-memory one.
type Acquirer interface {
	Acquire(ctx context.Context) (Database, error)
}

// Database is the subset of a MongoDB database the repositories use.
type Database interface {
	Collection(name string) Collection
}

// Collection is the subset of collection operations the repositories
// use. FindOne and FindOneAndUpdate return a nil document (and a nil
// error) when nothing matches, so callers branch on the document
// instead of driver sentinel errors.
type Collection interface {
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, sort bson.D) ([]bson.M, error)
	FindOne(ctx context.Context, filter bson.M) (bson.M, error)
	InsertOne(ctx context.Context, doc bson.M) error
	InsertMany(ctx context.Context, docs []bson.M) (int64, error)
	FindOneAndUpdate(ctx context.Context, filter bson.M, update bson.M, upsert bool) (bson.M, error)
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
	UpdateMany(ctx context.Context, filter bson.M, update bson.M) (int64, error)
	Distinct(ctx context.Context, field string, filter bson.M) ([]any, error)
}

// mongoDatabase adapts *mongo.Database to the Database interface.
type mongoDatabase struct {
	db *mongo.Database
}

func (d *mongoDatabase) Collection(name string) Collection {
	return &mongoCollection{coll: d.db.Collection(name)}
}

// mongoCollection adapts *mongo.Collection to the Collection interface.
type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, sort bson.D) ([]bson.M, error) {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc bson.M) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

func (c *mongoCollection) InsertMany(ctx context.Context, docs []bson.M) (int64, error) {
	anyDocs := make([]any, len(docs))
	for i, d := range docs {
		anyDocs[i] = d
	}
	result, err := c.coll.InsertMany(ctx, anyDocs)
	if err != nil {
		return 0, err
	}
	return int64(len(result.InsertedIDs)), nil
}

func (c *mongoCollection) FindOneAndUpdate(ctx context.Context, filter bson.M, update bson.M, upsert bool) (bson.M, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetUpsert(upsert)

	var doc bson.M
	err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	result, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *mongoCollection) UpdateMany(ctx context.Context, filter bson.M, update bson.M) (int64, error) {
	result, err := c.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (c *mongoCollection) Distinct(ctx context.Context, field string, filter bson.M) ([]any, error) {
	return c.coll.Distinct(ctx, field, filter)
}
