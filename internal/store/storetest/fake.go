// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package storetest provides an in-memory store.Database for
// repository tests. It understands exactly the query and update
// operators the repositories emit ($or, $gte, $lte, $lt, $set, $pull,
// upserts, multi-key sorts) and counts every store access per
// collection, so tests can assert that an operation never touched the
// store at all.
package storetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/olegiv/samay-barta/internal/store"
)

// DB is an in-memory store.Database and store.Acquirer.
type DB struct {
	mu          sync.Mutex
	collections map[string]*collection

	// AcquireErr, when set, makes Acquire fail. Simulates an
	// unreachable store.
	AcquireErr error
}

type collection struct {
	docs     []bson.M
	accesses int
	err      error
}

// New creates an empty in-memory database.
func New() *DB {
	return &DB{collections: make(map[string]*collection)}
}

// Acquire implements store.Acquirer.
func (d *DB) Acquire(_ context.Context) (store.Database, error) {
	if d.AcquireErr != nil {
		return nil, d.AcquireErr
	}
	return d, nil
}

// Collection implements store.Database.
func (d *DB) Collection(name string) store.Collection {
	return &fakeCollection{db: d, name: name}
}

// Seed inserts documents directly, without counting store accesses.
func (d *DB) Seed(name string, docs ...bson.M) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := d.coll(name)
	for _, doc := range docs {
		c.docs = append(c.docs, cloneDoc(doc))
	}
}

// Docs returns a snapshot of a collection's documents.
func (d *DB) Docs(name string) []bson.M {
	d.mu.Lock()
	defer d.mu.Unlock()
	c := d.coll(name)
	out := make([]bson.M, len(c.docs))
	for i, doc := range c.docs {
		out[i] = cloneDoc(doc)
	}
	return out
}

// AccessCount reports how many store operations touched a collection.
func (d *DB) AccessCount(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.coll(name).accesses
}

// FailCollection makes every subsequent operation on the named
// collection return err. Pass nil to clear.
func (d *DB) FailCollection(name string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.coll(name).err = err
}

// coll returns the named collection, creating it if needed.
// Called with d.mu held.
func (d *DB) coll(name string) *collection {
	c, ok := d.collections[name]
	if !ok {
		c = &collection{}
		d.collections[name] = c
	}
	return c
}

// fakeCollection routes operations to the shared DB state.
type fakeCollection struct {
	db   *DB
	name string
}

// enter records an access and returns the collection plus any
// injected error. Called with d.mu NOT held; it takes the lock, which
// the caller must release.
func (f *fakeCollection) enter() (*collection, error) {
	f.db.mu.Lock()
	c := f.db.coll(f.name)
	c.accesses++
	return c, c.err
}

func (f *fakeCollection) CountDocuments(_ context.Context, filter bson.M) (int64, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, doc := range c.docs {
		if match(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeCollection) Find(_ context.Context, filter bson.M, sortSpec bson.D) ([]bson.M, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	var out []bson.M
	for _, doc := range c.docs {
		if match(doc, filter) {
			out = append(out, cloneDoc(doc))
		}
	}
	sortDocs(out, sortSpec)
	return out, nil
}

func (f *fakeCollection) FindOne(_ context.Context, filter bson.M) (bson.M, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for _, doc := range c.docs {
		if match(doc, filter) {
			return cloneDoc(doc), nil
		}
	}
	return nil, nil
}

func (f *fakeCollection) InsertOne(_ context.Context, doc bson.M) error {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return err
	}
	c.docs = append(c.docs, cloneDoc(doc))
	return nil
}

func (f *fakeCollection) InsertMany(_ context.Context, docs []bson.M) (int64, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return 0, err
	}
	for _, doc := range docs {
		c.docs = append(c.docs, cloneDoc(doc))
	}
	return int64(len(docs)), nil
}

func (f *fakeCollection) FindOneAndUpdate(_ context.Context, filter bson.M, update bson.M, upsert bool) (bson.M, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	for _, doc := range c.docs {
		if match(doc, filter) {
			applyUpdate(doc, update)
			return cloneDoc(doc), nil
		}
	}
	if !upsert {
		return nil, nil
	}
	doc := bson.M{}
	for k, v := range filter {
		if _, isOp := v.(bson.M); !isOp && k != "$or" {
			doc[k] = v
		}
	}
	applyUpdate(doc, update)
	c.docs = append(c.docs, doc)
	return cloneDoc(doc), nil
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return 0, err
	}
	for i, doc := range c.docs {
		if match(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCollection) UpdateMany(_ context.Context, filter bson.M, update bson.M) (int64, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return 0, err
	}
	var n int64
	for _, doc := range c.docs {
		if match(doc, filter) {
			applyUpdate(doc, update)
			n++
		}
	}
	return n, nil
}

func (f *fakeCollection) Distinct(_ context.Context, field string, filter bson.M) ([]any, error) {
	c, err := f.enter()
	defer f.db.mu.Unlock()
	if err != nil {
		return nil, err
	}
	seen := map[any]bool{}
	var out []any
	for _, doc := range c.docs {
		if !match(doc, filter) {
			continue
		}
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

// match reports whether a document satisfies a filter.
func match(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		if key == "$or" {
			if !matchOr(doc, want) {
				return false
			}
			continue
		}
		got := doc[key]
		if ops, ok := want.(bson.M); ok {
			if !matchOps(got, ops) {
				return false
			}
			continue
		}
		if !equalOrContains(got, want) {
			return false
		}
	}
	return true
}

func matchOr(doc bson.M, clauses any) bool {
	list, ok := clauses.([]bson.M)
	if !ok {
		return false
	}
	for _, clause := range list {
		if match(doc, clause) {
			return true
		}
	}
	return false
}

func matchOps(got any, ops bson.M) bool {
	for op, want := range ops {
		cmp, ok := compare(got, want)
		if !ok {
			return false
		}
		switch op {
		case "$gte":
			if cmp < 0 {
				return false
			}
		case "$gt":
			if cmp <= 0 {
				return false
			}
		case "$lte":
			if cmp > 0 {
				return false
			}
		case "$lt":
			if cmp >= 0 {
				return false
			}
		case "$eq":
			if cmp != 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// equalOrContains implements MongoDB equality: a filter value matches
// either the field itself or any element of an array field.
func equalOrContains(got, want any) bool {
	switch list := got.(type) {
	case []string:
		for _, item := range list {
			if item == want {
				return true
			}
		}
		return false
	case bson.A:
		for _, item := range list {
			if item == want {
				return true
			}
		}
		return false
	case []any:
		for _, item := range list {
			if item == want {
				return true
			}
		}
		return false
	}
	if cmp, ok := compare(got, want); ok {
		return cmp == 0
	}
	return got == want
}

// compare orders two values of the same kind: times, numbers or
// strings. The second return is false for incomparable values.
func compare(a, b any) (int, bool) {
	if at, ok := asTime(a); ok {
		bt, ok := asTime(b)
		if !ok {
			return 0, false
		}
		switch {
		case at.Before(bt):
			return -1, true
		case at.After(bt):
			return 1, true
		}
		return 0, true
	}
	if af, ok := asFloat(a); ok {
		bf, ok := asFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		}
		return 0, true
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case as < bs:
			return -1, true
		case as > bs:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func asTime(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// applyUpdate applies $set and $pull in place.
func applyUpdate(doc bson.M, update bson.M) {
	if set, ok := update["$set"].(bson.M); ok {
		for k, v := range set {
			doc[k] = v
		}
	}
	if pull, ok := update["$pull"].(bson.M); ok {
		for field, value := range pull {
			doc[field] = removeElement(doc[field], value)
		}
	}
	if unset, ok := update["$unset"].(bson.M); ok {
		for k := range unset {
			delete(doc, k)
		}
	}
}

func removeElement(field, value any) any {
	switch list := field.(type) {
	case []string:
		out := []string{}
		for _, item := range list {
			if item != value {
				out = append(out, item)
			}
		}
		return out
	case bson.A:
		out := bson.A{}
		for _, item := range list {
			if item != value {
				out = append(out, item)
			}
		}
		return out
	}
	return field
}

// sortDocs sorts documents by a multi-key sort specification where
// 1 is ascending and -1 descending.
func sortDocs(docs []bson.M, spec bson.D) {
	if len(spec) == 0 {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, key := range spec {
			cmp, ok := compare(docs[i][key.Key], docs[j][key.Key])
			if !ok || cmp == 0 {
				continue
			}
			if dir, _ := asFloat(key.Value); dir < 0 {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
