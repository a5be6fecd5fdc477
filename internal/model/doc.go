// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain entities of the news CMS and the
// mapping functions that translate raw MongoDB documents into them.
//
// Stored documents predate the current schema in places, so mapping
// applies a small alias table instead of assuming one document shape:
//
//	gadget:  section  <- section, falling back to legacy "placement"
//	gadget:  content  <- content, falling back to legacy "codeSnippet"
//	user:    isActive <- defaults to true when absent
//	user:    updatedAt <- falls back to createdAt when absent
//	role:    updatedAt <- falls back to createdAt when absent
//
// Date-typed fields may be stored as native BSON dates, time.Time or
// RFC 3339 strings; every mapper normalizes them to time.Time in UTC.
// All mappers return nil for a nil document and never panic.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// docID renders a document _id as a string. Most collections use
// ObjectIDs; the SEO settings singleton uses a fixed string key.
func docID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	}
	return ""
}

// docString returns the string value of a document field, or "".
func docString(v any) string {
	s, _ := v.(string)
	return s
}

// docBool returns the boolean value of a document field, or def when
// the field is absent or not a boolean.
func docBool(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// docInt tolerates the integer widths the driver may decode into.
func docInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

// docTime normalizes a stored date to UTC regardless of whether the
// source kept a native date or a string.
func docTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case primitive.DateTime:
		return t.Time().UTC()
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

// docStringSlice returns a field as a string slice, never nil.
func docStringSlice(v any) []string {
	out := []string{}
	switch list := v.(type) {
	case []string:
		out = append(out, list...)
	case bson.A:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
