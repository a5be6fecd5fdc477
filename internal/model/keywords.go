// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
)

// StringList is a list of strings that also accepts a single
// comma-delimited string when decoded from JSON. Older admin clients
// submit meta keywords and inline ad snippets in that legacy form;
// the split happens here, at the write path, so stored documents and
// domain entities only ever carry real collections.
type StringList []string

// UnmarshalJSON decodes either a JSON array of strings or a single
// comma-delimited string.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = SplitKeywords(raw)
	return nil
}

// SplitKeywords splits a comma-delimited keyword string, trimming
// whitespace and dropping empty entries.
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := []string{}
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
