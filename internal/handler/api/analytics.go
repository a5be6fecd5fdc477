// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"
)

const defaultTopAuthors = 5

// Dashboard handles GET /analytics/dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.analytics.Dashboard(r.Context()), nil)
}

// TopAuthors handles GET /analytics/top-authors?limit=N.
func (h *Handler) TopAuthors(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopAuthors
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteBadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}

	activity := h.analytics.TopUserPostActivity(r.Context(), limit)
	WriteSuccess(w, activity, &Meta{Total: len(activity)})
}
