// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/olegiv/samay-barta/internal/model"
)

// GetSeoSettings handles GET /seo-settings. It always succeeds: when
// no settings are stored, hardcoded defaults are returned.
func (h *Handler) GetSeoSettings(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.seo.Get(r.Context()), nil)
}

// UpdateSeoSettings handles PUT /seo-settings.
func (h *Handler) UpdateSeoSettings(w http.ResponseWriter, r *http.Request) {
	var params model.UpdateSeoSettingsParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.SiteTitle == "" {
		WriteBadRequest(w, "siteTitle is required")
		return
	}

	settings := h.seo.Update(r.Context(), params)
	if settings == nil {
		WriteInternalError(w, "Could not update SEO settings")
		return
	}
	WriteSuccess(w, settings, nil)
}
