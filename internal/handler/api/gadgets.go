// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/samay-barta/internal/model"
)

// ListGadgets handles GET /gadgets.
func (h *Handler) ListGadgets(w http.ResponseWriter, r *http.Request) {
	gadgets := h.gadgets.List(r.Context())
	WriteSuccess(w, gadgets, &Meta{Total: len(gadgets)})
}

// ListActiveGadgets handles GET /gadgets/active?section=...
// This is the endpoint the public site renders from.
func (h *Handler) ListActiveGadgets(w http.ResponseWriter, r *http.Request) {
	section := r.URL.Query().Get("section")
	if section == "" {
		WriteBadRequest(w, "section query parameter is required")
		return
	}
	gadgets := h.gadgets.ListActiveBySection(r.Context(), section)
	WriteSuccess(w, gadgets, &Meta{Total: len(gadgets)})
}

// UsedSections handles GET /gadgets/sections.
func (h *Handler) UsedSections(w http.ResponseWriter, r *http.Request) {
	sections := h.gadgets.UsedSections(r.Context())
	WriteSuccess(w, sections, &Meta{Total: len(sections)})
}

// GetGadget handles GET /gadgets/{id}.
func (h *Handler) GetGadget(w http.ResponseWriter, r *http.Request) {
	gadget := h.gadgets.GetByID(r.Context(), chi.URLParam(r, "id"))
	if gadget == nil {
		WriteNotFound(w, "Gadget not found")
		return
	}
	WriteSuccess(w, gadget, nil)
}

// CreateGadget handles POST /gadgets.
func (h *Handler) CreateGadget(w http.ResponseWriter, r *http.Request) {
	var params model.CreateGadgetParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Section == "" {
		WriteBadRequest(w, "Section is required")
		return
	}

	gadget := h.gadgets.Create(r.Context(), params)
	if gadget == nil {
		WriteInternalError(w, "Could not create gadget")
		return
	}
	WriteCreated(w, gadget)
}

// UpdateGadget handles PUT /gadgets/{id}.
func (h *Handler) UpdateGadget(w http.ResponseWriter, r *http.Request) {
	var params model.UpdateGadgetParams
	if !decodeBody(w, r, &params) {
		return
	}

	gadget := h.gadgets.Update(r.Context(), chi.URLParam(r, "id"), params)
	if gadget == nil {
		WriteNotFound(w, "Gadget not found")
		return
	}
	WriteSuccess(w, gadget, nil)
}

// DeleteGadget handles DELETE /gadgets/{id}.
func (h *Handler) DeleteGadget(w http.ResponseWriter, r *http.Request) {
	if !h.gadgets.Delete(r.Context(), chi.URLParam(r, "id")) {
		WriteNotFound(w, "Gadget not found")
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}
