// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/samay-barta/internal/model"
)

// ListRoles handles GET /roles.
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles := h.roles.List(r.Context())
	WriteSuccess(w, roles, &Meta{Total: len(roles)})
}

// GetRole handles GET /roles/{id}.
func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	role := h.roles.GetByID(r.Context(), chi.URLParam(r, "id"))
	if role == nil {
		WriteNotFound(w, "Role not found")
		return
	}
	WriteSuccess(w, role, nil)
}

// CreateRole handles POST /roles.
func (h *Handler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var params model.CreateRoleParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Name == "" {
		WriteBadRequest(w, "Name is required")
		return
	}

	role := h.roles.Create(r.Context(), params)
	if role == nil {
		WriteInternalError(w, "Could not create role")
		return
	}
	WriteCreated(w, role)
}

// UpdateRole handles PUT /roles/{id}.
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var params model.UpdateRoleParams
	if !decodeBody(w, r, &params) {
		return
	}

	role := h.roles.Update(r.Context(), chi.URLParam(r, "id"), params)
	if role == nil {
		WriteNotFound(w, "Role not found")
		return
	}
	WriteSuccess(w, role, nil)
}

// DeleteRole handles DELETE /roles/{id}. Deleting a role also removes
// it from every user that carried it.
func (h *Handler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if !h.roles.Delete(r.Context(), chi.URLParam(r, "id")) {
		WriteNotFound(w, "Role not found")
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}
