// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/repo"
)

// ListUsers handles GET /users. Password hashes never serialize.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users := h.users.List(r.Context())
	WriteSuccess(w, users, &Meta{Total: len(users)})
}

// GetUser handles GET /users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := h.users.GetByID(r.Context(), chi.URLParam(r, "id"))
	if user == nil {
		WriteNotFound(w, "User not found")
		return
	}
	WriteSuccess(w, user, nil)
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var params model.CreateUserParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Username == "" || params.Password == "" {
		WriteBadRequest(w, "Username and password are required")
		return
	}

	user := h.users.Create(r.Context(), params)
	if user == nil {
		WriteInternalError(w, "Could not create user")
		return
	}
	WriteCreated(w, user)
}

// UpdateUser handles PUT /users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var params model.UpdateUserParams
	if !decodeBody(w, r, &params) {
		return
	}

	user := h.users.Update(r.Context(), chi.URLParam(r, "id"), params)
	if user == nil {
		WriteNotFound(w, "User not found")
		return
	}
	WriteSuccess(w, user, nil)
}

// DeleteUser handles DELETE /users/{id}.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !h.users.Delete(r.Context(), chi.URLParam(r, "id")) {
		WriteNotFound(w, "User not found")
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// UserPermissions handles GET /users/{id}/permissions: the effective
// permission union across the user's roles.
func (h *Handler) UserPermissions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.users.GetByID(r.Context(), id) == nil {
		WriteNotFound(w, "User not found")
		return
	}
	permissions := h.permissions.Resolve(r.Context(), id)
	WriteSuccess(w, permissions, &Meta{Total: len(permissions)})
}

// UserPostCount handles GET /users/{id}/post-count?period=...
func (h *Handler) UserPostCount(w http.ResponseWriter, r *http.Request) {
	period := repo.Period(r.URL.Query().Get("period"))
	switch period {
	case repo.PeriodToday, repo.PeriodThisWeek, repo.PeriodThisMonth, repo.PeriodThisYear:
	default:
		WriteBadRequest(w, "period must be one of today, thisWeek, thisMonth, thisYear")
		return
	}

	id := chi.URLParam(r, "id")
	if h.users.GetByID(r.Context(), id) == nil {
		WriteNotFound(w, "User not found")
		return
	}

	count := h.analytics.UserPostCount(r.Context(), id, period)
	WriteSuccess(w, map[string]any{"period": period, "count": count}, nil)
}
