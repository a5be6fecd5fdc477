// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the REST API handlers for the CMS backend.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/samay-barta/internal/ai"
	"github.com/olegiv/samay-barta/internal/repo"
	"github.com/olegiv/samay-barta/internal/session"
	"github.com/olegiv/samay-barta/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	articles    *repo.Articles
	gadgets     *repo.Gadgets
	seo         *repo.SeoSettings
	users       *repo.Users
	roles       *repo.Roles
	permissions *repo.Permissions
	analytics   *repo.Analytics
	summarizer  *ai.Summarizer
	log         *slog.Logger
}

// NewHandler creates the API handler and wires the repositories it
// serves.
func NewHandler(st store.Acquirer, sess session.Provider, summarizer *ai.Summarizer, log *slog.Logger) *Handler {
	users := repo.NewUsers(st, log)
	roles := repo.NewRoles(st, log)
	return &Handler{
		articles:    repo.NewArticles(st, sess, log),
		gadgets:     repo.NewGadgets(st, log),
		seo:         repo.NewSeoSettings(st, log),
		users:       users,
		roles:       roles,
		permissions: repo.NewPermissions(users, roles),
		analytics:   repo.NewAnalytics(st, users, log),
		summarizer:  summarizer,
		log:         log,
	}
}

// Routes returns the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/status", h.Status)

	r.Route("/articles", func(r chi.Router) {
		r.Get("/", h.ListArticles)
		r.Post("/", h.CreateArticle)
		r.Get("/{id}", h.GetArticle)
		r.Put("/{id}", h.UpdateArticle)
		r.Delete("/{id}", h.DeleteArticle)
	})

	r.Route("/gadgets", func(r chi.Router) {
		r.Get("/", h.ListGadgets)
		r.Post("/", h.CreateGadget)
		r.Get("/active", h.ListActiveGadgets)
		r.Get("/sections", h.UsedSections)
		r.Get("/{id}", h.GetGadget)
		r.Put("/{id}", h.UpdateGadget)
		r.Delete("/{id}", h.DeleteGadget)
	})

	r.Get("/seo-settings", h.GetSeoSettings)
	r.Put("/seo-settings", h.UpdateSeoSettings)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
		r.Get("/{id}/permissions", h.UserPermissions)
		r.Get("/{id}/post-count", h.UserPostCount)
	})

	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.ListRoles)
		r.Post("/", h.CreateRole)
		r.Get("/{id}", h.GetRole)
		r.Put("/{id}", h.UpdateRole)
		r.Delete("/{id}", h.DeleteRole)
	})

	r.Get("/analytics/dashboard", h.Dashboard)
	r.Get("/analytics/top-authors", h.TopAuthors)

	r.Post("/summarize", h.Summarize)

	return r
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains list metadata.
type Meta struct {
	Total int `json:"total"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{Data: data, Meta: meta})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{Data: data})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{Status: "ok", Version: "v1"}, nil)
}

// decodeBody decodes a JSON request body into dst and reports a 400
// to the client on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return false
	}
	return true
}
