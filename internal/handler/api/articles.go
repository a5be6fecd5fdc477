// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/repo"
)

// ListArticles handles GET /articles.
// Optional query parameters: author, startDate, endDate. Dates accept
// RFC 3339 or plain YYYY-MM-DD; the range is inclusive.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	params := repo.ListArticlesParams{AuthorID: r.URL.Query().Get("author")}

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		t, err := parseDateParam(raw, false)
		if err != nil {
			WriteBadRequest(w, "Invalid startDate")
			return
		}
		params.StartDate = &t
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		t, err := parseDateParam(raw, true)
		if err != nil {
			WriteBadRequest(w, "Invalid endDate")
			return
		}
		params.EndDate = &t
	}

	articles := h.articles.List(r.Context(), params)
	WriteSuccess(w, articles, &Meta{Total: len(articles)})
}

// GetArticle handles GET /articles/{id}.
func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	article := h.articles.GetByID(r.Context(), chi.URLParam(r, "id"))
	if article == nil {
		WriteNotFound(w, "Article not found")
		return
	}
	WriteSuccess(w, article, nil)
}

// CreateArticle handles POST /articles.
func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var params model.CreateArticleParams
	if !decodeBody(w, r, &params) {
		return
	}
	if params.Title == "" {
		WriteBadRequest(w, "Title is required")
		return
	}

	article := h.articles.Create(r.Context(), params)
	if article == nil {
		WriteInternalError(w, "Could not create article")
		return
	}
	WriteCreated(w, article)
}

// UpdateArticle handles PUT /articles/{id}.
func (h *Handler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var params model.UpdateArticleParams
	if !decodeBody(w, r, &params) {
		return
	}

	article := h.articles.Update(r.Context(), chi.URLParam(r, "id"), params)
	if article == nil {
		WriteNotFound(w, "Article not found")
		return
	}
	WriteSuccess(w, article, nil)
}

// DeleteArticle handles DELETE /articles/{id}.
func (h *Handler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	if !h.articles.Delete(r.Context(), chi.URLParam(r, "id")) {
		WriteNotFound(w, "Article not found")
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// parseDateParam parses a date filter value. A date-only value used as
// a range end is widened to the last representable instant of that day
// so the range stays inclusive for anything stamped within it.
func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}
