// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"

	"github.com/olegiv/samay-barta/internal/ai"
)

// SummarizeRequest is the request body for POST /summarize.
type SummarizeRequest struct {
	Content string `json:"content"`
}

// SummarizeResponse carries the generated summary.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// Summarize handles POST /summarize. Returns 503 when no AI API key
// is configured.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Content == "" {
		WriteBadRequest(w, "content is required")
		return
	}

	summary, err := h.summarizer.Summarize(r.Context(), req.Content)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			WriteError(w, http.StatusServiceUnavailable, "ai_disabled", "Summarization is not configured")
			return
		}
		h.log.Error("summarizing article", "error", err)
		WriteInternalError(w, "Could not summarize content")
		return
	}
	WriteSuccess(w, SummarizeResponse{Summary: summary}, nil)
}
