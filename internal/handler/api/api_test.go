// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/samay-barta/internal/ai"
	"github.com/olegiv/samay-barta/internal/session"
	"github.com/olegiv/samay-barta/internal/store/storetest"
)

func newTestServer(t *testing.T) (chi.Router, *storetest.DB) {
	t.Helper()
	db := storetest.New()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(db, session.ContextProvider{}, ai.NewSummarizer(""), log)
	return h.Routes(), db
}

func doRequest(t *testing.T, router chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestArticleCreateAndFetch(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodPost, "/articles",
		`{"title":"Flood Warning Issued","category":"National","metaKeywords":"flood, warning"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data struct {
			ID           string   `json:"id"`
			Title        string   `json:"title"`
			MetaKeywords []string `json:"metaKeywords"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding create response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("created article has no id")
	}
	// Comma-delimited keyword strings from legacy clients are split.
	if len(created.Data.MetaKeywords) != 2 || created.Data.MetaKeywords[0] != "flood" {
		t.Errorf("metaKeywords = %v, want [flood warning]", created.Data.MetaKeywords)
	}

	rec = doRequest(t, router, http.MethodGet, "/articles/"+created.Data.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/articles/000000000000000000000000", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get unknown status = %d, want 404", rec.Code)
	}
}

func TestParseDateParam(t *testing.T) {
	// An RFC 3339 value passes through untouched, even as a range end.
	got, err := parseDateParam("2025-03-05T10:30:00Z", true)
	if err != nil {
		t.Fatalf("parseDateParam: %v", err)
	}
	if !got.Equal(time.Date(2025, 3, 5, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("RFC 3339 value = %v", got)
	}

	// A date-only range end covers the whole day, including its last
	// instant.
	got, err = parseDateParam("2025-03-05", true)
	if err != nil {
		t.Fatalf("parseDateParam: %v", err)
	}
	lastInstant := time.Date(2025, 3, 5, 23, 59, 59, 999999999, time.UTC)
	if got.Before(lastInstant) {
		t.Errorf("end of day = %v, excludes %v", got, lastInstant)
	}
	if !got.Before(time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end of day = %v, spills into the next day", got)
	}

	if _, err := parseDateParam("03/05/2025", false); err == nil {
		t.Error("unrecognized format accepted")
	}
}

func TestArticleCreateRequiresTitle(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodPost, "/articles", `{"content":"body only"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	rec = doRequest(t, router, http.MethodPost, "/articles", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", rec.Code)
	}
}

func TestActiveGadgetsRequiresSection(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/gadgets/active", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	rec = doRequest(t, router, http.MethodGet, "/gadgets/active?section=sidebar", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestSeoSettingsDefaultWithoutStore(t *testing.T) {
	router, db := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet, "/seo-settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Samay Barta Lite") {
		t.Errorf("body = %s, want default site title", rec.Body.String())
	}
	if n := len(db.Docs("seo_settings")); n != 0 {
		t.Errorf("GET persisted %d documents", n)
	}
}

func TestUserResponseHidesCredential(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodPost, "/users",
		`{"username":"rahim","email":"rahim@example.com","password":"pw-123456"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if strings.Contains(body, "pw-123456") || strings.Contains(body, "passwordHash") ||
		strings.Contains(body, "argon2id") {
		t.Errorf("credential material leaked: %s", body)
	}
}

func TestUserPostCountValidatesPeriod(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodGet,
		"/users/000000000000000000000000/post-count?period=fortnight", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSummarizeDisabledWithoutKey(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doRequest(t, router, http.MethodPost, "/summarize", `{"content":"Long article text."}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	rec = doRequest(t, router, http.MethodPost, "/summarize", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty content status = %d, want 400", rec.Code)
	}
}
