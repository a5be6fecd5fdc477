// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package ai

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/require"
)

// stubTransport answers every request with a fixed JSON body, so the
// client path can be exercised without a live API.
type stubTransport struct {
	body string
}

func (s stubTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Request:    r,
	}, nil
}

func stubSummarizer(body string) *Summarizer {
	return &Summarizer{
		client: openai.NewClient(
			option.WithAPIKey("test-key"),
			option.WithHTTPClient(&http.Client{Transport: stubTransport{body: body}}),
		),
		model:   openai.ChatModelGPT4oMini,
		enabled: true,
	}
}

func TestSummarize_Disabled(t *testing.T) {
	s := NewSummarizer("")

	_, err := s.Summarize(context.Background(), "some article content")
	require.ErrorIs(t, err, ErrDisabled)
}

func TestSummarize(t *testing.T) {
	s := stubSummarizer(`{"choices":[{"message":{"content":"  A short summary.  "}}]}`)

	got, err := s.Summarize(context.Background(), "a long article body")
	require.NoError(t, err)
	require.Equal(t, "A short summary.", got)
}

func TestSummarize_NoChoices(t *testing.T) {
	s := stubSummarizer(`{"choices":[]}`)

	_, err := s.Summarize(context.Background(), "a long article body")
	require.Error(t, err)
}
