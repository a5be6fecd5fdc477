// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package ai holds the article summarization collaborator: a single
// request/response call to the OpenAI API with no retry and no state.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("ai: summarization is not configured")

const summarizePrompt = "Summarize the following news article in a concise manner:\n\n"

// Summarizer produces short summaries of article content.
type Summarizer struct {
	client  openai.Client
	model   string
	enabled bool
}

// NewSummarizer creates a Summarizer. With an empty API key the
// summarizer is disabled and Summarize returns ErrDisabled.
func NewSummarizer(apiKey string) *Summarizer {
	if apiKey == "" {
		return &Summarizer{}
	}
	return &Summarizer{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   openai.ChatModelGPT4oMini,
		enabled: true,
	}
}

// Summarize returns a brief summary of the article content.
func (s *Summarizer) Summarize(ctx context.Context, articleContent string) (string, error) {
	if !s.enabled {
		return "", ErrDisabled
	}

	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(summarizePrompt + articleContent),
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarizing article: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("summarizing article: no choices returned")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
