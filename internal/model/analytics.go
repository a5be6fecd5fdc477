// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// VisitorStats is a placeholder for visitor tracking, which is not
// yet instrumented. All values are fixed zeros.
type VisitorStats struct {
	Today     int64 `json:"today"`
	ActiveNow int64 `json:"activeNow"`
	ThisWeek  int64 `json:"thisWeek"`
	ThisMonth int64 `json:"thisMonth"`
	LastMonth int64 `json:"lastMonth"`
}

// UserPostActivity counts the articles a user authored in the three
// reporting windows.
type UserPostActivity struct {
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	PostsToday     int64  `json:"postsToday"`
	PostsThisWeek  int64  `json:"postsThisWeek"`
	PostsThisMonth int64  `json:"postsThisMonth"`
}

// DashboardAnalytics is the read-only projection backing the admin
// dashboard. It is derived on demand and never persisted.
type DashboardAnalytics struct {
	TotalArticles    int64              `json:"totalArticles"`
	ArticlesToday    int64              `json:"articlesToday"`
	TotalUsers       int64              `json:"totalUsers"`
	ActiveGadgets    int64              `json:"activeGadgets"`
	VisitorStats     VisitorStats       `json:"visitorStats"`
	UserPostActivity []UserPostActivity `json:"userPostActivity"`
}
