// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package repo

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/olegiv/samay-barta/internal/model"
	"github.com/olegiv/samay-barta/internal/store"
)

// Analytics computes the counting and aggregation views behind the
// admin dashboard by composing repository queries.
type Analytics struct {
	store store.Acquirer
	users *Users
	log   *slog.Logger

	// now is swapped out in tests to pin the reporting windows.
	now func() time.Time
}

// NewAnalytics creates the analytics aggregator.
func NewAnalytics(st store.Acquirer, users *Users, log *slog.Logger) *Analytics {
	return &Analytics{store: st, users: users, log: log, now: time.Now}
}

// Period selects a reporting window for UserPostCount.
type Period string

// Reporting windows. Weeks start on Sunday.
const (
	PeriodToday     Period = "today"
	PeriodThisWeek  Period = "thisWeek"
	PeriodThisMonth Period = "thisMonth"
	PeriodThisYear  Period = "thisYear"
)

// ArticlesStats returns the total article count and the count of
// articles published in [start of today, start of tomorrow).
func (a *Analytics) ArticlesStats(ctx context.Context) (total, today int64) {
	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "analytics.articlesStats", "error", err)
		return 0, 0
	}
	coll := db.Collection(colArticles)

	total, err = coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		a.log.Error("counting articles", "op", "analytics.articlesStats", "error", err)
		return 0, 0
	}

	dayStart := startOfDay(a.now())
	today, err = coll.CountDocuments(ctx, bson.M{
		"publishedDate": bson.M{
			"$gte": dayStart,
			"$lt":  dayStart.AddDate(0, 0, 1),
		},
	})
	if err != nil {
		a.log.Error("counting today's articles", "op", "analytics.articlesStats", "error", err)
		return total, 0
	}
	return total, today
}

// ActiveGadgetsCount returns the number of active gadgets.
func (a *Analytics) ActiveGadgetsCount(ctx context.Context) int64 {
	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "analytics.activeGadgets", "error", err)
		return 0
	}

	count, err := db.Collection(colGadgets).CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		a.log.Error("counting active gadgets", "op", "analytics.activeGadgets", "error", err)
		return 0
	}
	return count
}

// Dashboard composes the article stats, the user total, the active
// gadget count and the top author activity into the dashboard
// projection. Visitor statistics are a fixed placeholder: visitor
// tracking is not instrumented yet.
func (a *Analytics) Dashboard(ctx context.Context) model.DashboardAnalytics {
	total, today := a.ArticlesStats(ctx)
	users := a.users.List(ctx)

	return model.DashboardAnalytics{
		TotalArticles:    total,
		ArticlesToday:    today,
		TotalUsers:       int64(len(users)),
		ActiveGadgets:    a.ActiveGadgetsCount(ctx),
		VisitorStats:     model.VisitorStats{},
		UserPostActivity: a.TopUserPostActivity(ctx, 5),
	}
}

// TopUserPostActivity counts each user's articles for today, this
// week and this month, drops users with no activity in any window,
// sorts by month then week then today (all descending) and truncates
// to limit. This fans out three count queries per user, which is fine
// at the current user counts.
func (a *Analytics) TopUserPostActivity(ctx context.Context, limit int) []model.UserPostActivity {
	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "analytics.topUserActivity", "error", err)
		return []model.UserPostActivity{}
	}
	coll := db.Collection(colArticles)

	now := a.now()
	dayStart := startOfDay(now)
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	countSince := func(authorID string, since time.Time) int64 {
		count, err := coll.CountDocuments(ctx, bson.M{
			"authorId":      authorID,
			"publishedDate": bson.M{"$gte": since},
		})
		if err != nil {
			a.log.Error("counting author articles", "op", "analytics.topUserActivity",
				"id", authorID, "error", err)
			return 0
		}
		return count
	}

	activity := []model.UserPostActivity{}
	for _, user := range a.users.List(ctx) {
		if user.ID == "" {
			continue
		}
		entry := model.UserPostActivity{
			UserID:         user.ID,
			Username:       user.Username,
			PostsToday:     countSince(user.ID, dayStart),
			PostsThisWeek:  countSince(user.ID, weekStart),
			PostsThisMonth: countSince(user.ID, monthStart),
		}
		if entry.PostsToday > 0 || entry.PostsThisWeek > 0 || entry.PostsThisMonth > 0 {
			activity = append(activity, entry)
		}
	}

	sort.SliceStable(activity, func(i, j int) bool {
		if activity[i].PostsThisMonth != activity[j].PostsThisMonth {
			return activity[i].PostsThisMonth > activity[j].PostsThisMonth
		}
		if activity[i].PostsThisWeek != activity[j].PostsThisWeek {
			return activity[i].PostsThisWeek > activity[j].PostsThisWeek
		}
		return activity[i].PostsToday > activity[j].PostsToday
	})

	if limit > 0 && len(activity) > limit {
		activity = activity[:limit]
	}
	return activity
}

// UserPostCount returns the number of articles a user authored within
// the given reporting window.
func (a *Analytics) UserPostCount(ctx context.Context, userID string, period Period) int64 {
	if _, ok := parseID(userID); !ok {
		return 0
	}

	now := a.now()
	var since time.Time
	switch period {
	case PeriodToday:
		since = startOfDay(now)
	case PeriodThisWeek:
		since = startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	case PeriodThisMonth:
		since = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodThisYear:
		since = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return 0
	}

	db, err := a.store.Acquire(ctx)
	if err != nil {
		a.log.Error("acquiring store", "op", "analytics.userPostCount", "id", userID, "error", err)
		return 0
	}

	count, err := db.Collection(colArticles).CountDocuments(ctx, bson.M{
		"authorId":      userID,
		"publishedDate": bson.M{"$gte": since},
	})
	if err != nil {
		a.log.Error("counting user articles", "op", "analytics.userPostCount", "id", userID, "error", err)
		return 0
	}
	return count
}

// startOfDay truncates a time to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
