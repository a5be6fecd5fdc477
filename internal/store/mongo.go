// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// defaultDatabase is what the MongoDB driver falls back to when the
// connection URI carries no database name in its path.
const defaultDatabase = "test"

// Manager owns the single live MongoDB connection for the process.
// The cached client survives across requests; it is only torn down
// when a liveness probe fails, in which case the next Acquire
// reconnects. Unlike the usual pool-per-call pattern this keeps one
// client for the life of the process, so repeated invocations reuse
// the same sockets.
type Manager struct {
	uri string
	log *slog.Logger

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewManager creates a Manager for the given connection URI. The URI
// is assumed to be validated already (config.Load does that at
// startup); no connection is opened until the first Acquire.
func NewManager(uri string, log *slog.Logger) *Manager {
	return &Manager{uri: uri, log: log}
}

// Acquire returns a ready-to-use database handle, reusing the cached
// connection when it is still healthy. A cached client is probed with
// a ping before reuse; on probe failure the client is discarded and a
// fresh connection is established.
func (m *Manager) Acquire(ctx context.Context) (Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		err := m.client.Ping(ctx, readpref.Primary())
		if err == nil {
			return &mongoDatabase{db: m.db}, nil
		}
		m.log.Warn("cached MongoDB connection lost, reconnecting", "error", err)
		_ = m.client.Disconnect(ctx)
		m.client = nil
		m.db = nil
	}

	if err := m.connect(ctx); err != nil {
		return nil, err
	}
	return &mongoDatabase{db: m.db}, nil
}

// connect opens a new client, verifies it with a ping, resolves the
// target database from the URI path and caches both handles.
// Called with m.mu held.
func (m *Manager) connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(m.uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("connecting to MongoDB (%s): %w", MaskURI(m.uri), err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		m.log.Error("failed to connect to MongoDB",
			"uri", MaskURI(m.uri),
			"cause", classifyConnectError(err),
			"error", err,
		)
		return fmt.Errorf("connecting to MongoDB (%s): %w", classifyConnectError(err), err)
	}

	dbName := DatabaseNameFromURI(m.uri)
	if dbName == "" {
		m.log.Warn("no database name in MongoDB URI path, using driver default",
			"default", defaultDatabase)
		dbName = defaultDatabase
	}

	m.client = client
	m.db = client.Database(dbName)
	m.log.Info("connected to MongoDB", "database", dbName)
	return nil
}

// Close disconnects the cached client, if any.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}

// DatabaseNameFromURI extracts the database name from the path
// segment of a MongoDB connection URI. Returns "" when the path is
// empty or the URI cannot be parsed.
func DatabaseNameFromURI(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	path := strings.TrimPrefix(parsed.Path, "/")
	if path == "" {
		return ""
	}
	return strings.SplitN(path, "/", 2)[0]
}

// classifyConnectError names the likely cause of a connection failure
// for diagnostics: DNS resolution, authentication, or a refused
// connection. Anything else is reported as-is.
func classifyConnectError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "no such host") || strings.Contains(msg, "cannot unmarshal DNS") || strings.Contains(msg, "lookup "):
		return "DNS resolution failed, check the cluster host in the connection string"
	case strings.Contains(msg, "auth error") || strings.Contains(msg, "authentication failed") || strings.Contains(msg, "AuthenticationFailed"):
		return "authentication failed, check the username and password in the connection string"
	case strings.Contains(msg, "connection refused"):
		return "connection refused, check that the MongoDB server is running and reachable"
	default:
		return "connection failed"
	}
}

// credentialsPattern matches the user:password section of a URI.
var credentialsPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

// MaskURI hides credentials in a connection URI so it can be logged.
func MaskURI(uri string) string {
	return credentialsPattern.ReplaceAllString(uri, "://<user>:****@")
}
