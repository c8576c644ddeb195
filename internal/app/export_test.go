package app

import (
	"context"

	"go.trai.ch/eagroute/internal/core/domain"
)

// OpenSession exposes open for testing.
func OpenSession(a *App, settings *domain.Settings) (*Session, error) {
	return a.open(settings)
}

// WatchSettings exposes watchSettings for testing.
func WatchSettings(ctx context.Context, a *App, path string, sess *Session) error {
	return a.watchSettings(ctx, path, sess)
}
