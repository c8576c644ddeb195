package ports

import "go.trai.ch/eagroute/internal/core/domain"

// Invalidator marks cached resources stale and schedules their refetch.
//
//go:generate mockgen -source=invalidator.go -destination=mocks/mock_invalidator.go -package=mocks
type Invalidator interface {
	// Invalidate marks key and every key it covers stale. It does not block on the refetch.
	Invalidate(key domain.Key)
}
