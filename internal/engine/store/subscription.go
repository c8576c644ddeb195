package store

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/eagroute/internal/core/domain"
)

// Subscription is a live view of one key.
type Subscription struct {
	store   *Store
	key     domain.Key
	updates chan struct{}
	once    sync.Once
}

// Key returns the observed key.
func (sub *Subscription) Key() domain.Key {
	return sub.key
}

// Snapshot returns the current entry.
func (sub *Subscription) Snapshot() domain.Entry {
	return sub.store.Read(sub.key)
}

// Updates signals that the entry changed. Signals coalesce: one pending
// receive may stand for several changes. The channel is closed by Close.
func (sub *Subscription) Updates() <-chan struct{} {
	return sub.updates
}

// Close unsubscribes. The last subscriber of a key stops its poller.
func (sub *Subscription) Close() {
	sub.once.Do(func() {
		s := sub.store
		s.mu.Lock()
		defer s.mu.Unlock()

		sl, ok := s.slots[sub.key]
		if !ok {
			return
		}
		if _, ok := sl.subs[sub]; !ok {
			return
		}
		delete(sl.subs, sub)
		close(sub.updates)
		if len(sl.subs) == 0 {
			s.stopPollLocked(sl)
		}
	})
}

func (s *Store) startPollLocked(sl *slot) {
	interval := sl.resource.Policy.RefetchInterval
	if interval <= 0 || sl.stopPoll != nil {
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	sl.stopPoll = cancel

	s.wg.Add(1)
	go s.poll(ctx, sl.key, interval)
}

func (s *Store) stopPollLocked(sl *slot) {
	if sl.stopPoll != nil {
		sl.stopPoll()
		sl.stopPoll = nil
	}
}

// poll issues a fetch every interval unless one is already in flight.
func (s *Store) poll(ctx context.Context, key domain.Key, interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		sl, ok := s.slots[key]
		if s.closed || !ok || ctx.Err() != nil {
			s.mu.Unlock()
			return
		}
		started := false
		if sl.inflight == nil {
			s.startLocked(sl)
			started = true
		}
		s.mu.Unlock()

		if started {
			s.notify(key)
		}
	}
}
