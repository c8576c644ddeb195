// Package store implements the synchronization store: the single owner of
// cached backend resources, their refresh schedule and their staleness.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resource describes how one key is loaded.
type Resource struct {
	Family domain.Family
	Fetch  func(ctx context.Context) (any, error)
	Policy domain.Policy
}

// Source resolves keys to resources.
type Source interface {
	Resolve(key domain.Key) (Resource, error)
}

// Option configures a Store.
type Option func(*Store)

// WithRetry sets the retry policy applied to every triggered fetch.
func WithRetry(retry domain.RetrySettings) Option {
	return func(s *Store) {
		s.retry = retry
	}
}

var _ ports.Invalidator = (*Store)(nil)

// Store caches backend resources by key.
type Store struct {
	source Source
	logger ports.Logger
	tracer ports.Tracer
	retry  domain.RetrySettings

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	slots     map[domain.Key]*slot
	listeners map[uint64]func(domain.Key)
	nextID    uint64
	closed    bool
}

// slot is the mutable state behind one key. Guarded by Store.mu.
type slot struct {
	key      domain.Key
	resource Resource

	entry    domain.Entry
	inflight *call
	issued   uint64
	// settled is the highest sequence number whose outcome has been handled.
	settled uint64
	// staleSeq is the first sequence number issued after the latest invalidation.
	staleSeq uint64

	subs     map[*Subscription]struct{}
	stopPoll context.CancelFunc
}

// call is one fetch. Joiners wait on done.
type call struct {
	seq  uint64
	done chan struct{}
	err  error
}

// New creates a Store. Close must be called to stop background fetches.
func New(source Source, logger ports.Logger, tracer ports.Tracer, opts ...Option) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		source: source,
		logger: logger,
		tracer: tracer,
		retry: domain.RetrySettings{
			Attempts:        domain.DefaultFetchAttempts,
			InitialInterval: domain.DefaultRetryInitial,
			MaxInterval:     domain.DefaultRetryMax,
		},
		ctx:       ctx,
		cancel:    cancel,
		slots:     make(map[domain.Key]*slot),
		listeners: make(map[uint64]func(domain.Key)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the current snapshot of key without triggering a fetch.
// A fresh entry older than its stale-after window reads as stale.
func (s *Store) Read(key domain.Key) domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl, ok := s.slots[key]
	if !ok {
		return domain.Entry{Key: key, Status: domain.StatusIdle}
	}
	return snapshot(sl, time.Now())
}

func snapshot(sl *slot, now time.Time) domain.Entry {
	e := sl.entry
	stale := sl.resource.Policy.StaleAfter
	if e.Status == domain.StatusFresh && stale > 0 && now.Sub(e.FetchedAt) > stale {
		e.Status = domain.StatusStale
	}
	return e
}

// Get returns a fresh entry for key, fetching it when the cached one is
// missing, stale or errored. Concurrent callers share one fetch unless it
// was issued before the latest Invalidate of key.
func (s *Store) Get(ctx context.Context, key domain.Key) (domain.Entry, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.Entry{Key: key}, domain.ErrStoreClosed
	}
	sl, err := s.slotLocked(key)
	if err != nil {
		s.mu.Unlock()
		return domain.Entry{Key: key}, err
	}
	if e := snapshot(sl, time.Now()); e.Status == domain.StatusFresh {
		s.mu.Unlock()
		return e, nil
	}
	// A call issued before the latest invalidation cannot settle fresh.
	c := sl.inflight
	if c == nil || c.seq < sl.staleSeq {
		c = s.startLocked(sl)
	}
	s.mu.Unlock()
	s.notify(key)

	select {
	case <-c.done:
	case <-ctx.Done():
		return s.Read(key), ctx.Err()
	}
	return s.Read(key), c.err
}

// Fetch waits for key like Get and returns its value as T.
func Fetch[T any](ctx context.Context, s *Store, key domain.Key) (T, error) {
	var zero T
	entry, err := s.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	v, ok := domain.ValueOf[T](entry)
	if !ok {
		return zero, zerr.With(zerr.With(domain.ErrUnexpectedValue, "key", string(key)), "type", fmt.Sprintf("%T", entry.Value))
	}
	return v, nil
}

// Subscribe registers interest in key. The first subscriber starts periodic
// fetching; a fetch is issued immediately unless one is already in flight.
func (s *Store) Subscribe(key domain.Key) (*Subscription, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, domain.ErrStoreClosed
	}
	sl, err := s.slotLocked(key)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	sub := &Subscription{store: s, key: key, updates: make(chan struct{}, 1)}
	sl.subs[sub] = struct{}{}
	if len(sl.subs) == 1 {
		s.startPollLocked(sl)
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
	return sub, nil
}

// Invalidate marks key and every key it covers as stale. Keys with
// subscribers are refetched at once, superseding any fetch in flight.
// Unobserved keys are refetched on their next Get.
func (s *Store) Invalidate(key domain.Key) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	var touched []domain.Key
	for k, sl := range s.slots {
		if !key.Covers(k) {
			continue
		}
		s.markStaleLocked(sl)
		if len(sl.subs) > 0 {
			s.startLocked(sl)
		}
		touched = append(touched, k)
	}
	s.mu.Unlock()

	s.logger.Debug(fmt.Sprintf("invalidated %s (%d cached keys)", key, len(touched)))
	for _, k := range touched {
		s.notify(k)
	}
}

// Refetch marks key stale and fetches it now, whether or not it is observed.
func (s *Store) Refetch(key domain.Key) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	sl, err := s.slotLocked(key)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.markStaleLocked(sl)
	s.startLocked(sl)
	s.mu.Unlock()

	s.notify(key)
	return nil
}

// ApplyPolicies replaces the policy of every cached key whose family appears
// in policies. Pollers of observed keys restart with the new interval.
func (s *Store) ApplyPolicies(policies map[domain.Family]domain.Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for _, sl := range s.slots {
		p, ok := policies[sl.resource.Family]
		if !ok || p == sl.resource.Policy {
			continue
		}
		interval := sl.resource.Policy.RefetchInterval
		sl.resource.Policy = p
		if len(sl.subs) > 0 && interval != p.RefetchInterval {
			s.stopPollLocked(sl)
			s.startPollLocked(sl)
		}
	}
}

// Listen registers fn to be called with every key whose entry changed.
// Calls happen outside the store lock, on the goroutine that made the change.
func (s *Store) Listen(fn func(domain.Key)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Close stops every poller, waits for running fetches and closes every
// subscription's update channel.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, sl := range s.slots {
		s.stopPollLocked(sl)
		for sub := range sl.subs {
			close(sub.updates)
		}
		clear(sl.subs)
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// slotLocked returns the slot for key, creating it on first use.
func (s *Store) slotLocked(key domain.Key) (*slot, error) {
	if sl, ok := s.slots[key]; ok {
		return sl, nil
	}
	res, err := s.source.Resolve(key)
	if err != nil {
		return nil, err
	}
	sl := &slot{
		key:      key,
		resource: res,
		entry:    domain.Entry{Key: key, Status: domain.StatusIdle},
		subs:     make(map[*Subscription]struct{}),
	}
	s.slots[key] = sl
	return sl, nil
}

func (s *Store) markStaleLocked(sl *slot) {
	sl.staleSeq = sl.issued + 1
	if sl.entry.HasValue && sl.entry.Status == domain.StatusFresh {
		sl.entry.Status = domain.StatusStale
	}
}

// startLocked issues a new fetch for sl. A call already in flight keeps
// running, but its result is discarded if this one settles first.
func (s *Store) startLocked(sl *slot) *call {
	sl.issued++
	c := &call{seq: sl.issued, done: make(chan struct{})}
	sl.inflight = c
	sl.entry.Fetching = true
	if sl.entry.Status == domain.StatusIdle {
		sl.entry.Status = domain.StatusLoading
	}
	s.logger.Debug(fmt.Sprintf("fetch %s issued (seq %d)", sl.key, c.seq))

	s.wg.Add(1)
	go s.run(sl.key, sl.resource.Fetch, c)
	return c
}

func (s *Store) run(key domain.Key, fetch func(context.Context) (any, error), c *call) {
	defer s.wg.Done()

	ctx, span := s.tracer.Start(s.ctx, "fetch "+string(key),
		ports.WithAttribute("resource.key", string(key)),
		ports.WithAttribute("fetch.seq", c.seq),
	)
	val, err := s.fetchWithRetry(ctx, key, fetch)
	if err != nil {
		span.RecordError(err)
	}
	span.End()

	s.complete(key, c, val, err)
}

func (s *Store) fetchWithRetry(ctx context.Context, key domain.Key, fetch func(context.Context) (any, error)) (any, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.InitialInterval
	b.MaxInterval = s.retry.MaxInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.Reset()

	attempts := max(s.retry.Attempts, 1)

	val, err := backoff.Retry(ctx, func() (any, error) {
		v, err := fetch(ctx)
		if err == nil {
			return v, nil
		}
		var serverErr *domain.ServerError
		if errors.As(err, &serverErr) && serverErr.Permanent() {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(attempts)), //nolint:gosec // attempts is at least 1
		backoff.WithNotify(func(err error, next time.Duration) {
			s.logger.Debug(fmt.Sprintf("fetch %s failed, retrying in %s: %v", key, next, err))
		}),
	)

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	return val, err
}

func (s *Store) complete(key domain.Key, c *call, val any, err error) {
	s.mu.Lock()
	c.err = err

	sl := s.slots[key]
	if s.closed || sl == nil {
		close(c.done)
		s.mu.Unlock()
		return
	}
	if sl.inflight == c {
		sl.inflight = nil
		sl.entry.Fetching = false
	}

	switch {
	case c.seq <= sl.settled:
		s.logger.Debug(fmt.Sprintf("fetch %s response discarded (seq %d superseded by %d)", key, c.seq, sl.settled))
	case err != nil && sl.inflight != nil:
		sl.settled = c.seq
		s.logger.Debug(fmt.Sprintf("fetch %s failed while seq %d is in flight: %v", key, sl.inflight.seq, err))
	case err != nil:
		sl.settled = c.seq
		sl.entry.Status = domain.StatusErrored
		sl.entry.Err = err
		sl.entry.Failures++
		s.logger.Warn(fmt.Sprintf("fetch %s failed after retries: %v", key, err))
	default:
		sl.settled = c.seq
		sl.entry.Value = val
		sl.entry.HasValue = true
		sl.entry.FetchedAt = time.Now()
		sl.entry.Err = nil
		sl.entry.Failures = 0
		sl.entry.Seq = c.seq
		sl.entry.Status = domain.StatusFresh
		if c.seq < sl.staleSeq {
			sl.entry.Status = domain.StatusStale
		}
	}
	close(c.done)
	s.mu.Unlock()

	s.notify(key)
}

// notify wakes subscriptions of key and calls every listener.
func (s *Store) notify(key domain.Key) {
	s.mu.Lock()
	if sl, ok := s.slots[key]; ok {
		for sub := range sl.subs {
			select {
			case sub.updates <- struct{}{}:
			default:
			}
		}
	}
	listeners := make([]func(domain.Key), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(key)
	}
}
