package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.trai.ch/eagroute/internal/adapters/telemetry"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports/mocks"
	"go.trai.ch/eagroute/internal/engine/store"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fakeSource struct {
	mu        sync.Mutex
	resources map[domain.Key]store.Resource
}

func newFakeSource() *fakeSource {
	return &fakeSource{resources: make(map[domain.Key]store.Resource)}
}

func (f *fakeSource) add(key domain.Key, family domain.Family, policy domain.Policy, fetch func(context.Context) (any, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resources[key] = store.Resource{Family: family, Fetch: fetch, Policy: policy}
}

func (f *fakeSource) Resolve(key domain.Key) (store.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.resources[key]
	if !ok {
		return store.Resource{}, zerr.With(domain.ErrUnknownResource, "key", string(key))
	}
	return res, nil
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func newStore(t *testing.T, src store.Source) *store.Store {
	t.Helper()
	return store.New(src, quietLogger(t), telemetry.NewNoOpTracer(), store.WithRetry(domain.RetrySettings{
		Attempts:        3,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
	}))
}

// wait blocks until ch is closed or ctx is done.
func wait(ctx context.Context, ch <-chan struct{}) error {
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
