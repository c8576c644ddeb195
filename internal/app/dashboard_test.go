package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/eagroute/internal/adapters/watcher"
	"go.trai.ch/eagroute/internal/app"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.uber.org/mock/gomock"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestDashboard_LinearOnce(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(testSettings(), nil)
	f.stubDashboard(nil)

	var out lockedBuffer
	f.app.WithStdout(&out)

	err := f.app.Dashboard(t.Context(), app.DashboardOptions{Once: true})
	require.NoError(t, err)

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "fleet: "), "exactly one frame")
	assert.Contains(t, got, "active orders: 0")
}

func TestDashboard_LinearOnceOffline(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(testSettings(), nil)
	f.stubDashboard(errors.Join(domain.ErrNetwork, errors.New("connection refused")))

	var out lockedBuffer
	f.app.WithStdout(&out)

	err := f.app.Dashboard(t.Context(), app.DashboardOptions{Once: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDashboardFailed)
	assert.Contains(t, out.String(), "backend offline: backend unreachable")
}

func TestDashboard_LinearStopsOnCancel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(testSettings(), nil)
	f.stubDashboard(nil)

	var out lockedBuffer
	f.app.WithStdout(&out)

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() {
		errCh <- f.app.Dashboard(ctx, app.DashboardOptions{OutputMode: "linear"})
	}()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "fleet: ")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dashboard did not stop after cancel")
	}
}

func TestDashboard_TUIStopsOnCancel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := newFixture(t)
	f.loader.EXPECT().Load("").Return(testSettings(), nil)
	f.stubDashboard(nil)
	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)

	ctx, cancel := context.WithCancel(t.Context())
	errCh := make(chan error, 1)
	go func() {
		errCh <- f.app.Dashboard(ctx, app.DashboardOptions{OutputMode: "tui"})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dashboard did not stop after cancel")
	}
}

func TestDashboard_InvalidOutputMode(t *testing.T) {
	f := newFixture(t)

	err := f.app.Dashboard(t.Context(), app.DashboardOptions{OutputMode: "fancy"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidConfig.Error())
}

func TestWatchSettings_ReloadsPolicies(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		sess, err := app.OpenSession(f.app, testSettings())
		require.NoError(t, err)
		defer sess.Close()

		release := make(chan struct{})
		events := iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
			for range 3 {
				if !yield(ports.WatchEvent{Path: "/etc/eagroute.yaml", Operation: ports.OpWrite}) {
					return
				}
			}
			<-release
		})
		f.watcher.EXPECT().Start(gomock.Any(), "/etc/eagroute.yaml").Return(nil)
		f.watcher.EXPECT().Events().Return(events)
		f.watcher.EXPECT().Stop().Return(nil)

		reloaded := testSettings()
		reloaded.Resources = map[domain.Family]domain.Policy{
			domain.FamilyGrid: {RefetchInterval: 10 * time.Second, StaleAfter: 5 * time.Second},
		}
		// Three writes inside one window cause a single reload.
		f.loader.EXPECT().Load("/etc/eagroute.yaml").Return(reloaded, nil).Times(1)

		done := make(chan error, 1)
		go func() {
			done <- app.WatchSettings(t.Context(), f.app, "/etc/eagroute.yaml", sess)
		}()

		time.Sleep(watcher.DefaultDebounceWindow + 50*time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 10*time.Second, sess.Catalog.Policy(domain.FamilyGrid).RefetchInterval)
		assert.Equal(t, 3*time.Second, sess.Catalog.Policy(domain.FamilyBots).RefetchInterval, "unlisted families keep defaults")

		close(release)
		require.NoError(t, <-done)
	})
}

func TestWatchSettings_StartFailure(t *testing.T) {
	f := newFixture(t)
	sess, err := app.OpenSession(f.app, testSettings())
	require.NoError(t, err)
	defer sess.Close()

	f.watcher.EXPECT().Start(gomock.Any(), "eagroute.yaml").Return(errors.New("failed to watch directory"))

	err = app.WatchSettings(t.Context(), f.app, "eagroute.yaml", sess)
	assert.NoError(t, err)
}

func TestWatchSettings_KeepsSettingsOnReloadError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		sess, err := app.OpenSession(f.app, testSettings())
		require.NoError(t, err)
		defer sess.Close()

		release := make(chan struct{})
		f.watcher.EXPECT().Start(gomock.Any(), "eagroute.yaml").Return(nil)
		f.watcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
			if yield(ports.WatchEvent{Path: "eagroute.yaml", Operation: ports.OpWrite}) {
				<-release
			}
		}))
		f.watcher.EXPECT().Stop().Return(nil)
		f.loader.EXPECT().Load("eagroute.yaml").Return(nil, domain.ErrConfigParseFailed)

		done := make(chan error, 1)
		go func() {
			done <- app.WatchSettings(t.Context(), f.app, "eagroute.yaml", sess)
		}()

		time.Sleep(watcher.DefaultDebounceWindow + 50*time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2*time.Second, sess.Catalog.Policy(domain.FamilyGrid).RefetchInterval)

		close(release)
		require.NoError(t, <-done)
	})
}
