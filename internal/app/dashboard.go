package app

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/eagroute/internal/adapters/detector"
	"go.trai.ch/eagroute/internal/adapters/linear"
	"go.trai.ch/eagroute/internal/adapters/telemetry"
	"go.trai.ch/eagroute/internal/adapters/tui"
	"go.trai.ch/eagroute/internal/adapters/watcher"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.trai.ch/eagroute/internal/engine/dashboard"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ tui.Controller = (*Session)(nil)

// DashboardOptions configures the Dashboard method.
type DashboardOptions struct {
	OutputMode string
	// Once prints a single linear frame after the first load and returns.
	Once bool
}

// Dashboard runs the operator dashboard until it is quit or ctx is canceled.
// The surface is the interactive TUI on a terminal and the linear watch
// output everywhere else.
//
//nolint:cyclop // orchestration function
func (a *App) Dashboard(ctx context.Context, opts DashboardOptions) error {
	requested, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}
	mode := detector.ResolveMode(a.detect(), requested)
	if opts.Once {
		mode = detector.ModeLinear
	}

	settings, err := a.loadSettings()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to the log file or nowhere.
	if mode == detector.ModeTUI {
		restore, err := a.redirectLogs(settings.Log.File)
		if err != nil {
			return err
		}
		defer restore()
	}

	bridge := telemetry.NewBridge(nil)
	tp := setupOTel(bridge)
	defer func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}()

	sess, err := a.open(settings)
	if err != nil {
		return err
	}
	defer sess.Close()

	renderer := a.newRenderer(ctx, mode, sess, opts)
	bridge.Attach(renderer)
	defer bridge.Attach(nil)

	if err := renderer.Start(ctx); err != nil {
		return err
	}

	stopListening := sess.Store.Listen(renderer.OnResourceUpdate)
	defer stopListening()

	for _, key := range dashboard.Keys {
		sub, err := sess.Store.Subscribe(key)
		if err != nil {
			_ = renderer.Stop()
			return err
		}
		defer sub.Close()
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer stop()
		err := renderer.Wait()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		return renderer.Stop()
	})

	if settings.Path != "" && a.watcher != nil {
		g.Go(func() error {
			return a.watchSettings(gctx, settings.Path, sess)
		})
	}

	return g.Wait()
}

func (a *App) newRenderer(ctx context.Context, mode detector.OutputMode, sess *Session, opts DashboardOptions) ports.Renderer {
	if mode == detector.ModeTUI {
		model := tui.NewModel(ctx, sess)
		teaOpts := append([]tea.ProgramOption{
			tea.WithContext(ctx),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithoutSignalHandler(),
		}, a.teaOptions...)
		return tui.NewRenderer(model, teaOpts...)
	}

	var linearOpts []linear.Option
	if opts.Once {
		linearOpts = append(linearOpts, linear.WithOnce())
	}
	return linear.NewRenderer(a.stdout, sess, linearOpts...)
}

// redirectLogs points the logger at path, or discards logs when path is
// empty. The returned func restores stderr.
func (a *App) redirectLogs(path string) (func(), error) {
	lc, ok := a.logger.(ports.LogConfigurer)
	if !ok {
		return func() {}, nil
	}
	if path == "" {
		lc.SetOutput(io.Discard)
		return func() { lc.SetOutput(nil) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open log file"), "path", path)
	}
	lc.SetOutput(f)
	return func() {
		lc.SetOutput(nil)
		_ = f.Close()
	}, nil
}

// watchSettings reloads resource policies and the log level whenever the
// settings file changes. A watcher that cannot start only disables reload.
func (a *App) watchSettings(ctx context.Context, path string, sess *Session) error {
	if err := a.watcher.Start(ctx, path); err != nil {
		a.logger.Warn("settings hot reload disabled: " + err.Error())
		return nil
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		a.reload(path, sess)
	})
	defer debouncer.Stop()

	for event := range a.watcher.Events() {
		if ctx.Err() != nil {
			break
		}
		debouncer.Add(event.Path)
	}
	return nil
}

func (a *App) reload(path string, sess *Session) {
	settings, err := a.loader.Load(path)
	if err != nil {
		a.logger.Warn("settings reload failed, keeping previous settings: " + err.Error())
		return
	}

	sess.Catalog.SetPolicies(settings.Resources)
	sess.Store.ApplyPolicies(sess.Catalog.Policies())
	a.applyLogSettings(settings.Log)
	a.logger.Info("settings reloaded from " + path)
}

// setupOTel configures the OpenTelemetry SDK with the renderer bridge.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	// Every started span is reported to the renderer when it ends.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
	return tp
}
