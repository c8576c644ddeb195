// Package app implements the application layer for eagroute.
package app

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/eagroute/internal/adapters/detector"
	"go.trai.ch/eagroute/internal/adapters/telemetry"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.trai.ch/eagroute/internal/engine/mutation"
	"go.trai.ch/eagroute/internal/engine/resources"
	"go.trai.ch/eagroute/internal/engine/store"
	"go.trai.ch/zerr"
)

// Options are the global command line settings.
type Options struct {
	// ConfigPath is the settings file. Empty means ./eagroute.yaml when present.
	ConfigPath string
	JSONLogs   bool
	Verbose    bool
}

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	logger    ports.Logger
	connector ports.BackendConnector
	watcher   ports.Watcher

	opts         Options
	stdout       io.Writer
	detect       func() detector.OutputMode
	teaOptions   []tea.ProgramOption
	mutationOpts []mutation.Option
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	connector ports.BackendConnector,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:    loader,
		logger:    log,
		connector: connector,
		watcher:   watcher,
		stdout:    os.Stdout,
		detect:    detector.DetectEnvironment,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout sets the writer the linear dashboard prints to.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithEnvironment replaces the environment used for output mode detection.
func (a *App) WithEnvironment(env detector.Environment) *App {
	a.detect = env.Detect
	return a
}

// WithMutationOptions configures the command coordinator of every session.
func (a *App) WithMutationOptions(opts ...mutation.Option) *App {
	a.mutationOpts = append(a.mutationOpts, opts...)
	return a
}

// Configure sets the global options used by every later call.
func (a *App) Configure(opts Options) {
	a.opts = opts
}

// Session is one connection to the backend: the resolved settings, the
// resource cache and the command path. Its methods satisfy tui.Controller.
type Session struct {
	*mutation.Coordinator

	Settings *domain.Settings
	Backend  ports.Backend
	Catalog  *resources.Catalog
	Store    *store.Store
}

// Read returns the cached snapshot of key.
func (s *Session) Read(key domain.Key) domain.Entry {
	return s.Store.Read(key)
}

// Refetch fetches key now.
func (s *Session) Refetch(key domain.Key) error {
	return s.Store.Refetch(key)
}

// Close stops every poller of the session.
func (s *Session) Close() {
	s.Store.Close()
}

func (a *App) loadSettings() (*domain.Settings, error) {
	settings, err := a.loader.Load(a.opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	a.applyLogSettings(settings.Log)
	return settings, nil
}

func (a *App) applyLogSettings(log domain.LogSettings) {
	lc, ok := a.logger.(ports.LogConfigurer)
	if !ok {
		return
	}
	lc.SetJSON(a.opts.JSONLogs || log.JSON)

	level := log.Level
	if a.opts.Verbose {
		level = "debug"
	}
	if err := lc.SetLevel(level); err != nil {
		a.logger.Warn("ignoring log level: " + err.Error())
	}
}

func (a *App) open(settings *domain.Settings) (*Session, error) {
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)

	backend, err := a.connector.Connect(settings.Backend, tracer)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create backend client")
	}

	catalog := resources.NewCatalog(backend, settings.Resources)
	st := store.New(catalog, a.logger, tracer, store.WithRetry(settings.Retry))
	return &Session{
		Coordinator: mutation.New(backend, st, tracer, a.logger, a.mutationOpts...),
		Settings:    settings,
		Backend:     backend,
		Catalog:     catalog,
		Store:       st,
	}, nil
}

// query runs fn against a fresh session and closes it afterwards.
func query[T any](a *App, fn func(*Session) (T, error)) (T, error) {
	var zero T
	settings, err := a.loadSettings()
	if err != nil {
		return zero, err
	}
	sess, err := a.open(settings)
	if err != nil {
		return zero, err
	}
	defer sess.Close()
	return fn(sess)
}
