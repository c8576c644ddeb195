// Package config loads client settings from defaults, eagroute.yaml and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EAGROUTE_"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
	// environ replaces the process environment when non-nil.
	environ map[string]string
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem reads settings files through fsys.
func WithFileSystem(fsys FileSystem) Option {
	return func(l *Loader) { l.fs = fsys }
}

// WithEnvironment reads overrides from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(l *Loader) { l.environ = vars }
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{Logger: logger, fs: OSFS{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves settings. An empty path selects eagroute.yaml in the working
// directory when it exists; an explicit path must exist.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	file, err := l.resolvePath(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		if err := l.applyFile(&settings, file); err != nil {
			return nil, err
		}
		settings.Path = file
		l.Logger.Debug("settings loaded from " + file)
	}

	if err := l.applyEnv(&settings); err != nil {
		return nil, err
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (l *Loader) resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := l.fs.Stat(path); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		return path, nil
	}
	if _, err := l.fs.Stat(domain.DefaultConfigFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", domain.DefaultConfigFile)
	}
	return domain.DefaultConfigFile, nil
}

func (l *Loader) applyFile(s *domain.Settings, path string) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	set(&s.Backend.BaseURL, file.Backend.BaseURL)
	set(&s.Backend.Secret, file.Backend.Secret)
	set(&s.Backend.Timeout, file.Backend.Timeout)
	set(&s.Backend.RateLimit, file.Backend.RateLimit)
	set(&s.Backend.Burst, file.Backend.Burst)

	set(&s.Retry.Attempts, file.Retry.Attempts)
	set(&s.Retry.InitialInterval, file.Retry.InitialInterval)
	set(&s.Retry.MaxInterval, file.Retry.MaxInterval)

	set(&s.Log.Level, file.Log.Level)
	set(&s.Log.JSON, file.Log.JSON)
	set(&s.Log.File, file.Log.File)

	defaults := domain.DefaultPolicies()
	for name, dto := range file.Resources {
		family := domain.Family(name)
		policy, ok := defaults[family]
		if !ok {
			return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", "resources"), "family", name)
		}
		if existing, ok := s.Resources[family]; ok {
			policy = existing
		}
		set(&policy.RefetchInterval, dto.RefetchInterval)
		set(&policy.StaleAfter, dto.StaleAfter)
		s.Resources[family] = policy
	}
	return nil
}

func (l *Loader) applyEnv(s *domain.Settings) error {
	ov := envOverrides{
		BaseURL:   s.Backend.BaseURL,
		Secret:    s.Backend.Secret,
		Timeout:   s.Backend.Timeout,
		RateLimit: s.Backend.RateLimit,
		LogLevel:  s.Log.Level,
		LogJSON:   s.Log.JSON,
		LogFile:   s.Log.File,
	}
	if err := env.ParseWithOptions(&ov, env.Options{Prefix: EnvPrefix, Environment: l.environ}); err != nil {
		return zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}
	s.Backend.BaseURL = ov.BaseURL
	s.Backend.Secret = ov.Secret
	s.Backend.Timeout = ov.Timeout
	s.Backend.RateLimit = ov.RateLimit
	s.Log.Level = ov.LogLevel
	s.Log.JSON = ov.LogJSON
	s.Log.File = ov.LogFile
	return nil
}

// Validate checks resolved settings. Failures wrap ErrInvalidConfig with the
// offending field in the "field" metadata.
func Validate(s *domain.Settings) error {
	invalid := func(field string, value any) error {
		return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", field), "value", fmt.Sprint(value))
	}

	u, err := url.Parse(s.Backend.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("backend.base_url", s.Backend.BaseURL)
	}
	if s.Backend.Timeout <= 0 {
		return invalid("backend.timeout", s.Backend.Timeout)
	}
	if s.Backend.RateLimit < 0 {
		return invalid("backend.rate_limit", s.Backend.RateLimit)
	}
	if s.Backend.Burst < 0 {
		return invalid("backend.burst", s.Backend.Burst)
	}
	if s.Retry.Attempts < 1 {
		return invalid("retry.attempts", s.Retry.Attempts)
	}
	if s.Retry.InitialInterval <= 0 {
		return invalid("retry.initial_interval", s.Retry.InitialInterval)
	}
	if s.Retry.MaxInterval < s.Retry.InitialInterval {
		return invalid("retry.max_interval", s.Retry.MaxInterval)
	}
	for family, p := range s.Resources {
		if p.RefetchInterval < 0 || p.StaleAfter < 0 {
			return invalid("resources."+string(family), p)
		}
		if p.RefetchInterval > 0 && p.RefetchInterval < minRefetchInterval {
			return invalid("resources."+string(family)+".refetch_interval", p.RefetchInterval)
		}
	}
	if _, err := domain.ParseLogLevel(s.Log.Level); err != nil {
		return invalid("log.level", s.Log.Level)
	}
	return nil
}

// minRefetchInterval keeps a misconfigured poller from hammering the backend.
const minRefetchInterval = 100 * time.Millisecond

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
