package domain

import (
	"log/slog"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultConfigFile is the settings file looked up in the working directory.
	DefaultConfigFile = "eagroute.yaml"
	// DefaultBaseURL is the backend address used when none is configured.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout bounds every backend request.
	DefaultTimeout = 10 * time.Second
	// DefaultRateLimit is the sustained client request rate per second.
	DefaultRateLimit = 20.0
	// DefaultBurst is the client request burst size.
	DefaultBurst = 10
	// DefaultFetchAttempts is the number of tries per triggered fetch.
	DefaultFetchAttempts = 3
	// DefaultRetryInitial is the first backoff delay.
	DefaultRetryInitial = time.Second
	// DefaultRetryMax caps the backoff delay.
	DefaultRetryMax = 30 * time.Second
	// CommandRetryDelay is the pause before the single retry of an idempotent command.
	CommandRetryDelay = time.Second
)

// Settings is the resolved client configuration.
type Settings struct {
	Backend   BackendSettings
	Retry     RetrySettings
	Resources map[Family]Policy
	Log       LogSettings
	// Path is the settings file the values were read from, empty when none was found.
	Path string
}

// BackendSettings configures the Resource Client.
type BackendSettings struct {
	BaseURL   string
	Secret    string
	Timeout   time.Duration
	RateLimit float64
	Burst     int
}

// RetrySettings configures fetch retries.
type RetrySettings struct {
	Attempts        int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string
	JSON  bool
	File  string
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Backend: BackendSettings{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			RateLimit: DefaultRateLimit,
			Burst:     DefaultBurst,
		},
		Retry: RetrySettings{
			Attempts:        DefaultFetchAttempts,
			InitialInterval: DefaultRetryInitial,
			MaxInterval:     DefaultRetryMax,
		},
		Resources: DefaultPolicies(),
		Log:       LogSettings{Level: "info"},
	}
}

// DefaultPolicies returns the refresh policy of every resource family.
func DefaultPolicies() map[Family]Policy {
	return map[Family]Policy{
		FamilyHealth:          {RefetchInterval: 60 * time.Second, StaleAfter: 30 * time.Second},
		FamilyGrid:            {RefetchInterval: 2 * time.Second, StaleAfter: time.Second},
		FamilyRestaurants:     {RefetchInterval: 300 * time.Second, StaleAfter: 300 * time.Second},
		FamilyDeliveryPoints:  {RefetchInterval: 300 * time.Second, StaleAfter: 300 * time.Second},
		FamilyStats:           {RefetchInterval: 5 * time.Second, StaleAfter: 2 * time.Second},
		FamilyBlockedPaths:    {RefetchInterval: 300 * time.Second, StaleAfter: 300 * time.Second},
		FamilyBots:            {RefetchInterval: 3 * time.Second, StaleAfter: time.Second},
		FamilyBot:             {StaleAfter: 2 * time.Second},
		FamilyBotRoute:        {StaleAfter: 5 * time.Second},
		FamilyBotOrders:       {StaleAfter: 2 * time.Second},
		FamilyOrders:          {RefetchInterval: 2 * time.Second, StaleAfter: time.Second},
		FamilyOrder:           {StaleAfter: time.Second},
		FamilyOrdersByStatus:  {StaleAfter: 2 * time.Second},
		FamilyRouteOptimize:   {StaleAfter: 5 * time.Second},
		FamilyRouteEfficiency: {StaleAfter: 5 * time.Second},
		FamilyAutoMovement:    {RefetchInterval: 5 * time.Second, StaleAfter: 2 * time.Second},
	}
}

// Policy returns the configured policy for a family, falling back to the default.
func (s *Settings) Policy(f Family) Policy {
	if p, ok := s.Resources[f]; ok {
		return p
	}
	return DefaultPolicies()[f]
}

// ParseLogLevel parses a level name. The empty name is info.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, zerr.With(ErrInvalidConfig, "log.level", name)
	}
}
