package config

import "time"

// File is the structure of eagroute.yaml. Pointer fields distinguish an
// absent value from an explicit zero.
type File struct {
	Backend   BackendDTO           `yaml:"backend"`
	Retry     RetryDTO             `yaml:"retry"`
	Resources map[string]PolicyDTO `yaml:"resources"`
	Log       LogDTO               `yaml:"log"`
}

// BackendDTO configures the Resource Client.
type BackendDTO struct {
	BaseURL   *string        `yaml:"base_url"`
	Secret    *string        `yaml:"secret"`
	Timeout   *time.Duration `yaml:"timeout"`
	RateLimit *float64       `yaml:"rate_limit"`
	Burst     *int           `yaml:"burst"`
}

// RetryDTO configures fetch retries.
type RetryDTO struct {
	Attempts        *int           `yaml:"attempts"`
	InitialInterval *time.Duration `yaml:"initial_interval"`
	MaxInterval     *time.Duration `yaml:"max_interval"`
}

// PolicyDTO overrides the refresh policy of one resource family.
type PolicyDTO struct {
	RefetchInterval *time.Duration `yaml:"refetch_interval"`
	StaleAfter      *time.Duration `yaml:"stale_after"`
}

// LogDTO configures the logger.
type LogDTO struct {
	Level *string `yaml:"level"`
	JSON  *bool   `yaml:"json"`
	File  *string `yaml:"file"`
}

// envOverrides lists the settings that can be set from EAGROUTE_* variables.
// Fields are pre-filled with the current values; unset variables leave them alone.
type envOverrides struct {
	BaseURL   string        `env:"BASE_URL"`
	Secret    string        `env:"SECRET"`
	Timeout   time.Duration `env:"TIMEOUT"`
	RateLimit float64       `env:"RATE_LIMIT"`
	LogLevel  string        `env:"LOG_LEVEL"`
	LogJSON   bool          `env:"LOG_JSON"`
	LogFile   string        `env:"LOG_FILE"`
}
