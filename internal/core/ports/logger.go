package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// LogConfigurer is implemented by loggers whose output can be changed at runtime.
type LogConfigurer interface {
	// SetOutput redirects output. A nil writer restores stderr.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
	// SetLevel sets the minimum level by name (debug, info, warn, error).
	SetLevel(level string) error
}
