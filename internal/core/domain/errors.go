package domain

import (
	"errors"
	"strconv"

	"go.trai.ch/zerr"
)

var (
	// ErrNetwork is returned when the backend cannot be reached or does not answer in time.
	ErrNetwork = zerr.New("backend unreachable")

	// ErrServer is matched by every *ServerError.
	ErrServer = zerr.New("backend rejected request")

	// ErrValidation is matched by every *ValidationError.
	ErrValidation = zerr.New("invalid input")

	// ErrStaleSelection is returned when the selected bot no longer exists in the current grid.
	ErrStaleSelection = zerr.New("selection is stale")

	// ErrMoveInFlight is returned when a click arrives while a move command is outstanding.
	ErrMoveInFlight = zerr.New("a move is already in flight")

	// ErrDecodeFailed is returned when a backend response body cannot be decoded.
	ErrDecodeFailed = zerr.New("failed to decode backend response")

	// ErrEncodeFailed is returned when a request body cannot be encoded.
	ErrEncodeFailed = zerr.New("failed to encode request body")

	// ErrRequestBuildFailed is returned when an HTTP request cannot be constructed.
	ErrRequestBuildFailed = zerr.New("failed to build request")

	// ErrUnknownResource is returned when a resource key does not map to any backend resource.
	ErrUnknownResource = zerr.New("unknown resource")

	// ErrStoreClosed is returned when the synchronization store has been shut down.
	ErrStoreClosed = zerr.New("store is closed")

	// ErrUnexpectedValue is returned when a cached value has a different type than requested.
	ErrUnexpectedValue = zerr.New("unexpected cached value type")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigEnvFailed is returned when environment overrides cannot be parsed.
	ErrConfigEnvFailed = zerr.New("failed to parse environment overrides")

	// ErrInvalidConfig is returned when settings fail validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidCoord is returned when a coordinate argument cannot be parsed or is off the grid.
	ErrInvalidCoord = zerr.New("invalid coordinate, expected x,y within the grid")

	// ErrInvalidID is returned when an entity id argument is not a positive integer.
	ErrInvalidID = zerr.New("invalid id")

	// ErrDashboardFailed is returned when the dashboard surface terminates with an error.
	ErrDashboardFailed = zerr.New("dashboard failed")
)

// ServerError is a non-2xx backend response. Its message is the backend's detail.
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.Detail == "" {
		return "backend returned status " + strconv.Itoa(e.StatusCode)
	}
	return e.Detail
}

// Is reports whether target is ErrServer.
func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// Permanent reports whether repeating the request cannot succeed.
func (e *ServerError) Permanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != 408 && e.StatusCode != 429
}

// ValidationError is a client-side input failure detected before any request is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CommandError is the failure of a mutating command.
type CommandError struct {
	Command Command
	Err     error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// DetailOf returns the user-facing message for err: the backend detail for
// server errors, the field message for validation errors, and err.Error() otherwise.
func DetailOf(err error) string {
	if err == nil {
		return ""
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Error()
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	return err.Error()
}
