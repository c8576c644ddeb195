package domain

import "time"

// EntryStatus is the synchronization state of a cached resource.
type EntryStatus uint8

// Entry statuses.
const (
	// StatusIdle means the resource has never been requested.
	StatusIdle EntryStatus = iota
	// StatusLoading means the first fetch is in flight and no value exists yet.
	StatusLoading
	// StatusFresh means the value reflects the latest issued fetch.
	StatusFresh
	// StatusStale means the value is older than its policy allows or was invalidated.
	StatusStale
	// StatusErrored means the latest triggered fetch failed. The last good value is kept.
	StatusErrored
)

func (s EntryStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	case StatusErrored:
		return "errored"
	default:
		return "idle"
	}
}

// Policy controls how often a resource is refreshed.
type Policy struct {
	// RefetchInterval is the polling period while subscribed. Zero disables polling.
	RefetchInterval time.Duration
	// StaleAfter is how long a fetched value counts as fresh.
	StaleAfter time.Duration
}

// Entry is an immutable snapshot of a cached resource.
type Entry struct {
	Key       Key
	Value     any
	HasValue  bool
	Status    EntryStatus
	FetchedAt time.Time
	Err       error
	// Seq is the sequence number of the fetch whose result is applied.
	Seq uint64
	// Failures counts consecutive triggered fetches that failed after retries.
	Failures int
	// Fetching is set while a fetch for the key is in flight.
	Fetching bool
}

// ValueOf returns the entry value as T.
func ValueOf[T any](e Entry) (T, bool) {
	var zero T
	if !e.HasValue {
		return zero, false
	}
	v, ok := e.Value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
