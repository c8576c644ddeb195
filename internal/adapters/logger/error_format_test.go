package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/eagroute/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{name: "standard error", err: errors.New("simple"), wantMessages: []string{"simple"}},
		{name: "zerr single", err: zerr.New("backend unreachable"), wantMessages: []string{"backend unreachable"}},
		{
			name:         "zerr chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root cause"},
		},
		{name: "nil", err: nil, wantMessages: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			if tt.wantMessages == nil {
				assert.Empty(t, entries)
				return
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{name: "empty", entries: nil, want: ""},
		{name: "single", entries: []logger.ErrorEntry{{Message: "boom"}}, want: "Error: boom"},
		{
			name:    "with cause",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			name:    "metadata sorted",
			entries: []logger.ErrorEntry{{Message: "invalid configuration", Metadata: map[string]any{"timeout": "0s", "base_url": "x"}}},
			want:    "Error: invalid configuration\n       base_url: x\n       timeout: 0s",
		},
		{
			name:    "metadata on cause",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "cause", Metadata: map[string]any{"key": "map/grid"}}},
			want:    "Error: main\n\n  Caused by:\n    → cause\n      key: map/grid",
		},
		{
			name:    "multiline",
			entries: []logger.ErrorEntry{{Message: "yaml: unmarshal errors:\n  line 3: bad"}},
			want:    "Error: yaml: unmarshal errors:\n         line 3: bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectAndFormat_Metadata(t *testing.T) {
	inner := zerr.With(zerr.New("database timeout"), "timeout_ms", 5000)
	outer := zerr.With(zerr.Wrap(inner, "failed to fetch"), "key", "orders")

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(outer))
	assert.Equal(t, "Error: failed to fetch\n"+
		"       key: orders\n\n"+
		"  Caused by:\n"+
		"    → database timeout\n"+
		"      timeout_ms: 5000", got)
}
