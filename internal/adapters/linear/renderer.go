// Package linear provides a line-oriented watch renderer for pipes and CI.
package linear

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/muesli/termenv"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports"
	"go.trai.ch/eagroute/internal/engine/dashboard"
	"go.trai.ch/eagroute/internal/ui/output"
)

var _ ports.Renderer = (*Renderer)(nil)

// frameKeys are the resources whose changes produce a new frame.
var frameKeys = map[domain.Key]struct{}{
	domain.KeyGrid:   {},
	domain.KeyBots:   {},
	domain.KeyOrders: {},
	domain.KeyStats:  {},
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOnce makes the renderer print a single frame after the first
// successful load and then finish.
func WithOnce() Option {
	return func(r *Renderer) {
		r.once = true
	}
}

// WithClock replaces the clock used for frame headers and activity lines.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// Renderer implements ports.Renderer for non-interactive environments.
// Frames are written to out; a frame identical to the previous one is skipped.
type Renderer struct {
	out    io.Writer
	reader dashboard.Reader
	output *termenv.Output
	once   bool
	now    func() time.Time

	mu      sync.Mutex
	last    uint64
	printed bool

	done     chan struct{}
	doneOnce sync.Once
	err      error
}

// NewRenderer creates a linear renderer reading snapshots from reader.
func NewRenderer(out io.Writer, reader dashboard.Reader, opts ...Option) *Renderer {
	if out == nil {
		out = os.Stdout
	}
	r := &Renderer{
		out:    out,
		reader: reader,
		output: output.New(out, output.PipeProfile()),
		now:    time.Now,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start renders the current state, if any is cached yet.
func (r *Renderer) Start(_ context.Context) error {
	r.render()
	return nil
}

// Stop ends the watch.
func (r *Renderer) Stop() error {
	r.finish(nil)
	return nil
}

// Wait blocks until Stop is called or, with WithOnce, the single frame is out.
func (r *Renderer) Wait() error {
	<-r.done
	return r.err
}

// OnResourceUpdate renders a new frame when a frame resource changed.
func (r *Renderer) OnResourceUpdate(key domain.Key) {
	if _, ok := frameKeys[key]; !ok {
		return
	}
	r.render()
}

// OnActivity prints one line per finished command and per failed fetch.
func (r *Renderer) OnActivity(a domain.Activity) {
	if !dashboard.Notable(a) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := r.output.String(r.now().Format("15:04:05")).Faint().String()
	if a.Err != nil {
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.out, "%s %s %s: %s\n", ts, symbol, a.Name, firstLine(domain.DetailOf(a.Err)))
		return
	}
	symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.out, "%s %s %s in %v\n", ts, symbol, a.Name, a.Duration.Round(time.Millisecond))
}

func (r *Renderer) render() {
	select {
	case <-r.done:
		return
	default:
	}

	v := dashboard.Build(r.reader)
	if !v.Offline && (v.Loading || !v.Projection.Ready) {
		return
	}

	frame := Frame(&v)
	digest := xxhash.Sum64String(frame)

	r.mu.Lock()
	if r.printed && digest == r.last {
		r.mu.Unlock()
		return
	}
	r.last, r.printed = digest, true
	header := r.output.String("── " + r.now().Format("15:04:05") + " ──").Bold().String()
	_, _ = fmt.Fprintf(r.out, "%s\n%s", header, frame)
	r.mu.Unlock()

	if !r.once {
		return
	}
	if v.Offline {
		r.finish(errors.Join(domain.ErrDashboardFailed, v.LastErr))
		return
	}
	r.finish(nil)
}

func (r *Renderer) finish(err error) {
	r.doneOnce.Do(func() {
		r.err = err
		close(r.done)
	})
}
