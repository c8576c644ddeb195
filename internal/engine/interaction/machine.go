// Package interaction implements the bot selection and move state machine.
//
// The machine is evaluated against the projection passed to each Click, so
// callers must hand it the projection that is current when the event arrives.
package interaction

import (
	"context"
	"sync"

	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/projection"
	"go.trai.ch/zerr"
)

// Phase is the state of the machine.
type Phase uint8

// Phases.
const (
	PhaseIdle Phase = iota
	PhaseSelected
	PhaseMoving
)

func (p Phase) String() string {
	switch p {
	case PhaseSelected:
		return "selected"
	case PhaseMoving:
		return "moving"
	default:
		return "idle"
	}
}

// State is a snapshot of the machine. Bot is zero in PhaseIdle and Target is
// only meaningful in PhaseMoving.
type State struct {
	Phase  Phase
	Bot    int
	Target domain.Coord
}

// Selected returns the selected bot, including the bot being moved.
func (s State) Selected() (int, bool) {
	return s.Bot, s.Phase != PhaseIdle
}

// Mover issues move commands. It is satisfied by *mutation.Coordinator.
type Mover interface {
	MoveBot(ctx context.Context, id int, to domain.Coord) (domain.MoveResult, error)
}

// Machine owns the selection state. It is safe for concurrent use so a move
// can complete on a different goroutine than the one delivering clicks.
type Machine struct {
	mover Mover

	mu    sync.Mutex
	state State
	// gen identifies the current move so a late completion cannot reset a
	// newer state.
	gen uint64
}

// New creates an idle Machine.
func New(mover Mover) *Machine {
	return &Machine{mover: mover}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Click interprets a click on coord against p. It returns a non-nil Move when
// the click starts a move; the caller must Run it.
//
// Clicks while a move is outstanding return ErrMoveInFlight and change
// nothing. A click that would move a bot missing from p returns
// ErrStaleSelection and drops the selection.
func (m *Machine) Click(coord domain.Coord, p *projection.Projection) (*Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Phase == PhaseMoving {
		return nil, domain.ErrMoveInFlight
	}

	cell, ok := p.Cell(coord)
	if !ok {
		return nil, zerr.With(domain.ErrInvalidCoord, "value", coord.String())
	}

	if bot, occupied := cell.FirstOccupant(); occupied {
		m.state = State{Phase: PhaseSelected, Bot: bot.ID}
		return nil, nil
	}

	if m.state.Phase == PhaseIdle {
		return nil, nil
	}

	bot := m.state.Bot
	if _, present := p.Locate(bot); !present {
		m.state = State{}
		return nil, domain.ErrStaleSelection
	}

	m.gen++
	m.state = State{Phase: PhaseMoving, Bot: bot, Target: coord}
	return &Move{Bot: bot, Target: coord, machine: m, gen: m.gen}, nil
}

// Clear drops the selection. It has no effect while a move is outstanding.
func (m *Machine) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Phase == PhaseSelected {
		m.state = State{}
	}
}

func (m *Machine) complete(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Phase == PhaseMoving && m.gen == gen {
		m.state = State{}
	}
}

// Move is an issued move command.
type Move struct {
	Bot    int
	Target domain.Coord

	machine *Machine
	gen     uint64
	once    sync.Once
}

// Run sends the move and returns the machine to idle, on success and on
// failure alike. Only the first call issues a command.
func (mv *Move) Run(ctx context.Context) (domain.MoveResult, error) {
	var (
		result domain.MoveResult
		err    error = domain.ErrMoveInFlight
	)
	mv.once.Do(func() {
		defer mv.machine.complete(mv.gen)
		result, err = mv.machine.mover.MoveBot(ctx, mv.Bot, mv.Target)
	})
	return result, err
}
