package interaction_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/interaction"
	"go.trai.ch/eagroute/internal/engine/projection"
)

type moveCall struct {
	id int
	to domain.Coord
}

type fakeMover struct {
	mu    sync.Mutex
	calls []moveCall
	err   error
}

func (f *fakeMover) MoveBot(_ context.Context, id int, to domain.Coord) (domain.MoveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, moveCall{id: id, to: to})
	if f.err != nil {
		return domain.MoveResult{}, f.err
	}
	return domain.MoveResult{BotID: id, NewPosition: to}, nil
}

func at(x, y int) domain.Coord { return domain.Coord{X: x, Y: y} }

// build returns a projection over a full grid with bots placed at the given coordinates.
func build(bots map[int]domain.Coord) *projection.Projection {
	g := domain.MapGrid{Grid: make(map[string]domain.GridCell), GridSize: domain.GridSize}
	for y := range domain.GridSize {
		for x := range domain.GridSize {
			g.Grid[at(x, y).String()] = domain.GridCell{X: x, Y: y}
		}
	}
	list := make([]domain.Bot, 0, len(bots))
	for id := 1; len(list) < len(bots); id++ {
		if c, ok := bots[id]; ok {
			list = append(list, domain.Bot{ID: id, CurrentX: c.X, CurrentY: c.Y})
		}
	}
	p := projection.Build(projection.Input{
		Grid: domain.Entry{Key: domain.KeyGrid, Value: g, HasValue: true},
		Bots: domain.Entry{Key: domain.KeyBots, Value: list, HasValue: true},
	})
	return &p
}

func TestClick_SelectsFirstOccupant(t *testing.T) {
	t.Parallel()

	m := interaction.New(&fakeMover{})
	p := build(map[int]domain.Coord{1: at(0, 0), 2: at(0, 0)})

	move, err := m.Click(at(0, 0), p)
	require.NoError(t, err)
	assert.Nil(t, move)
	assert.Equal(t, interaction.State{Phase: interaction.PhaseSelected, Bot: 1}, m.State())
}

func TestClick_EmptyCellWhileIdleDoesNothing(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{}
	m := interaction.New(mover)

	move, err := m.Click(at(4, 4), build(map[int]domain.Coord{1: at(0, 0)}))
	require.NoError(t, err)
	assert.Nil(t, move)
	assert.Equal(t, interaction.PhaseIdle, m.State().Phase)
	assert.Empty(t, mover.calls)
}

func TestClick_SelectionIsExclusive(t *testing.T) {
	t.Parallel()

	m := interaction.New(&fakeMover{})
	p := build(map[int]domain.Coord{1: at(0, 0), 2: at(3, 3)})

	_, err := m.Click(at(0, 0), p)
	require.NoError(t, err)
	move, err := m.Click(at(3, 3), p)
	require.NoError(t, err)
	assert.Nil(t, move)

	bot, ok := m.State().Selected()
	require.True(t, ok)
	assert.Equal(t, 2, bot)
}

func TestClick_MoveSuccess(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{}
	m := interaction.New(mover)
	p := build(map[int]domain.Coord{5: at(1, 1)})

	_, err := m.Click(at(1, 1), p)
	require.NoError(t, err)

	move, err := m.Click(at(7, 2), p)
	require.NoError(t, err)
	require.NotNil(t, move)
	assert.Equal(t, interaction.State{Phase: interaction.PhaseMoving, Bot: 5, Target: at(7, 2)}, m.State())

	result, err := move.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, at(7, 2), result.NewPosition)
	assert.Equal(t, interaction.PhaseIdle, m.State().Phase)
	assert.Equal(t, []moveCall{{id: 5, to: at(7, 2)}}, mover.calls)
}

func TestClick_MoveFailureRecovers(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{err: &domain.CommandError{
		Command: domain.CommandMoveBot,
		Err:     &domain.ServerError{StatusCode: 400, Detail: "Target position is blocked"},
	}}
	m := interaction.New(mover)
	p := build(map[int]domain.Coord{5: at(1, 1)})

	_, err := m.Click(at(1, 1), p)
	require.NoError(t, err)
	move, err := m.Click(at(2, 1), p)
	require.NoError(t, err)

	_, err = move.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Target position is blocked", domain.DetailOf(err))
	assert.Equal(t, interaction.PhaseIdle, m.State().Phase)

	_, err = m.Click(at(1, 1), p)
	require.NoError(t, err)
	assert.Equal(t, interaction.State{Phase: interaction.PhaseSelected, Bot: 5}, m.State())
	assert.Len(t, mover.calls, 1)
}

func TestClick_IgnoredWhileMoving(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{}
	m := interaction.New(mover)
	p := build(map[int]domain.Coord{5: at(1, 1), 6: at(8, 8)})

	_, _ = m.Click(at(1, 1), p)
	move, err := m.Click(at(2, 2), p)
	require.NoError(t, err)

	for _, c := range []domain.Coord{at(8, 8), at(3, 3)} {
		again, err := m.Click(c, p)
		require.ErrorIs(t, err, domain.ErrMoveInFlight)
		assert.Nil(t, again)
	}
	m.Clear()
	assert.Equal(t, interaction.State{Phase: interaction.PhaseMoving, Bot: 5, Target: at(2, 2)}, m.State())

	_, err = move.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, mover.calls, 1)
}

func TestClick_StaleSelection(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{}
	m := interaction.New(mover)

	_, err := m.Click(at(1, 1), build(map[int]domain.Coord{5: at(1, 1)}))
	require.NoError(t, err)

	// The bot disappears between polls.
	move, err := m.Click(at(4, 4), build(map[int]domain.Coord{6: at(0, 0)}))
	require.ErrorIs(t, err, domain.ErrStaleSelection)
	assert.Nil(t, move)
	assert.Equal(t, interaction.PhaseIdle, m.State().Phase)
	assert.Empty(t, mover.calls)
}

func TestClick_TargetBecameOccupiedReselects(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{}
	m := interaction.New(mover)

	_, err := m.Click(at(1, 1), build(map[int]domain.Coord{5: at(1, 1)}))
	require.NoError(t, err)

	move, err := m.Click(at(4, 4), build(map[int]domain.Coord{5: at(1, 1), 6: at(4, 4)}))
	require.NoError(t, err)
	assert.Nil(t, move)
	assert.Equal(t, interaction.State{Phase: interaction.PhaseSelected, Bot: 6}, m.State())
	assert.Empty(t, mover.calls)
}

func TestClick_MissingCell(t *testing.T) {
	t.Parallel()

	m := interaction.New(&fakeMover{})
	p := build(map[int]domain.Coord{5: at(1, 1)})
	delete(p.Cells, "3,3")

	_, _ = m.Click(at(1, 1), p)
	move, err := m.Click(at(3, 3), p)
	require.ErrorContains(t, err, domain.ErrInvalidCoord.Error())
	assert.Nil(t, move)
	assert.Equal(t, interaction.PhaseSelected, m.State().Phase)
}

func TestClear(t *testing.T) {
	t.Parallel()

	m := interaction.New(&fakeMover{})
	_, _ = m.Click(at(1, 1), build(map[int]domain.Coord{5: at(1, 1)}))

	m.Clear()
	_, ok := m.State().Selected()
	assert.False(t, ok)
}

func TestMove_RunOnce(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{}
	m := interaction.New(mover)
	p := build(map[int]domain.Coord{5: at(1, 1)})

	_, _ = m.Click(at(1, 1), p)
	move, err := m.Click(at(0, 1), p)
	require.NoError(t, err)

	_, err = move.Run(context.Background())
	require.NoError(t, err)
	_, err = move.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrMoveInFlight)
	assert.Len(t, mover.calls, 1)
}

func TestMove_LateCompletionKeepsNewerState(t *testing.T) {
	t.Parallel()

	mover := &fakeMover{err: errors.Join(domain.ErrNetwork, errors.New("timeout"))}
	m := interaction.New(mover)
	p := build(map[int]domain.Coord{5: at(1, 1), 6: at(5, 5)})

	_, _ = m.Click(at(1, 1), p)
	first, err := m.Click(at(0, 1), p)
	require.NoError(t, err)
	_, err = first.Run(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)

	_, _ = m.Click(at(5, 5), p)
	second, err := m.Click(at(6, 5), p)
	require.NoError(t, err)

	_, _ = first.Run(context.Background())
	assert.Equal(t, interaction.PhaseMoving, m.State().Phase)

	mover.err = nil
	_, err = second.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, interaction.PhaseIdle, m.State().Phase)
}
