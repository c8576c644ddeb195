package mutation_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/eagroute/internal/adapters/telemetry"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/core/ports/mocks"
	"go.trai.ch/eagroute/internal/engine/mutation"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	backend     *mocks.MockBackend
	invalidator *mocks.MockInvalidator
	coordinator *mutation.Coordinator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	f := &fixture{
		backend:     mocks.NewMockBackend(ctrl),
		invalidator: mocks.NewMockInvalidator(ctrl),
	}
	f.coordinator = mutation.New(f.backend, f.invalidator, telemetry.NewNoOpTracer(), logger)
	return f
}

func (f *fixture) expectInvalidated(keys ...domain.Key) {
	for _, key := range keys {
		f.invalidator.EXPECT().Invalidate(key)
	}
}

func networkErr() error {
	return errors.Join(domain.ErrNetwork, errors.New("connection reset by peer"))
}

func TestInvalidations(t *testing.T) {
	tests := []struct {
		cmd  domain.Command
		id   int
		want []domain.Key
	}{
		{cmd: domain.CommandCreateOrder, want: []domain.Key{domain.KeyOrders, domain.KeyGrid, domain.KeyStats, domain.KeyBots}},
		{cmd: domain.CommandMoveBot, id: 5, want: []domain.Key{domain.KeyBots, domain.BotKey(5), domain.KeyGrid, domain.KeyOrders}},
		{cmd: domain.CommandUpdateOrderStatus, id: 2, want: []domain.Key{domain.KeyOrders, domain.OrderKey(2), domain.KeyGrid, domain.KeyStats}},
		{cmd: domain.CommandCancelOrder, id: 2, want: []domain.Key{domain.KeyOrders, domain.OrderKey(2), domain.KeyGrid, domain.KeyStats, domain.KeyBots}},
		{cmd: domain.CommandRebalanceOrders, want: []domain.Key{domain.KeyOrders, domain.KeyBots, domain.KeyGrid, domain.KeyStats}},
		{cmd: domain.CommandStartAutoMovement, want: []domain.Key{domain.KeyAutoMovement}},
		{cmd: domain.CommandStopAutoMovement, want: []domain.Key{domain.KeyAutoMovement}},
	}

	for _, tt := range tests {
		t.Run(string(tt.cmd), func(t *testing.T) {
			got := mutation.Invalidations(tt.cmd, tt.id)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, domain.KeyRestaurants)
		})
	}
}

func TestCoordinator_MoveBot(t *testing.T) {
	f := newFixture(t)
	target := domain.Coord{X: 3, Y: 4}

	f.backend.EXPECT().MoveBot(gomock.Any(), 5, target).Return(domain.MoveResult{BotID: 5, NewPosition: target}, nil)
	// bots/5 is covered by bots.
	f.expectInvalidated(domain.KeyBots, domain.KeyGrid, domain.KeyOrders)

	res, err := f.coordinator.MoveBot(context.Background(), 5, target)
	require.NoError(t, err)
	assert.Equal(t, target, res.NewPosition)
}

func TestCoordinator_MoveBotOffGrid(t *testing.T) {
	f := newFixture(t)

	_, err := f.coordinator.MoveBot(context.Background(), 5, domain.Coord{X: 9, Y: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCoordinator_FailureLeavesCacheAlone(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().MoveBot(gomock.Any(), 5, gomock.Any()).
		Return(domain.MoveResult{}, &domain.ServerError{StatusCode: 400, Detail: "Invalid position"}).
		Times(1)

	_, err := f.coordinator.MoveBot(context.Background(), 5, domain.Coord{X: 1, Y: 1})
	require.Error(t, err)

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, domain.CommandMoveBot, cmdErr.Command)
	assert.ErrorIs(t, err, domain.ErrServer)
	assert.Equal(t, "Invalid position", domain.DetailOf(err))
}

func TestCoordinator_NonIdempotentCommandsNeverRetry(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().MoveBot(gomock.Any(), 1, gomock.Any()).Return(domain.MoveResult{}, networkErr()).Times(1)
	f.backend.EXPECT().Rebalance(gomock.Any()).Return(domain.RebalanceResult{}, networkErr()).Times(1)

	_, err := f.coordinator.MoveBot(context.Background(), 1, domain.Coord{X: 2, Y: 2})
	require.ErrorIs(t, err, domain.ErrNetwork)

	_, err = f.coordinator.RebalanceOrders(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestCoordinator_CreateOrder(t *testing.T) {
	f := newFixture(t)
	req := domain.NewCreateOrderRequest("Ann", "", domain.RestaurantSushi, domain.Coord{X: 2, Y: 2}, domain.Coord{X: 6, Y: 6})

	f.backend.EXPECT().CreateOrder(gomock.Any(), req).Return(domain.Order{
		ID: 1, CustomerName: "Ann", RestaurantType: domain.RestaurantSushi,
		PickupX: 2, PickupY: 2, DeliveryX: 6, DeliveryY: 6, Status: domain.OrderPending,
	}, nil)
	f.expectInvalidated(domain.KeyOrders, domain.KeyGrid, domain.KeyStats, domain.KeyBots)

	order, err := f.coordinator.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.Coord{X: 2, Y: 2}, order.Pickup())
}

func TestCoordinator_CreateOrderValidationMakesNoRequest(t *testing.T) {
	f := newFixture(t)
	req := domain.NewCreateOrderRequest("", "", domain.RestaurantSushi, domain.Coord{X: 2, Y: 2}, domain.Coord{X: 6, Y: 6})

	_, err := f.coordinator.CreateOrder(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer_name", verr.Field)
}

func TestCoordinator_UpdateOrderStatus(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().UpdateOrderStatus(gomock.Any(), 3, domain.OrderDelivered).Return(domain.Order{ID: 3, Status: domain.OrderDelivered}, nil)
	f.expectInvalidated(domain.KeyOrders, domain.KeyGrid, domain.KeyStats)

	order, err := f.coordinator.UpdateOrderStatus(context.Background(), 3, "delivered")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderDelivered, order.Status)

	_, err = f.coordinator.UpdateOrderStatus(context.Background(), 3, "LOST")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCoordinator_IdempotentCommandRetriesOnce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		start := time.Now()
		var retriedAt time.Duration

		gomock.InOrder(
			f.backend.EXPECT().CancelOrder(gomock.Any(), 4).Return(domain.Message{}, networkErr()),
			f.backend.EXPECT().CancelOrder(gomock.Any(), 4).DoAndReturn(func(context.Context, int) (domain.Message, error) {
				retriedAt = time.Since(start)
				return domain.Message{Message: "Order cancelled successfully"}, nil
			}),
		)
		f.expectInvalidated(domain.KeyOrders, domain.KeyGrid, domain.KeyStats, domain.KeyBots)

		msg, err := f.coordinator.CancelOrder(context.Background(), 4)
		require.NoError(t, err)
		assert.Equal(t, "Order cancelled successfully", msg.Message)
		assert.Equal(t, domain.CommandRetryDelay, retriedAt)
	})
}

func TestCoordinator_IdempotentCommandGivesUpAfterOneRetry(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)

		f.backend.EXPECT().StopAutoMovement(gomock.Any()).Return(domain.AutoMovementToggle{}, networkErr()).Times(2)

		_, err := f.coordinator.StopAutoMovement(context.Background())
		require.ErrorIs(t, err, domain.ErrNetwork)
	})
}

func TestCoordinator_IdempotentCommandDoesNotRetryServerErrors(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().CancelOrder(gomock.Any(), 4).
		Return(domain.Message{}, &domain.ServerError{StatusCode: 400, Detail: "Cannot cancel delivered order"}).
		Times(1)

	_, err := f.coordinator.CancelOrder(context.Background(), 4)
	require.Error(t, err)
	assert.Equal(t, "Cannot cancel delivered order", err.Error())
}

func TestCoordinator_AutoMovement(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().StartAutoMovement(gomock.Any()).Return(domain.AutoMovementToggle{Status: "started"}, nil)
	f.expectInvalidated(domain.KeyAutoMovement)

	res, err := f.coordinator.StartAutoMovement(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "started", res.Status)
}

func TestCoordinator_RecordsFailureOnSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	tracer.EXPECT().Start(gomock.Any(), "command rebalanceOrders", gomock.Any()).Return(context.Background(), span)
	backend.EXPECT().Rebalance(gomock.Any()).Return(domain.RebalanceResult{}, &domain.ServerError{StatusCode: 500})
	span.EXPECT().RecordError(gomock.Any())
	span.EXPECT().End()

	c := mutation.New(backend, mocks.NewMockInvalidator(ctrl), tracer, logger)
	_, err := c.RebalanceOrders(context.Background())
	require.ErrorIs(t, err, domain.ErrServer)
}
