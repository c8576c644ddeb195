package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/eagroute/internal/app"
	"go.trai.ch/eagroute/internal/core/domain"
	"go.trai.ch/eagroute/internal/engine/projection"
	"go.uber.org/mock/gomock"
)

// TestScenario_CreatedOrderAppearsOnGrid drives a session from a command to
// the next read of the orders resource and the grid projection built from it.
func TestScenario_CreatedOrderAppearsOnGrid(t *testing.T) {
	f := newFixture(t)
	sess, err := app.OpenSession(f.app, testSettings())
	require.NoError(t, err)
	defer sess.Close()

	created := domain.Order{
		ID:             1,
		CustomerName:   "Ann",
		RestaurantType: domain.RestaurantSushi,
		PickupX:        2,
		PickupY:        2,
		DeliveryX:      6,
		DeliveryY:      6,
		Status:         domain.OrderPending,
	}

	f.backend.EXPECT().Grid(gomock.Any()).Return(plainGrid(), nil)
	gomock.InOrder(
		f.backend.EXPECT().Orders(gomock.Any()).Return([]domain.Order{}, nil),
		f.backend.EXPECT().Orders(gomock.Any()).Return([]domain.Order{created}, nil),
	)
	f.backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
			assert.Equal(t, domain.Coord{X: 2, Y: 2}, req.Pickup())
			return created, nil
		})

	ctx := t.Context()
	_, err = sess.Store.Get(ctx, domain.KeyGrid)
	require.NoError(t, err)
	before, err := sess.Store.Get(ctx, domain.KeyOrders)
	require.NoError(t, err)
	assert.Empty(t, before.Value)

	_, err = sess.CreateOrder(ctx, domain.NewCreateOrderRequest("Ann", "", domain.RestaurantSushi,
		domain.Coord{X: 2, Y: 2}, domain.Coord{X: 6, Y: 6}))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusStale, sess.Read(domain.KeyOrders).Status)
	assert.Equal(t, domain.StatusStale, sess.Read(domain.KeyGrid).Status)

	after, err := sess.Store.Get(ctx, domain.KeyOrders)
	require.NoError(t, err)
	orders, ok := domain.ValueOf[[]domain.Order](after)
	require.True(t, ok)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderPending, orders[0].Status)

	p := projection.Build(projection.Input{Grid: sess.Read(domain.KeyGrid), Orders: after})
	pickup, ok := p.Cell(domain.Coord{X: 2, Y: 2})
	require.True(t, ok)
	require.Len(t, pickup.Overlays, 1)
	assert.Equal(t, domain.LocationPickup, pickup.Overlays[0].LocationType)

	delivery, ok := p.Cell(domain.Coord{X: 6, Y: 6})
	require.True(t, ok)
	require.Len(t, delivery.Overlays, 1)
	assert.Equal(t, domain.LocationDelivery, delivery.Overlays[0].LocationType)
}
