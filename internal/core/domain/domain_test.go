package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/eagroute/internal/core/domain"
)

func TestKey_Covers(t *testing.T) {
	tests := []struct {
		name   string
		parent domain.Key
		child  domain.Key
		want   bool
	}{
		{name: "self", parent: domain.KeyBots, child: domain.KeyBots, want: true},
		{name: "bot under bots", parent: domain.KeyBots, child: domain.BotKey(5), want: true},
		{name: "route under bots", parent: domain.KeyBots, child: domain.BotRouteKey(5), want: true},
		{name: "route under bot", parent: domain.BotKey(5), child: domain.BotRouteKey(5), want: true},
		{name: "other bot", parent: domain.BotKey(5), child: domain.BotKey(50), want: false},
		{name: "grid sibling", parent: domain.KeyGrid, child: domain.KeyRestaurants, want: false},
		{name: "child does not cover parent", parent: domain.BotKey(1), child: domain.KeyBots, want: false},
		{name: "orders by status under orders", parent: domain.KeyOrders, child: domain.OrdersByStatusKey(domain.OrderPending), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.parent.Covers(tt.child))
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key     domain.Key
		want    domain.Ref
		wantErr bool
	}{
		{key: domain.KeyGrid, want: domain.Ref{Family: domain.FamilyGrid}},
		{key: domain.KeyBots, want: domain.Ref{Family: domain.FamilyBots}},
		{key: domain.BotKey(7), want: domain.Ref{Family: domain.FamilyBot, ID: 7}},
		{key: domain.BotRouteKey(7), want: domain.Ref{Family: domain.FamilyBotRoute, ID: 7}},
		{key: domain.BotOrdersKey(7), want: domain.Ref{Family: domain.FamilyBotOrders, ID: 7}},
		{key: domain.OrderKey(3), want: domain.Ref{Family: domain.FamilyOrder, ID: 3}},
		{
			key:  domain.OrdersByStatusKey(domain.OrderPickedUp),
			want: domain.Ref{Family: domain.FamilyOrdersByStatus, Status: domain.OrderPickedUp},
		},
		{key: "bots/abc", wantErr: true},
		{key: "bots/0", wantErr: true},
		{key: "bots/1/unknown", wantErr: true},
		{key: "orders/status/LOST", wantErr: true},
		{key: "nothing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got, err := domain.ParseKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrUnknownResource.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCoord(t *testing.T) {
	c, err := domain.ParseCoord(" 2, 6 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Coord{X: 2, Y: 6}, c)
	assert.Equal(t, "2,6", c.String())

	for _, bad := range []string{"", "2", "a,b", "9,0", "-1,3"} {
		_, err := domain.ParseCoord(bad)
		assert.Error(t, err, bad)
	}
}

func TestCreateOrderRequest_Validate(t *testing.T) {
	valid := domain.NewCreateOrderRequest("Ann", "", domain.RestaurantSushi,
		domain.Coord{X: 2, Y: 2}, domain.Coord{X: 6, Y: 6})

	tests := []struct {
		name   string
		mutate func(*domain.CreateOrderRequest)
		field  string
	}{
		{name: "valid", mutate: func(*domain.CreateOrderRequest) {}},
		{name: "missing name", mutate: func(r *domain.CreateOrderRequest) { r.CustomerName = "  " }, field: "customer_name"},
		{name: "unknown restaurant", mutate: func(r *domain.CreateOrderRequest) { r.RestaurantType = "TACO" }, field: "restaurant_type"},
		{name: "missing restaurant", mutate: func(r *domain.CreateOrderRequest) { r.RestaurantType = "" }, field: "restaurant_type"},
		{name: "pickup off grid", mutate: func(r *domain.CreateOrderRequest) { r.PickupX = 9 }, field: "pickup"},
		{name: "delivery off grid", mutate: func(r *domain.CreateOrderRequest) { r.DeliveryY = -1 }, field: "delivery"},
		{name: "long phone", mutate: func(r *domain.CreateOrderRequest) { r.CustomerPhone = "012345678901234567890" }, field: "customer_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestServerError(t *testing.T) {
	err := error(&domain.ServerError{StatusCode: 404, Detail: "Bot not found"})
	assert.True(t, errors.Is(err, domain.ErrServer))
	assert.Equal(t, "Bot not found", err.Error())

	cmdErr := &domain.CommandError{Command: domain.CommandMoveBot, Err: err}
	assert.Equal(t, "Bot not found", cmdErr.Error())
	assert.True(t, errors.Is(cmdErr, domain.ErrServer))
	assert.Equal(t, "Bot not found", domain.DetailOf(cmdErr))

	assert.True(t, (&domain.ServerError{StatusCode: 400}).Permanent())
	assert.False(t, (&domain.ServerError{StatusCode: 429}).Permanent())
	assert.False(t, (&domain.ServerError{StatusCode: 503}).Permanent())
	assert.Equal(t, "backend returned status 503", (&domain.ServerError{StatusCode: 503}).Error())
}

func TestOrderStatus_Next(t *testing.T) {
	next, ok := domain.OrderPending.Next()
	assert.True(t, ok)
	assert.Equal(t, domain.OrderAssigned, next)

	_, ok = domain.OrderDelivered.Next()
	assert.False(t, ok)

	assert.True(t, domain.OrderPickedUp.Active())
	assert.False(t, domain.OrderCancelled.Active())
}

func TestFleetSummary(t *testing.T) {
	var stats domain.SystemStats
	require.NoError(t, json.Unmarshal([]byte(`{"bots":{"total":5,"idle":2,"busy":2}}`), &stats))

	fleet := stats.Fleet()
	assert.Equal(t, domain.FleetSummary{Total: 5, Active: 2, Available: 2, Maintenance: 1}, fleet)

	bots := []domain.Bot{{Status: domain.BotBusy}, {Status: domain.BotIdle}, {Status: domain.BotIdle}}
	assert.Equal(t, domain.FleetSummary{Total: 3, Active: 1, Available: 2}, domain.SummarizeFleet(bots))
}

func TestTimestamp_Unmarshal(t *testing.T) {
	var bot domain.Bot
	body := `{"id":1,"created_at":"2025-03-01T10:20:30.123456","updated_at":"2025-03-01T10:20:30Z"}`
	require.NoError(t, json.Unmarshal([]byte(body), &bot))

	assert.Equal(t, time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC), bot.CreatedAt.Time)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 20, 30, 0, time.UTC), bot.UpdatedAt.UTC())

	var empty domain.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())
}

func TestDistance_PathPairs(t *testing.T) {
	var d domain.Distance
	require.NoError(t, json.Unmarshal([]byte(`{"distance":2,"path":[[0,0],[1,0],{"x":1,"y":1}],"time_seconds":2}`), &d))
	assert.True(t, d.Reachable())
	assert.Equal(t, []domain.PathStep{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, d.Path)
}

func TestBlockedPaths_Segments(t *testing.T) {
	var flat, nested domain.BlockedPaths
	require.NoError(t, json.Unmarshal([]byte(`{"total_blocked":1,"blocked_segments":[{"from_x":0,"from_y":0,"to_x":1,"to_y":0,"direction":"right"}]}`), &flat))
	require.NoError(t, json.Unmarshal([]byte(`{"total_blocked":1,"visualization_data":{"blocked_segments":[{"from_x":2,"from_y":2,"to_x":2,"to_y":3,"direction":"down"}]}}`), &nested))

	require.Len(t, flat.Segments(), 1)
	assert.Equal(t, "right", flat.Segments()[0].Direction)
	require.Len(t, nested.Segments(), 1)
	assert.Equal(t, "down", nested.Segments()[0].Direction)
}

func TestValueOf(t *testing.T) {
	e := domain.Entry{Value: []domain.Bot{{ID: 1}}, HasValue: true}
	bots, ok := domain.ValueOf[[]domain.Bot](e)
	require.True(t, ok)
	assert.Len(t, bots, 1)

	_, ok = domain.ValueOf[domain.MapGrid](e)
	assert.False(t, ok)

	_, ok = domain.ValueOf[[]domain.Bot](domain.Entry{})
	assert.False(t, ok)
}
