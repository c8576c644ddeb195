// Package domain contains the fleet types, resource keys and settings shared by every layer.
package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// GridSize is the side length of the delivery grid.
const GridSize = 9

// Coord is a grid coordinate.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the "x,y" lookup form of the coordinate.
func (c Coord) String() string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y)
}

// InBounds reports whether the coordinate lies within a grid of the given size.
func (c Coord) InBounds(size int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < size && c.Y < size
}

// ParseCoord parses the "x,y" form of a coordinate and checks it against the default grid.
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Coord{}, zerr.With(ErrInvalidCoord, "value", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return Coord{}, zerr.With(ErrInvalidCoord, "value", s)
	}
	c := Coord{X: x, Y: y}
	if !c.InBounds(GridSize) {
		return Coord{}, zerr.With(ErrInvalidCoord, "value", s)
	}
	return c, nil
}

// BotStatus is the operational state reported for a bot.
type BotStatus string

// Bot statuses.
const (
	BotIdle        BotStatus = "IDLE"
	BotBusy        BotStatus = "BUSY"
	BotMaintenance BotStatus = "MAINTENANCE"
)

// Bot is a delivery robot as reported by the backend.
type Bot struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	CurrentX      int       `json:"current_x"`
	CurrentY      int       `json:"current_y"`
	MaxCapacity   int       `json:"max_capacity"`
	Status        BotStatus `json:"status"`
	CurrentOrders int       `json:"current_orders"`
	BatteryLevel  float64   `json:"battery_level"`
	CreatedAt     Timestamp `json:"created_at"`
	UpdatedAt     Timestamp `json:"updated_at"`
}

// Position returns the bot's reported coordinate.
func (b *Bot) Position() Coord {
	return Coord{X: b.CurrentX, Y: b.CurrentY}
}

// Summary returns the occupant view of the bot.
func (b *Bot) Summary() BotSummary {
	return BotSummary{
		ID:            b.ID,
		Name:          b.Name,
		Status:        b.Status,
		CurrentOrders: b.CurrentOrders,
		BatteryLevel:  b.BatteryLevel,
	}
}

// BotSummary is a bot as it appears inside a grid cell.
type BotSummary struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Status        BotStatus `json:"status"`
	CurrentOrders int       `json:"current_orders"`
	BatteryLevel  float64   `json:"battery_level"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order statuses.
const (
	OrderPending   OrderStatus = "PENDING"
	OrderAssigned  OrderStatus = "ASSIGNED"
	OrderPickedUp  OrderStatus = "PICKED_UP"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every order status in lifecycle order.
var OrderStatuses = []OrderStatus{OrderPending, OrderAssigned, OrderPickedUp, OrderDelivered, OrderCancelled}

// ParseOrderStatus accepts a status name in any case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	candidate := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, status := range OrderStatuses {
		if status == candidate {
			return status, nil
		}
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown order status %q", s)}
}

// Active reports whether the order is still being worked on.
func (s OrderStatus) Active() bool {
	return s == OrderPending || s == OrderAssigned || s == OrderPickedUp
}

// Terminal reports whether the order can no longer change.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Next returns the status an operator advances the order to, if any.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderPending:
		return OrderAssigned, true
	case OrderAssigned:
		return OrderPickedUp, true
	case OrderPickedUp:
		return OrderDelivered, true
	default:
		return "", false
	}
}

// RestaurantType is the cuisine served at a restaurant node.
type RestaurantType string

// Restaurant types.
const (
	RestaurantRamen RestaurantType = "RAMEN"
	RestaurantCurry RestaurantType = "CURRY"
	RestaurantPizza RestaurantType = "PIZZA"
	RestaurantSushi RestaurantType = "SUSHI"
)

// RestaurantTypes lists every restaurant type.
var RestaurantTypes = []RestaurantType{RestaurantRamen, RestaurantCurry, RestaurantPizza, RestaurantSushi}

// ParseRestaurantType accepts a restaurant type in any case.
func ParseRestaurantType(s string) (RestaurantType, bool) {
	candidate := RestaurantType(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range RestaurantTypes {
		if t == candidate {
			return t, true
		}
	}
	return "", false
}

// Order is a delivery order as reported by the backend.
type Order struct {
	ID                int            `json:"id"`
	CustomerName      string         `json:"customer_name"`
	CustomerPhone     *string        `json:"customer_phone"`
	RestaurantType    RestaurantType `json:"restaurant_type"`
	PickupX           int            `json:"pickup_x"`
	PickupY           int            `json:"pickup_y"`
	DeliveryX         int            `json:"delivery_x"`
	DeliveryY         int            `json:"delivery_y"`
	Status            OrderStatus    `json:"status"`
	BotID             *int           `json:"bot_id"`
	Priority          int            `json:"priority"`
	EstimatedDistance *int           `json:"estimated_distance"`
	EstimatedTime     *int           `json:"estimated_time"`
	CreatedAt         Timestamp      `json:"created_at"`
	UpdatedAt         Timestamp      `json:"updated_at"`
}

// Pickup returns the order's pickup coordinate.
func (o *Order) Pickup() Coord {
	return Coord{X: o.PickupX, Y: o.PickupY}
}

// Delivery returns the order's delivery coordinate.
func (o *Order) Delivery() Coord {
	return Coord{X: o.DeliveryX, Y: o.DeliveryY}
}

// Restaurant is a pickup point.
type Restaurant struct {
	ID             int            `json:"id"`
	X              int            `json:"x"`
	Y              int            `json:"y"`
	RestaurantType RestaurantType `json:"restaurant_type"`
	Name           string         `json:"name"`
}

// DeliveryPoint is a house that accepts deliveries.
type DeliveryPoint struct {
	ID   int    `json:"id"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Name string `json:"name"`
}

// MoveResult is the backend's answer to a manual bot move.
type MoveResult struct {
	Message     string `json:"message"`
	NewPosition Coord  `json:"new_position"`
	BotID       int    `json:"bot_id"`
}

// Message is a plain acknowledgement body.
type Message struct {
	Message string `json:"message"`
}
