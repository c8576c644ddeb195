package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	maxCustomerNameLen  = 100
	maxCustomerPhoneLen = 20
)

// CreateOrderRequest is the body of an order submission.
type CreateOrderRequest struct {
	CustomerName   string         `json:"customer_name"`
	CustomerPhone  string         `json:"customer_phone,omitempty"`
	RestaurantType RestaurantType `json:"restaurant_type"`
	PickupX        int            `json:"pickup_x"`
	PickupY        int            `json:"pickup_y"`
	DeliveryX      int            `json:"delivery_x"`
	DeliveryY      int            `json:"delivery_y"`
}

// NewCreateOrderRequest assembles a request from coordinates.
func NewCreateOrderRequest(name, phone string, restaurant RestaurantType, pickup, delivery Coord) CreateOrderRequest {
	return CreateOrderRequest{
		CustomerName:   name,
		CustomerPhone:  phone,
		RestaurantType: restaurant,
		PickupX:        pickup.X,
		PickupY:        pickup.Y,
		DeliveryX:      delivery.X,
		DeliveryY:      delivery.Y,
	}
}

// Pickup returns the requested pickup coordinate.
func (r *CreateOrderRequest) Pickup() Coord {
	return Coord{X: r.PickupX, Y: r.PickupY}
}

// Delivery returns the requested delivery coordinate.
func (r *CreateOrderRequest) Delivery() Coord {
	return Coord{X: r.DeliveryX, Y: r.DeliveryY}
}

// Validate checks the request before it is sent. The first failing field is reported.
func (r *CreateOrderRequest) Validate() error {
	name := strings.TrimSpace(r.CustomerName)
	switch {
	case name == "":
		return &ValidationError{Field: "customer_name", Reason: "is required"}
	case utf8.RuneCountInString(name) > maxCustomerNameLen:
		return &ValidationError{Field: "customer_name", Reason: "must be at most 100 characters"}
	case utf8.RuneCountInString(r.CustomerPhone) > maxCustomerPhoneLen:
		return &ValidationError{Field: "customer_phone", Reason: "must be at most 20 characters"}
	}

	if _, ok := ParseRestaurantType(string(r.RestaurantType)); !ok {
		return &ValidationError{Field: "restaurant_type", Reason: "must be one of RAMEN, CURRY, PIZZA, SUSHI"}
	}
	if !r.Pickup().InBounds(GridSize) {
		return &ValidationError{Field: "pickup", Reason: "must lie within the grid"}
	}
	if !r.Delivery().InBounds(GridSize) {
		return &ValidationError{Field: "delivery", Reason: "must lie within the grid"}
	}
	return nil
}
