package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// Health is the backend liveness answer.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// SystemStats aggregates map, fleet and order counters.
type SystemStats struct {
	Map struct {
		TotalNodes  int `json:"total_nodes"`
		Restaurants int `json:"restaurants"`
		Houses      int `json:"houses"`
		BotStations int `json:"bot_stations"`
	} `json:"map"`
	Bots struct {
		Total int `json:"total"`
		Idle  int `json:"idle"`
		Busy  int `json:"busy"`
	} `json:"bots"`
	Orders struct {
		Pending   int `json:"pending"`
		Active    int `json:"active"`
		Delivered int `json:"delivered"`
	} `json:"orders"`
}

// FleetSummary is the single interpretation of bot counters every surface shows.
// Active bots are BUSY ones; idle bots are Available.
type FleetSummary struct {
	Total       int
	Active      int
	Available   int
	Maintenance int
}

// Fleet derives the fleet summary from the backend counters.
func (s *SystemStats) Fleet() FleetSummary {
	maintenance := s.Bots.Total - s.Bots.Idle - s.Bots.Busy
	if maintenance < 0 {
		maintenance = 0
	}
	return FleetSummary{
		Total:       s.Bots.Total,
		Active:      s.Bots.Busy,
		Available:   s.Bots.Idle,
		Maintenance: maintenance,
	}
}

// SummarizeFleet derives the fleet summary from a bot list.
func SummarizeFleet(bots []Bot) FleetSummary {
	summary := FleetSummary{Total: len(bots)}
	for i := range bots {
		switch bots[i].Status {
		case BotBusy:
			summary.Active++
		case BotIdle:
			summary.Available++
		default:
			summary.Maintenance++
		}
	}
	return summary
}

// RoutePoint is a stop on a bot route.
type RoutePoint struct {
	X              int            `json:"x"`
	Y              int            `json:"y"`
	Type           string         `json:"type"`
	OrderID        *int           `json:"order_id"`
	RestaurantType RestaurantType `json:"restaurant_type,omitempty"`
	CustomerName   string         `json:"customer_name,omitempty"`
}

// BotRoute is a bot's planned delivery route.
type BotRoute struct {
	RoutePoints   []RoutePoint `json:"route_points"`
	TotalDistance int          `json:"total_distance"`
	EstimatedTime int          `json:"estimated_time"`
	DetailedPath  []Coord      `json:"detailed_path"`
}

// PathStep is a coordinate serialized as a two-element array.
type PathStep Coord

// UnmarshalJSON accepts [x, y] and {"x":..,"y":..}.
func (p *PathStep) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var pair [2]int
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		p.X, p.Y = pair[0], pair[1]
		return nil
	}
	var c Coord
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*p = PathStep(c)
	return nil
}

// Distance is the shortest path between two coordinates. Distance is -1 when unreachable.
type Distance struct {
	Distance    int        `json:"distance"`
	Path        []PathStep `json:"path"`
	TimeSeconds int        `json:"time_seconds"`
}

// Reachable reports whether a path exists.
func (d *Distance) Reachable() bool {
	return d.Distance >= 0
}

// Assignment is one order handed to a bot by a rebalance.
type Assignment struct {
	OrderID  int  `json:"order_id"`
	BotID    int  `json:"bot_id"`
	Distance *int `json:"distance"`
}

// RebalanceResult summarizes a rebalance pass.
type RebalanceResult struct {
	ReassignedOrders int          `json:"reassigned_orders"`
	PendingOrders    int          `json:"pending_orders"`
	Assignments      []Assignment `json:"assignments"`
}

// BotEfficiency is the per-bot entry of the efficiency report.
type BotEfficiency struct {
	BotID                int       `json:"bot_id"`
	TotalOrders          int       `json:"total_orders"`
	DeliveredOrders      int       `json:"delivered_orders"`
	CurrentLoad          string    `json:"current_load"`
	CurrentRouteDistance int       `json:"current_route_distance"`
	BatteryLevel         float64   `json:"battery_level"`
	Status               BotStatus `json:"status"`
}

// BlockedSegment is a closed edge between two adjacent nodes.
type BlockedSegment struct {
	FromX     int    `json:"from_x"`
	FromY     int    `json:"from_y"`
	ToX       int    `json:"to_x"`
	ToY       int    `json:"to_y"`
	Direction string `json:"direction"`
}

// BlockedPaths lists closed edges. The backend has served both a flat and a
// nested layout; Segments hides the difference.
type BlockedPaths struct {
	TotalBlocked      int              `json:"total_blocked"`
	BlockedSegments   []BlockedSegment `json:"blocked_segments"`
	VisualizationData *struct {
		BlockedSegments []BlockedSegment `json:"blocked_segments"`
	} `json:"visualization_data,omitempty"`
}

// Segments returns the blocked segments regardless of response layout.
func (b *BlockedPaths) Segments() []BlockedSegment {
	if len(b.BlockedSegments) > 0 {
		return b.BlockedSegments
	}
	if b.VisualizationData != nil {
		return b.VisualizationData.BlockedSegments
	}
	return nil
}

// AutoMovementStatus is the state of the backend's autopilot loop.
type AutoMovementStatus struct {
	IsRunning    bool    `json:"is_running"`
	MoveInterval float64 `json:"move_interval"`
	ActiveRoutes int     `json:"active_routes"`
}

// AutoMovementToggle is the answer to starting or stopping the autopilot.
type AutoMovementToggle struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Activity is a finished unit of work shown in the activity feed.
type Activity struct {
	Name     string
	At       time.Time
	Duration time.Duration
	Err      error
}
