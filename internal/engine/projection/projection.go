// Package projection derives the per-coordinate grid view from the grid,
// bots and orders resources.
package projection

import (
	"slices"

	"go.trai.ch/eagroute/internal/core/domain"
)

// Input holds the source snapshots. Entries without a value are skipped;
// a stale or errored entry still contributes its last good value.
type Input struct {
	Grid   domain.Entry
	Bots   domain.Entry
	Orders domain.Entry
}

// Unplaced lists live entities whose coordinate has no cell.
type Unplaced struct {
	Bots   []domain.BotSummary
	Orders []domain.OrderOverlay
}

// Projection is an immutable grid view. Build a new one on every change.
type Projection struct {
	// Ready is false until the grid resource has produced a value.
	Ready bool
	Size  int
	// Cells is keyed by "x,y".
	Cells map[string]domain.Cell
	// Missing lists in-range coordinates the grid resource did not describe.
	Missing  []domain.Coord
	Unplaced Unplaced
}

// Build computes a projection. It is pure.
func Build(in Input) Projection {
	p := Projection{Size: domain.GridSize, Cells: make(map[string]domain.Cell)}

	grid, ok := domain.ValueOf[domain.MapGrid](in.Grid)
	if !ok {
		return p
	}
	p.Ready = true
	if grid.GridSize > 0 {
		p.Size = grid.GridSize
	}

	bots, haveBots := domain.ValueOf[[]domain.Bot](in.Bots)
	orders, haveOrders := domain.ValueOf[[]domain.Order](in.Orders)

	for y := range p.Size {
		for x := range p.Size {
			coord := domain.Coord{X: x, Y: y}
			src, ok := grid.Grid[coord.String()]
			if !ok {
				p.Missing = append(p.Missing, coord)
				continue
			}
			cell := domain.Cell{
				Coord: coord,
				Name:  src.Name,
				POI:   pointOfInterest(src),
			}
			if src.BlockedPaths != nil {
				cell.Blocked = *src.BlockedPaths
			}
			if !haveBots {
				cell.Occupants = slices.Clone(src.Bots)
			}
			if !haveOrders {
				cell.Overlays = slices.Clone(src.ActiveOrders)
			}
			p.Cells[coord.String()] = cell
		}
	}

	if haveBots {
		for _, bot := range bots {
			if !p.place(bot.Position(), func(c *domain.Cell) { c.Occupants = append(c.Occupants, bot.Summary()) }) {
				p.Unplaced.Bots = append(p.Unplaced.Bots, bot.Summary())
			}
		}
	}

	if haveOrders {
		for _, order := range orders {
			if !order.Status.Active() {
				continue
			}
			for _, overlay := range overlays(order) {
				at := order.Pickup()
				if overlay.LocationType == domain.LocationDelivery {
					at = order.Delivery()
				}
				if !p.place(at, func(c *domain.Cell) { c.Overlays = append(c.Overlays, overlay) }) {
					p.Unplaced.Orders = append(p.Unplaced.Orders, overlay)
				}
			}
		}
	}

	return p
}

// place applies fn to the cell at coord. It reports false when there is none.
func (p *Projection) place(coord domain.Coord, fn func(*domain.Cell)) bool {
	if !coord.InBounds(p.Size) {
		return false
	}
	cell, ok := p.Cells[coord.String()]
	if !ok {
		return false
	}
	fn(&cell)
	p.Cells[coord.String()] = cell
	return true
}

func overlays(o domain.Order) [2]domain.OrderOverlay {
	base := domain.OrderOverlay{
		ID:             o.ID,
		CustomerName:   o.CustomerName,
		RestaurantType: o.RestaurantType,
		Status:         o.Status,
		BotID:          o.BotID,
	}
	pickup, delivery := base, base
	pickup.LocationType = domain.LocationPickup
	delivery.LocationType = domain.LocationDelivery
	return [2]domain.OrderOverlay{pickup, delivery}
}

func pointOfInterest(c domain.GridCell) domain.PointOfInterest {
	switch {
	case c.IsRestaurant || c.NodeType == domain.NodeRestaurant:
		poi := domain.PointOfInterest{Kind: domain.POIRestaurant}
		if c.RestaurantType != nil {
			poi.Restaurant = *c.RestaurantType
		}
		return poi
	case c.IsDeliveryPoint || c.NodeType == domain.NodeHouse:
		return domain.PointOfInterest{Kind: domain.POIDeliveryPoint}
	case c.IsBotStation || c.NodeType == domain.NodeBotStation:
		return domain.PointOfInterest{Kind: domain.POIBotStation}
	default:
		return domain.PointOfInterest{}
	}
}

// Cell returns the cell at coord.
func (p *Projection) Cell(coord domain.Coord) (domain.Cell, bool) {
	cell, ok := p.Cells[coord.String()]
	return cell, ok
}

// Locate returns the coordinate of the cell whose occupants include bot id.
func (p *Projection) Locate(botID int) (domain.Coord, bool) {
	for _, cell := range p.Cells {
		for _, bot := range cell.Occupants {
			if bot.ID == botID {
				return cell.Coord, true
			}
		}
	}
	return domain.Coord{}, false
}

// Bot returns the summary of bot id if any cell holds it.
func (p *Projection) Bot(botID int) (domain.BotSummary, bool) {
	coord, ok := p.Locate(botID)
	if !ok {
		return domain.BotSummary{}, false
	}
	cell := p.Cells[coord.String()]
	i := slices.IndexFunc(cell.Occupants, func(b domain.BotSummary) bool { return b.ID == botID })
	return cell.Occupants[i], true
}
