package submission

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// InvalidOrder :
// One raw order that was rejected before adjudication, paired with
// the reason it never entered the resolver.
type InvalidOrder struct {
	Order  order.Order
	Reason order.InvalidReason
}

// Context :
// The frozen result of validating a turn's raw orders against a map
// and a set of starting positions: every unit has exactly one order
// (its own, or a synthesized hold), and every rejected raw order is
// recorded alongside why.
//
// The `Orders` slice lists the accepted raw orders in submission
// order, followed by the synthesized holds sorted by origin province
// key, giving every consumer — the resolver, retreat/build engines,
// tests — the same deterministic iteration order without needing to
// re-derive it.
type Context struct {
	Map       *geo.Map
	Positions []unit.Position
	Orders    []order.Order
	Invalid   []InvalidOrder
}

// FindOrderToProvince :
// Looks up the settled order (real or synthesized) for the unit
// occupying the given province.
//
// Returns the order and whether a unit occupies that province at all.
func (c *Context) FindOrderToProvince(province string) (order.Order, bool) {
	for _, o := range c.Orders {
		if o.Origin.Province == province {
			return o, true
		}
	}
	return order.Order{}, false
}

// FindPosition :
// Looks up the starting position of the unit occupying the given
// province, if any.
func (c *Context) FindPosition(province string) (unit.Position, bool) {
	for _, p := range c.Positions {
		if p.Region.Province == province {
			return p, true
		}
	}
	return unit.Position{}, false
}
