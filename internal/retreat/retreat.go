package retreat

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/rulebook"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// Candidate :
// One region a dislodged unit might retreat to, together with the
// status that governs whether a retreat order naming it can succeed.
type Candidate struct {
	Region geo.RegionKey
	Status Status
}

// Pending :
// One dislodged unit awaiting a retreat order, along with the
// destinations it may be ordered to.
//
// The `Order` is the unit's original main-phase order (its nation,
// type and origin region are what the retreat order must match).
//
// The `DislodgedBy` is the move that dislodged it.
type Pending struct {
	Order       order.Order
	DislodgedBy order.Order
	Candidates  []Candidate
}

// Find :
// Looks up the computed status of a named destination region.
//
// Returns the candidate and whether it was found; an unlisted region
// is never a valid retreat destination (treat as Unreachable).
func (p Pending) Find(dest geo.RegionKey) (Candidate, bool) {
	for _, c := range p.Candidates {
		if c.Region == dest {
			return c, true
		}
	}
	return Candidate{}, false
}

// Context :
// The frozen set of pending retreats for one turn, ready to resolve
// the retreat orders it was built with.
type Context struct {
	m         *geo.Map
	pending   []Pending
	orders    []order.Order
	survivors []unit.Position
}

// Pending :
// Returns every dislodged unit awaiting a retreat order, in the
// deterministic order the main-phase outcome reported its orders.
func (c *Context) Pending() []Pending {
	return c.pending
}

// Map :
// Returns the map this retreat phase was computed against.
func (c *Context) Map() *geo.Map {
	return c.m
}

// NewContext :
// Builds the retreat phase's starting input from a resolved main
// phase — every dislodged unit, together with its candidate
// destinations and their statuses, per ¶4.8 — and pairs it with the
// retreat orders to resolve.
func NewContext(start *rulebook.Outcome, retreatOrders []order.Order) *Context {
	m := start.Map()
	orders := start.Orders()

	dislodgedOrigin := make(map[string]order.Order)
	for _, o := range orders {
		if by, dislodged := start.Dislodged(o.Origin.Province); dislodged {
			dislodgedOrigin[o.Origin.Province] = by
		}
	}

	survivors := survivingPositions(orders, start, dislodgedOrigin)
	occupants := make(map[string]bool, len(survivors))
	for _, p := range survivors {
		occupants[p.Region.Province] = true
	}
	contested := contestedProvinces(orders, start)

	var pending []Pending
	for _, o := range orders {
		by, dislodged := dislodgedOrigin[o.Origin.Province]
		if !dislodged {
			continue
		}
		pending = append(pending, Pending{
			Order:       o,
			DislodgedBy: by,
			Candidates:  candidatesFor(m, o, by, occupants, contested),
		})
	}

	return &Context{m: m, pending: pending, orders: retreatOrders, survivors: survivors}
}

// survivingPositions computes the unit positions that carry straight
// into the retreat phase untouched: every order whose own province
// was never dislodged, at wherever its move (if any) actually landed.
func survivingPositions(orders []order.Order, outcome *rulebook.Outcome, dislodgedOrigin map[string]order.Order) []unit.Position {
	out := make([]unit.Position, 0, len(orders))
	for _, o := range orders {
		if _, dislodged := dislodgedOrigin[o.Origin.Province]; dislodged {
			continue
		}
		u := unit.Unit{Nation: o.Nation, Type: o.UnitType}
		if mv, ok := o.Command.(order.Move); ok && outcome.Succeeds(o) {
			out = append(out, unit.Position{Unit: u, Region: mv.Dest})
			continue
		}
		out = append(out, unit.Position{Unit: u, Region: o.Origin})
	}
	return out
}

func candidatesFor(m *geo.Map, o, dislodgedBy order.Order, occupants map[string]bool, contested map[string]bool) []Candidate {
	army := o.UnitType == unit.Army
	blockedProvince, hasBlocked := dislodgerOrigin(dislodgedBy)
	// A successful move with no direct border arrived by convoy.
	if hasBlocked && !m.HasPassableBorder(dislodgedBy.Origin, o.Origin.Province, dislodgedBy.UnitType == unit.Army) {
		hasBlocked = false
	}

	var out []Candidate
	seen := make(map[string]bool)
	for _, border := range m.BordersContaining(o.Origin) {
		var other geo.RegionKey
		switch {
		case border.From == o.Origin:
			other = border.To
		case border.To == o.Origin:
			other = border.From
		default:
			continue
		}
		region, ok := m.FindRegion(other)
		if !ok || seen[region.Key.String()] {
			continue
		}
		seen[region.Key.String()] = true

		status := Available
		switch {
		case !border.PassableBy(army) || !region.CanOccupy(army):
			status = Unreachable
		case hasBlocked && region.Province == blockedProvince:
			status = BlockedByDislodger
		case occupants[region.Province]:
			status = Occupied
		case contested[region.Province]:
			status = Contested
		}

		out = append(out, Candidate{Region: region.Key, Status: status})
	}
	return out
}

// dislodgerOrigin reports the province the dislodging unit came from,
// unless its move was ordered via convoy — a convoyed arrival never
// blocks a retreat back along the convoy's destination (¶4.8). A move
// convoyed for want of a direct border is recognized by candidatesFor.
func dislodgerOrigin(dislodgedBy order.Order) (string, bool) {
	mv, ok := dislodgedBy.Command.(order.Move)
	if !ok {
		return "", false
	}
	if mv.Convoy == order.MustUseConvoy {
		return "", false
	}
	return dislodgedBy.Origin.Province, true
}

// contestedProvinces collects every province that was the target of
// two or more move orders this turn where none of them arrived — a
// stalemated square no retreat may land on either, per ¶4.8.
func contestedProvinces(orders []order.Order, outcome *rulebook.Outcome) map[string]bool {
	attempts := make(map[string]int)
	arrived := make(map[string]bool)
	for _, o := range orders {
		mv, ok := o.Command.(order.Move)
		if !ok {
			continue
		}
		attempts[mv.Dest.Province]++
		if outcome.Succeeds(o) {
			arrived[mv.Dest.Province] = true
		}
	}

	out := make(map[string]bool)
	for province, count := range attempts {
		if count >= 2 && !arrived[province] {
			out[province] = true
		}
	}
	return out
}

// Resolve :
// Decides every retreat order against this context's precomputed
// candidates, per ¶4.8: a Hold disbands; a Move is rejected outright
// if its destination is not Available, and otherwise succeeds unless
// some other retreat order targeted the same destination, in which
// case every retreat into that province is mutually `Prevented`.
//
// Returns the per-order outcomes alongside the unit positions
// surviving into the next phase: every non-dislodged unit untouched,
// plus every retreat that succeeded, at its new region.
func (c *Context) Resolve() (map[order.Order]Outcome, []unit.Position) {
	orders := c.orders
	out := make(map[order.Order]Outcome, len(orders))
	byDest := make(map[string][]order.Order)

	for _, o := range orders {
		switch cmd := o.Command.(type) {
		case order.RetreatHold:
			out[o] = HeldDisband{}
		case order.RetreatMove:
			pend, ok := c.findPending(o)
			if !ok {
				out[o] = HeldDisband{}
				continue
			}
			cand, found := pend.Find(cmd.Dest)
			if !found {
				out[o] = Blocked{Status: Unreachable}
				continue
			}
			if cand.Status != Available {
				out[o] = Blocked{Status: cand.Status}
				continue
			}
			byDest[cmd.Dest.Province] = append(byDest[cmd.Dest.Province], o)
		}
	}

	positions := append([]unit.Position(nil), c.survivors...)
	for _, contenders := range byDest {
		if len(contenders) == 1 {
			o := contenders[0]
			out[o] = Succeeds{}
			mv := o.Command.(order.RetreatMove)
			positions = append(positions, unit.Position{
				Unit:   unit.Unit{Nation: o.Nation, Type: o.UnitType},
				Region: mv.Dest,
			})
			continue
		}
		for i, o := range contenders {
			other := contenders[(i+1)%len(contenders)]
			out[o] = Prevented{By: other}
		}
	}

	return out, positions
}

func (c *Context) findPending(o order.Order) (Pending, bool) {
	for _, p := range c.pending {
		if p.Order.Nation == o.Nation && p.Order.Origin == o.Origin {
			return p, true
		}
	}
	return Pending{}, false
}
