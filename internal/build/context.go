// Package build implements the build/disband phase described in
// spec.md ¶4.9: it validates build and disband orders against each
// nation's supply-center/unit-count surplus or deficit, and selects
// civil-disorder disbands for nations that owe more than they
// ordered.
package build

import (
	"fmt"
	"sort"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// ErrNoOwnerships : The caller passed an empty previous-ownership map. Per ¶7, the very first
// Winter of a game must still supply at least one ownership — construct it with
// `InitialOwnerships` from the map's home-supply-center metadata rather than
// caching a global.
var ErrNoOwnerships = fmt.Errorf("build: at least one supply center ownership must be supplied")

// Ownership :
// Which nation currently controls each supply-center province.
// Provinces absent from the map are never unowned-and-tracked; a
// missing key simply means nobody has ever owned that center.
type Ownership map[string]unit.Nation

// InitialOwnerships :
// Builds the ownership map for the very first Winter of a game:
// every home supply center belongs to its home nation, and every
// other supply center is unowned. Grounded in the original's
// `to_initial_ownerships`.
func InitialOwnerships(m *geo.Map) Ownership {
	out := make(Ownership)
	for _, p := range m.Provinces() {
		if p.Home != "" {
			out[p.Key] = unit.Nation(p.Home)
		}
	}
	return out
}

type direction int

const (
	buildDirection direction = iota
	disbandDirection
)

type quota struct {
	direction direction
	remaining int
}

// Context :
// The frozen input to one build phase, per ¶4.9 and the external
// interface of ¶6 (`BuildContext.new`).
type Context struct {
	m          *geo.Map
	ownership  Ownership
	homeSCs    map[unit.Nation]map[string]bool
	occupierAt map[string]unit.Nation
	quotas     map[unit.Nation]*quota
	units      map[unit.Nation][]unit.Position
	orders     []order.Order
}

// NewContext :
// Builds a build-phase context from the map, the supply-center
// ownerships in effect before this turn, the current per-nation unit
// positions (after the preceding Fall retreat phase), and the build
// orders to resolve.
//
// Ownership updates per ¶4.9's implicit rule: a supply center
// currently occupied by a unit changes to that unit's nation; an
// unoccupied center keeps its previous owner.
//
// Returns `ErrNoOwnerships` if `previous` is empty — the caller must
// pass at least one ownership (use `InitialOwnerships` for the first
// Winter of a game).
func NewContext(m *geo.Map, previous Ownership, positions []unit.Position, orders []order.Order) (*Context, error) {
	if len(previous) == 0 {
		return nil, ErrNoOwnerships
	}

	occupierAt := make(map[string]unit.Nation, len(positions))
	for _, p := range positions {
		occupierAt[p.Region.Province] = p.Unit.Nation
	}

	ownership := make(Ownership, len(previous))
	for k, v := range previous {
		ownership[k] = v
	}
	for _, p := range m.Provinces() {
		if !p.SupplyCenter {
			continue
		}
		if nat, ok := occupierAt[p.Key]; ok {
			ownership[p.Key] = nat
		}
	}

	homeSCs := make(map[unit.Nation]map[string]bool)
	for _, p := range m.Provinces() {
		if p.Home == "" {
			continue
		}
		nat := unit.Nation(p.Home)
		if homeSCs[nat] == nil {
			homeSCs[nat] = make(map[string]bool)
		}
		homeSCs[nat][p.Key] = true
	}

	ownedCount := make(map[unit.Nation]int)
	for _, nat := range ownership {
		ownedCount[nat]++
	}

	units := make(map[unit.Nation][]unit.Position)
	unitCount := make(map[unit.Nation]int)
	for _, p := range positions {
		units[p.Unit.Nation] = append(units[p.Unit.Nation], p)
		unitCount[p.Unit.Nation]++
	}

	nations := make(map[unit.Nation]bool)
	for nat := range ownedCount {
		nations[nat] = true
	}
	for nat := range unitCount {
		nations[nat] = true
	}
	for _, o := range orders {
		nations[o.Nation] = true
	}

	quotas := make(map[unit.Nation]*quota)
	for nat := range nations {
		net := ownedCount[nat] - unitCount[nat]
		switch {
		case net > 0:
			quotas[nat] = &quota{direction: buildDirection, remaining: net}
		case net < 0:
			quotas[nat] = &quota{direction: disbandDirection, remaining: -net}
		}
	}

	return &Context{
		m:          m,
		ownership:  ownership,
		homeSCs:    homeSCs,
		occupierAt: occupierAt,
		quotas:     quotas,
		units:      units,
		orders:     orders,
	}, nil
}

// Ownership :
// Returns the updated supply-center ownership this context computed,
// ready to be carried forward as next year's `previous` ownership.
func (c *Context) Ownership() Ownership {
	out := make(Ownership, len(c.ownership))
	for k, v := range c.ownership {
		out[k] = v
	}
	return out
}

// Result :
// The settled outcome of a build phase: a typed result per order, the
// final unit set after every successful build/disband and civil
// disorder, and which units (if any) were disbanded by civil
// disorder.
type Result struct {
	Orders        map[order.Order]Outcome
	FinalUnits    []unit.Position
	CivilDisorder []unit.Position
}

// Resolve :
// Adjudicates every build order against this context's quotas, per
// ¶4.9, and then selects civil-disorder disbands for any nation that
// still owes more disbands than it successfully ordered.
func (c *Context) Resolve() *Result {
	out := make(map[order.Order]Outcome, len(c.orders))
	for _, o := range c.orders {
		out[o] = c.resolveOrder(o)
	}

	var civilDisorder []unit.Position
	nations := make([]unit.Nation, 0, len(c.quotas))
	for nat := range c.quotas {
		nations = append(nations, nat)
	}
	sort.Slice(nations, func(i, j int) bool { return nations[i] < nations[j] })

	for _, nat := range nations {
		q := c.quotas[nat]
		if q.direction != disbandDirection || q.remaining == 0 {
			continue
		}
		chosen := c.selectCivilDisorder(nat, q.remaining)
		civilDisorder = append(civilDisorder, chosen...)
		for _, p := range chosen {
			c.removeAtProvince(nat, p.Region.Province)
		}
	}

	var final []unit.Position
	for _, ps := range c.units {
		final = append(final, ps...)
	}
	sort.Slice(final, func(i, j int) bool {
		if final[i].Unit.Nation != final[j].Unit.Nation {
			return final[i].Unit.Nation < final[j].Unit.Nation
		}
		return final[i].Region.Province < final[j].Region.Province
	})

	return &Result{Orders: out, FinalUnits: final, CivilDisorder: civilDisorder}
}

func (c *Context) resolveOrder(o order.Order) Outcome {
	q, ok := c.quotas[o.Nation]
	if !ok {
		return RedeploymentProhibited{}
	}

	switch o.Command.(type) {
	case order.Build:
		if q.direction != buildDirection {
			return RedeploymentProhibited{}
		}
	case order.Disband:
		if q.direction != disbandDirection {
			return RedeploymentProhibited{}
		}
	default:
		return RedeploymentProhibited{}
	}

	outcome := c.adjudicate(o)
	if !outcome.Succeeds() {
		return outcome
	}

	switch o.Command.(type) {
	case order.Build:
		if q.remaining == 0 {
			return AllBuildsUsed{}
		}
		q.remaining--
		c.units[o.Nation] = append(c.units[o.Nation], unit.Position{
			Unit:   unit.Unit{Nation: o.Nation, Type: o.UnitType},
			Region: o.Origin,
		})
		return Succeeds{}
	case order.Disband:
		if q.remaining == 0 {
			return AllDisbandsUsed{}
		}
		q.remaining--
		c.removeAtProvince(o.Nation, o.Origin.Province)
		return Succeeds{}
	default:
		return RedeploymentProhibited{}
	}
}

// adjudicate decides whether a build or disband order is otherwise
// legal, per ¶4.9, without regard to quota bookkeeping. It consults
// `occupierAt`, the immutable snapshot of positions this context was
// built with, so that two orders targeting the same province are each
// judged against the turn's starting state rather than against each
// other's side effects.
func (c *Context) adjudicate(o order.Order) Outcome {
	province := o.Origin.Province

	switch o.Command.(type) {
	case order.Build:
		if !c.homeSCs[o.Nation][province] {
			return InvalidProvince{}
		}
		if c.ownership[province] != o.Nation {
			return ForeignControlled{}
		}
		if _, occupied := c.occupierAt[province]; occupied {
			return OccupiedProvince{}
		}
		region, ok := c.m.FindRegion(o.Origin)
		if !ok {
			return InvalidProvince{}
		}
		if !region.CanOccupy(o.UnitType.IsArmy()) {
			return InvalidTerrain{}
		}
		return Succeeds{}

	case order.Disband:
		nat, occupied := c.occupierAt[province]
		if !occupied {
			return DisbandingNonexistentUnit{}
		}
		if nat != o.Nation {
			return DisbandingForeignUnit{}
		}
		return Succeeds{}

	default:
		return RedeploymentProhibited{}
	}
}

func (c *Context) removeAtProvince(nat unit.Nation, province string) {
	units := c.units[nat]
	for i, p := range units {
		if p.Region.Province == province {
			c.units[nat] = append(units[:i:i], units[i+1:]...)
			return
		}
	}
}

// selectCivilDisorder picks `n` of `nat`'s current units to disband
// automatically, per ¶4.9's distance rule: farthest from the nearest
// home supply center first, ties broken by province key (the 2023
// edition's tie-break, adopted as canonical per SPEC_FULL.md ¶9).
func (c *Context) selectCivilDisorder(nat unit.Nation, n int) []unit.Position {
	units := append([]unit.Position(nil), c.units[nat]...)
	homes := c.homeSCs[nat]

	type scored struct {
		pos  unit.Position
		dist int
	}
	scoredUnits := make([]scored, len(units))
	for i, p := range units {
		scoredUnits[i] = scored{
			pos:  p,
			dist: distanceToNearestHome(c.m, p.Region.Province, homes, p.Unit.Type.IsArmy()),
		}
	}
	sort.Slice(scoredUnits, func(i, j int) bool {
		if scoredUnits[i].dist != scoredUnits[j].dist {
			return scoredUnits[i].dist > scoredUnits[j].dist
		}
		return scoredUnits[i].pos.Region.Province < scoredUnits[j].pos.Region.Province
	})

	if n > len(scoredUnits) {
		n = len(scoredUnits)
	}
	out := make([]unit.Position, n)
	for i := 0; i < n; i++ {
		out[i] = scoredUnits[i].pos
	}
	return out
}
