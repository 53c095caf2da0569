package submission

import (
	"fmt"
	"sort"

	"github.com/TedDriggs/diplomacy-sub000/internal/convoy"
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/rulebook"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
	"github.com/TedDriggs/diplomacy-sub000/pkg/logger"
)

// ErrUnknownRegion : A starting position named a region the map never declared.
var ErrUnknownRegion = fmt.Errorf("position references unknown region")

// ErrDuplicatePosition : Two starting positions claimed the same province.
var ErrDuplicatePosition = fmt.Errorf("two units occupy the same province")

// Submission :
// A validated, frozen turn of raw orders, ready for adjudication.
type Submission struct {
	ctx *Context
}

// Context :
// Returns the frozen validation result this submission wraps.
func (s *Submission) Context() *Context {
	return s.ctx
}

// Adjudicate :
// Resolves this submission's orders under the given rulebook edition.
// `log` may be nil to discard tracing.
func (s *Submission) Adjudicate(edition rulebook.Edition, log logger.Logger) *rulebook.Outcome {
	return rulebook.Adjudicate(s.ctx.Map, s.ctx.Orders, edition, log)
}

// New :
// Validates `raw` against `positions` on `m`, per ¶4.2: matches each
// order to the unit standing at its stated origin (rejecting
// `NoUnit`/`ForeignUnit` mismatches), discards duplicate orders to the
// same unit (`MultipleToSameUnit`), rejects moves with neither a
// direct border nor a conceivable convoy route
// (`UnreachableDestination`), and synthesizes a `Hold` for every unit
// left without a surviving order.
//
// Returns an error only for malformed input (an unknown region, a
// starting position whose unit type cannot occupy its region, or two
// starting positions in the same province) — a raw order being
// rejected is not itself an error, it is recorded in
// `Context.Invalid`.
func New(m *geo.Map, positions []unit.Position, raw []order.Order) (*Submission, error) {
	ctx, err := build(m, positions, raw)
	if err != nil {
		return nil, err
	}
	return &Submission{ctx: ctx}, nil
}

// WithInferredState :
// Builds a submission without an explicit starting-position list,
// inferring one position per distinct order origin from the order
// itself (its stated nation and unit type). Useful for scenarios and
// tests that only have a list of orders to hand.
//
// When two orders name the same origin province, the position is
// inferred from whichever comes first in `orders`; later orders to
// that province are then validated the ordinary way against it (and
// will typically fail as `ForeignUnit`, `NoUnit`, or
// `MultipleToSameUnit`, depending on how they disagree).
func WithInferredState(m *geo.Map, orders []order.Order) (*Submission, error) {
	seen := make(map[string]bool, len(orders))
	positions := make([]unit.Position, 0, len(orders))
	for _, o := range orders {
		province := o.Origin.Province
		if seen[province] {
			continue
		}
		seen[province] = true
		positions = append(positions, unit.Position{
			Unit:   unit.Unit{Nation: o.Nation, Type: o.UnitType},
			Region: o.Origin,
		})
	}
	return New(m, positions, orders)
}

func build(m *geo.Map, positions []unit.Position, raw []order.Order) (*Context, error) {
	posByProvince := make(map[string]unit.Position, len(positions))
	for _, p := range positions {
		region, ok := m.FindRegion(p.Region)
		if !ok {
			return nil, ErrUnknownRegion
		}
		if err := p.Valid(region); err != nil {
			return nil, err
		}
		if _, dup := posByProvince[p.Region.Province]; dup {
			return nil, ErrDuplicatePosition
		}
		posByProvince[p.Region.Province] = p
	}

	provinces := make([]string, 0, len(posByProvince))
	for province := range posByProvince {
		provinces = append(provinces, province)
	}
	sort.Strings(provinces)

	assigned := make(map[string]order.Order, len(raw))
	var invalid []InvalidOrder
	var matched []order.Order

	for _, o := range raw {
		province := o.Origin.Province
		pos, ok := posByProvince[province]
		switch {
		case !ok:
			invalid = append(invalid, InvalidOrder{Order: o, Reason: order.NoUnit})
		case pos.Unit.Type != o.UnitType:
			invalid = append(invalid, InvalidOrder{Order: o, Reason: order.NoUnit})
		case pos.Unit.Nation != o.Nation:
			invalid = append(invalid, InvalidOrder{Order: o, Reason: order.ForeignUnit})
		default:
			if _, taken := assigned[province]; taken {
				invalid = append(invalid, InvalidOrder{Order: o, Reason: order.MultipleToSameUnit})
				continue
			}
			assigned[province] = o
			matched = append(matched, o)
		}
	}

	for _, o := range matched {
		mv, ok := o.Command.(order.Move)
		if !ok {
			continue
		}
		if moveReachable(m, matched, o, mv) {
			continue
		}
		delete(assigned, o.Origin.Province)
		invalid = append(invalid, InvalidOrder{Order: o, Reason: order.UnreachableDestination})
	}

	orders := make([]order.Order, 0, len(provinces))
	for _, o := range matched {
		if a, ok := assigned[o.Origin.Province]; ok && a == o {
			orders = append(orders, o)
		}
	}
	for _, province := range provinces {
		if _, ok := assigned[province]; ok {
			continue
		}
		pos := posByProvince[province]
		orders = append(orders, order.Order{
			Nation:   pos.Unit.Nation,
			UnitType: pos.Unit.Type,
			Origin:   pos.Region,
			Command:  order.Hold{},
		})
	}

	return &Context{
		Map:       m,
		Positions: positions,
		Orders:    orders,
		Invalid:   invalid,
	}, nil
}

// moveReachable decides whether a move is even conceivable before any
// resolver state exists: a direct, unit-appropriate border, or — for
// armies only — a convoy route that ignores whether any candidate
// fleet's own order will actually succeed.
func moveReachable(m *geo.Map, allOrders []order.Order, o order.Order, mv order.Move) bool {
	if m.HasPassableBorder(o.Origin, mv.Dest.Province, o.UnitType == unit.Army) {
		return true
	}
	if o.UnitType != unit.Army {
		return false
	}
	return convoy.PreResolutionReachable(m, allOrders, o.Origin.Province, mv.Dest.Province)
}
