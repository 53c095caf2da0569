package rulebook

import (
	"fmt"

	"github.com/TedDriggs/diplomacy-sub000/internal/convoy"
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/resolve"
	"github.com/TedDriggs/diplomacy-sub000/internal/strength"
	"github.com/TedDriggs/diplomacy-sub000/internal/support"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
	"github.com/TedDriggs/diplomacy-sub000/pkg/logger"
)

// Outcome :
// The settled result of adjudicating one turn's worth of orders: a
// typed outcome for every order handed to `Adjudicate`, looked up by
// exact order value through `Get`.
type Outcome struct {
	engine *resolve.Engine
	m      *geo.Map
	values map[order.Order]resolve.OrderOutcome
}

// Get :
// Looks up the typed outcome of a specific order.
//
// Returns the outcome and whether this order was part of the turn
// adjudicated.
func (r *Outcome) Get(o order.Order) (resolve.OrderOutcome, bool) {
	v, ok := r.values[o]
	return v, ok
}

// Succeeds :
// Convenience wrapper projecting `Get` straight to a boolean.
func (r *Outcome) Succeeds(o order.Order) bool {
	v, ok := r.Get(o)
	return ok && v.Succeeds()
}

// Orders :
// Returns every order this outcome covers, in the deterministic order
// they were adjudicated.
func (r *Outcome) Orders() []order.Order {
	return r.engine.Orders()
}

// Map :
// Returns the map this turn was adjudicated against, so a caller
// building the following retreat phase doesn't have to carry it
// separately.
func (r *Outcome) Map() *geo.Map {
	return r.m
}

// Paradoxical :
// Reports whether the given convoy order was declared failed to
// break a paradox.
func (r *Outcome) Paradoxical(o order.Order) bool {
	return r.engine.Paradoxical(o)
}

// Dislodged :
// Determines whether the unit that started the turn at `province` was
// dislodged: its own order was not a move that itself succeeded, and
// some other order's move succeeded into `province`. This applies
// uniformly regardless of what command the occupier was given —
// exactly the same check whether it held, supported, convoyed, or
// simply failed to get away.
//
// Returns the dislodging order and true, or the zero order and false
// if the unit at `province` was not dislodged (including the case
// where no unit started there at all).
func (r *Outcome) Dislodged(province string) (order.Order, bool) {
	occupier, ok := findOrderToProvince(r.engine.Orders(), province)
	if !ok {
		return order.Order{}, false
	}
	if _, ok := occupier.Command.(order.Move); ok && r.Succeeds(occupier) {
		return order.Order{}, false
	}
	return findSuccessfulMoveInto(r.engine.Orders(), r.engine, province, occupier)
}

// Adjudicate :
// Resolves every order in `orders` against `m` under the given
// `edition`, returning a settled `Outcome`. `orders` must already be
// the validated, deterministically-ordered set a `Submission`
// produces — one order per unit, holds synthesized — since this
// package does not re-validate raw input. `log` may be nil.
func Adjudicate(m *geo.Map, orders []order.Order, edition Edition, log logger.Logger) *Outcome {
	d := &dispatcher{m: m, edition: edition}
	engine := resolve.NewEngine(orders, d.adjudicate, d.circularMove, d.paradoxConvoy, log)
	return &Outcome{engine: engine, m: m, values: engine.ResolveAll()}
}

// dispatcher closes over the map and edition so the per-order
// adjudication functions don't need to thread them through every
// call.
type dispatcher struct {
	m       *geo.Map
	edition Edition
}

func (d *dispatcher) adjudicate(o order.Order, e *resolve.Engine) resolve.OrderOutcome {
	switch cmd := o.Command.(type) {
	case order.Hold:
		return d.handleHold(o, e)
	case order.Move:
		return d.handleMove(o, cmd, e)
	case order.Support:
		return d.handleSupport(o, cmd, e)
	case order.Convoy:
		return d.handleConvoy(o, e)
	default:
		panic(fmt.Sprintf("rulebook: order %s carries a command outside the movement phase", o))
	}
}

func (d *dispatcher) circularMove(o order.Order) resolve.OrderOutcome {
	return MoveSucceeds{}
}

func (d *dispatcher) paradoxConvoy(o order.Order) resolve.OrderOutcome {
	return Paradox{}
}

func (d *dispatcher) handleHold(o order.Order, e *resolve.Engine) HoldOutcome {
	if by, ok := findSuccessfulMoveInto(e.Orders(), e, o.Origin.Province, o); ok {
		return HoldDislodged{By: by}
	}
	return HoldSucceeds{}
}

func (d *dispatcher) handleConvoy(o order.Order, e *resolve.Engine) ConvoyOutcome {
	region, ok := d.m.FindRegion(o.Origin)
	if !ok || region.Terrain != geo.Sea {
		return NotAtSea{}
	}
	if by, ok := findSuccessfulMoveInto(e.Orders(), e, o.Origin.Province, o); ok {
		return ConvoyDislodged{By: by}
	}
	return ConvoyNotDisrupted{}
}

func (d *dispatcher) handleSupport(o order.Order, sup order.Support, e *resolve.Engine) SupportOutcome {
	target := sup.Target
	if !support.Legal(o, target) {
		return SupportingSelf{}
	}

	targetProvince := supportTargetProvince(target)
	if !support.Reachable(d.m, o, targetProvince) {
		return CantReach{}
	}

	for _, attacker := range e.Orders() {
		if attacker.Nation == o.Nation {
			continue
		}
		mv, ok := attacker.Command.(order.Move)
		if !ok || mv.Dest.Province != o.Origin.Province {
			continue
		}
		path := d.hasPath(attacker, mv, e)
		dislodges := func() bool { return e.Succeeds(attacker) }
		if support.Cuts(o, attacker, target, path, dislodges) {
			return CutBy{By: attacker}
		}
	}

	return SupportNotDisrupted{}
}

// moveEvaluation captures every fact about one move order's battle
// that either that order's own outcome, or a competing move's prevent
// strength against it, needs to know. It is recomputed independently
// for each order it is asked about rather than cached, so that
// evaluating a competing move never has to read another move's own
// typed outcome back out of the resolver — which, mid-resolution,
// may only be a boolean guess (¶4.6). The booleans it does draw from
// the resolver (an occupier's own move succeeding, a support's own
// success) are ordinary memoized dependencies, no different from any
// other cross-order query the rulebook makes.
type moveEvaluation struct {
	hasPath        bool
	hasOccupier    bool
	occupier       order.Order
	headToHead     bool
	attack         int
	resistance     int
	lostHeadToHead bool
}

func (d *dispatcher) evaluateMove(o order.Order, mv order.Move, e *resolve.Engine) moveEvaluation {
	var eval moveEvaluation
	eval.hasPath = d.hasPath(o, mv, e)
	if !eval.hasPath {
		return eval
	}

	occupier, hasOccupier := findOrderToProvince(e.Orders(), mv.Dest.Province)
	eval.hasOccupier = hasOccupier
	eval.occupier = occupier

	occupierMoves := false
	occupierSucceeds := false
	if hasOccupier {
		if _, ok := occupier.Command.(order.Move); ok {
			occupierMoves = true
			occupierSucceeds = e.Succeeds(occupier)
		}
		supports := strength.SupportingHold(e.Orders(), e, mv.Dest.Province)
		eval.resistance = strength.Hold(occupierMoves, occupierSucceeds, supports)
	}

	if hasOccupier && occupierMoves {
		occMv := occupier.Command.(order.Move)
		if occMv.Dest.Province == o.Origin.Province &&
			!d.usesConvoy(o, mv, e) && !d.usesConvoy(occupier, occMv, e) {
			eval.headToHead = true
		}
	}

	var defenderNation unit.Nation
	if hasOccupier {
		defenderNation = occupier.Nation
	}
	attackSupports := strength.SupportingMove(e.Orders(), e, o.Nation, o.Origin.Province, mv.Dest.Province, defenderNation, hasOccupier)
	eval.attack = strength.Attack(attackSupports)

	if eval.headToHead {
		occMv := occupier.Command.(order.Move)
		defendSupports := strength.SupportingMove(e.Orders(), e, occupier.Nation, occMv.Dest.Province, o.Origin.Province, o.Nation, true)
		eval.resistance = strength.Defend(defendSupports)
		eval.lostHeadToHead = eval.attack <= eval.resistance
	}

	return eval
}

func (d *dispatcher) handleMove(o order.Order, mv order.Move, e *resolve.Engine) MoveOutcome {
	if mv.Dest.Province == o.Origin.Province {
		return MoveToSelf{}
	}

	eval := d.evaluateMove(o, mv, e)
	if !eval.hasPath {
		return MoveNoPath{}
	}

	if eval.hasOccupier && eval.resistance > 0 && eval.occupier.Nation == o.Nation {
		return MoveFriendlyFire{}
	}

	if eval.headToHead && eval.lostHeadToHead {
		return MoveLostHeadToHead{}
	}
	if !eval.headToHead && eval.hasOccupier && eval.attack <= eval.resistance {
		return MoveOccupierDefended{}
	}

	maxPrevent := 0
	var preventedBy order.Order
	for _, other := range e.Orders() {
		if other == o {
			continue
		}
		if eval.headToHead && other == eval.occupier {
			continue
		}
		omv, ok := other.Command.(order.Move)
		if !ok || omv.Dest.Province != mv.Dest.Province {
			continue
		}
		otherEval := d.evaluateMove(other, omv, e)
		otherSupports := strength.SupportingMove(e.Orders(), e, other.Nation, other.Origin.Province, omv.Dest.Province, eval.occupier.Nation, eval.hasOccupier)
		prevent := strength.Prevent(otherEval.hasPath, otherEval.lostHeadToHead, otherSupports)
		if prevent > maxPrevent {
			maxPrevent = prevent
			preventedBy = other
		}
	}

	if eval.attack <= maxPrevent {
		return MovePrevented{By: preventedBy}
	}

	return MoveSucceeds{}
}

// hasPath decides whether o (a Move order) has any path to its
// destination at all: a direct border, or — for an army, when no
// direct border exists or the order insists on convoying — a
// successful convoy route.
func (d *dispatcher) hasPath(o order.Order, mv order.Move, e *resolve.Engine) bool {
	army := o.UnitType == unit.Army
	direct := d.m.HasPassableBorder(o.Origin, mv.Dest.Province, army)
	if mv.Convoy == order.MustUseConvoy {
		if !army {
			return false
		}
		return len(convoy.Route(d.m, e.Orders(), e, o.Origin.Province, mv.Dest.Province)) > 0
	}
	if direct {
		return true
	}
	if !army {
		return false
	}
	return len(convoy.Route(d.m, e.Orders(), e, o.Origin.Province, mv.Dest.Province)) > 0
}

// usesConvoy decides, for head-to-head detection, whether this move
// is considered to travel by convoy rather than by direct land
// adjacency. A move with no direct border has no choice. A move that
// explicitly demanded a convoy always counts as one. Otherwise — a
// direct border exists and the order left the route unspecified — the
// edition decides whether an incidentally-available convoy route
// still counts as "by convoy" for the purpose of permitting two units
// to swap provinces that a strict land reading would forbid.
func (d *dispatcher) usesConvoy(o order.Order, mv order.Move, e *resolve.Engine) bool {
	army := o.UnitType == unit.Army
	direct := d.m.HasPassableBorder(o.Origin, mv.Dest.Province, army)
	if mv.Convoy == order.MustUseConvoy {
		return true
	}
	if !direct {
		return army
	}
	if !d.edition.allowsUnintendedConvoy() {
		return false
	}
	return len(convoy.Route(d.m, e.Orders(), e, o.Origin.Province, mv.Dest.Province)) > 0
}

func findOrderToProvince(orders []order.Order, province string) (order.Order, bool) {
	for _, o := range orders {
		if o.Origin.Province == province {
			return o, true
		}
	}
	return order.Order{}, false
}

// findSuccessfulMoveInto finds a successful move order targeting
// province, other than except.
func findSuccessfulMoveInto(orders []order.Order, e *resolve.Engine, province string, except order.Order) (order.Order, bool) {
	for _, o := range orders {
		if o == except {
			continue
		}
		mv, ok := o.Command.(order.Move)
		if !ok || mv.Dest.Province != province {
			continue
		}
		if e.Succeeds(o) {
			return o, true
		}
	}
	return order.Order{}, false
}

func supportTargetProvince(target order.SupportTarget) string {
	switch t := target.(type) {
	case order.SupportHold:
		return t.Region.Province
	case order.SupportMove:
		return t.Dest.Province
	default:
		return ""
	}
}
