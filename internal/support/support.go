package support

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// Resolver :
// The narrow slice of the main-phase resolver the support evaluator
// needs. Kept as an interface so this package has no dependency on
// the resolver's guess/commit machinery.
type Resolver interface {
	Succeeds(o order.Order) bool
}

// Reachable :
// "Can reach" for a support order: a border exists from the
// supporter's region to some region of the province being helped,
// passable by the supporter's unit type.
//
// The `target` is the province the support order is aiding — the
// destination province for move-support, the province itself for
// hold-support.
func Reachable(m *geo.Map, supporter order.Order, target string) bool {
	return m.HasPassableBorder(supporter.Origin, target, supporter.UnitType == unit.Army)
}

// Legal :
// A support order is illegal, independent of cutting, if it names
// its own region as the thing to help, or if a move-support's from
// and to are the same region. These are checked structurally, before
// any resolver state exists.
func Legal(supporter order.Order, target order.SupportTarget) bool {
	switch t := target.(type) {
	case order.SupportHold:
		return t.Region != supporter.Origin
	case order.SupportMove:
		return t.From != t.Dest
	default:
		return false
	}
}

// Cuts :
// Determines whether `attacker` cuts the support order `supporter`,
// whose support aids `target`. An attacker cuts a support iff it is
// a move into the supporter's province by a unit of a different
// nation, with a path (direct or convoyed — `hasPath` answers that),
// and either the support is not itself supporting a move landing on
// the attacker's own origin province, or the attack would itself
// dislodge the supporter.
//
// The `hasPath` callback reports whether `attacker`'s move has a
// path at all (direct border or successful convoy); cutting requires
// one.
//
// The `dislodges` callback is consulted only for the single-exception
// case — whether `attacker`, if it succeeds, would dislodge the unit
// that issued `supporter`. It is resolved eagerly by asking the
// resolver to decide `attacker`'s own success, matching the rule that
// a unit cannot cut the support of an attack that is helping dislodge
// it.
func Cuts(supporter, attacker order.Order, target order.SupportTarget, hasPath bool, dislodges func() bool) bool {
	move, ok := attacker.Command.(order.Move)
	if !ok {
		return false
	}
	if move.Dest.Province != supporter.Origin.Province {
		return false
	}
	if attacker.Nation == supporter.Nation {
		return false
	}
	if !hasPath {
		return false
	}

	if !supportsAttackFrom(target, attacker.Origin.Province) {
		return true
	}

	return dislodges()
}

// supportsAttackFrom reports whether the aided target is itself a
// move-support for a move landing on attackerOrigin — the "does the
// support aid a move into the province the attacker comes from" half
// of the cut rule's single exception.
func supportsAttackFrom(target order.SupportTarget, attackerOrigin string) bool {
	move, ok := target.(order.SupportMove)
	if !ok {
		return false
	}
	return move.Dest.Province == attackerOrigin
}
