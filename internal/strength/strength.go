package strength

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// Resolver :
// The narrow slice of the main-phase resolver the strength
// calculator needs.
type Resolver interface {
	Succeeds(o order.Order) bool
}

// SupportingMove :
// Counts the successful support orders aiding a move into `dest` from
// `origin`, excluding any whose nation matches `defenderNation` when
// `hasDefender` is set — self-dislodgement rules strip a nation's own
// supports from an attack on its own unit, so such supports never add
// strength against that particular occupier regardless of whether
// they are otherwise cut.
//
// The `allOrders` is every order of the turn; only orders whose
// command is `Support` targeting this exact move are considered.
func SupportingMove(allOrders []order.Order, resolver Resolver, attackerNation unit.Nation, origin, dest string, defenderNation unit.Nation, hasDefender bool) int {
	count := 0
	for _, o := range allOrders {
		sup, ok := o.Command.(order.Support)
		if !ok {
			continue
		}
		move, ok := sup.Target.(order.SupportMove)
		if !ok {
			continue
		}
		if move.From.Province != origin || move.Dest.Province != dest {
			continue
		}
		if hasDefender && o.Nation == defenderNation {
			continue
		}
		if resolver.Succeeds(o) {
			count++
		}
	}
	return count
}

// SupportingHold :
// Counts the successful support orders aiding a non-moving unit at
// `province`.
func SupportingHold(allOrders []order.Order, resolver Resolver, province string) int {
	count := 0
	for _, o := range allOrders {
		sup, ok := o.Command.(order.Support)
		if !ok {
			continue
		}
		hold, ok := sup.Target.(order.SupportHold)
		if !ok {
			continue
		}
		if hold.Region.Province != province {
			continue
		}
		if resolver.Succeeds(o) {
			count++
		}
	}
	return count
}

// Attack :
// Attack strength of a move: 1 plus its successful, uncancelled
// supports.
func Attack(supports int) int {
	return 1 + supports
}

// Defend :
// Defend strength of a move's occupier, used only to break a
// head-to-head tie: 1 plus the occupier's successful supports.
func Defend(supports int) int {
	return 1 + supports
}

// Hold :
// Hold strength of a region's occupier. A successful exit vacates the
// province, leaving no resistance. A non-moving occupier (hold,
// support or convoy order) resists with 1 plus its successful
// supports — support-to-hold only ever aids a unit that was actually
// ordered to stay. A failed-exit occupier (its own move order failed)
// resists with a flat 1: it never benefited from any hold-support,
// since it was never holding in the first place.
//
// The `occupierMoves` flag is whether the occupier's own order is a
// move (as opposed to hold/support/convoy).
//
// The `occupierMoveSucceeds` flag is only meaningful when
// `occupierMoves` is set.
func Hold(occupierMoves, occupierMoveSucceeds bool, supports int) int {
	if occupierMoves && occupierMoveSucceeds {
		return 0
	}
	if occupierMoves {
		return 1
	}
	return 1 + supports
}

// Prevent :
// Prevent strength of a move: zero if it has no path at all or lost
// a head-to-head battle; otherwise 1 plus its successful supports.
func Prevent(hasPath, lostHeadToHead bool, supports int) int {
	if !hasPath || lostHeadToHead {
		return 0
	}
	return 1 + supports
}
