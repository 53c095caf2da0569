package convoy

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// Resolver :
// The narrow slice of the main-phase resolver that the convoy
// pathfinder needs: the ability to ask whether a given convoy order
// succeeds, without knowing anything about how that answer is
// produced. Kept as an interface (rather than importing
// `internal/resolve` directly) so the pathfinder has no dependency
// on the resolver's guess/commit machinery; `internal/rulebook` wires
// the two together.
type Resolver interface {
	Succeeds(o order.Order) bool
}

// Path :
// One candidate chain of convoying fleet orders carrying an army
// from one province to another, ordered from the fleet adjacent to
// the origin province to the fleet adjacent to the destination
// province.
type Path struct {
	Fleets []order.Order
}

// Route :
// Decides whether a move `A r1 -> r2` has a convoy route, by
// resolving each candidate convoy order first (eagerly) and then
// searching the resulting fleet-adjacency graph. Resolving eagerly —
// rather than lazily during the DFS — keeps the search itself
// finite: once a convoy order's own success is known, the DFS simply
// treats the fleet as present or absent.
//
// The `m` supplies fleet-to-fleet sea adjacency.
//
// The `allOrders` is every order in the turn, used to find fleets
// whose command is a `Convoy` matching the `origin`/`dest` pair.
//
// The `resolver` is consulted once per candidate convoy order to
// learn whether that fleet's own convoy order succeeds.
//
// Returns every successful fleet-path found; a nil slice means no
// convoy route exists.
func Route(m *geo.Map, allOrders []order.Order, resolver Resolver, origin, dest string) []Path {
	candidates := matchingConvoys(allOrders, origin, dest)

	var succeeding []order.Order
	for _, o := range candidates {
		if resolver.Succeeds(o) {
			succeeding = append(succeeding, o)
		}
	}

	return search(m, succeeding, origin, dest)
}

// PreResolutionReachable :
// Performs the same DFS as `Route`, but treats every plausibly
// convoying fleet order as available without consulting a resolver.
// Used before any resolver state exists — during `Submission`
// construction — to decide whether a move is even a legal order to
// begin with (¶3 invariant 2: "a conceivable convoy route ignoring
// other orders").
func PreResolutionReachable(m *geo.Map, allOrders []order.Order, origin, dest string) bool {
	candidates := matchingConvoys(allOrders, origin, dest)
	return len(search(m, candidates, origin, dest)) > 0
}

// matchingConvoys returns every fleet order whose convoy command
// names exactly the origin/dest province pair of the army move under
// test. Real play has every fleet in a chain repeat the whole
// journey in its own order (e.g. "F eng convoys bre -> lon"), so
// matching is on the stated endpoints, not on a single hop.
func matchingConvoys(allOrders []order.Order, origin, dest string) []order.Order {
	var out []order.Order
	for _, o := range allOrders {
		if o.UnitType != unit.Fleet {
			continue
		}
		c, ok := o.Command.(order.Convoy)
		if !ok {
			continue
		}
		if c.From.Province == origin && c.To.Province == dest {
			out = append(out, o)
		}
	}
	return out
}

// search runs a DFS over the fleet-adjacency graph formed by the
// candidate convoy orders' own regions, from any fleet adjacent to
// origin to any fleet adjacent to dest.
func search(m *geo.Map, candidates []order.Order, origin, dest string) []Path {
	if len(candidates) == 0 {
		return nil
	}

	visited := make([]bool, len(candidates))
	var paths []Path

	var walk func(chain []int)
	walk = func(chain []int) {
		last := candidates[chain[len(chain)-1]].Origin
		if m.HasPassableBorder(last, dest, false) {
			fleets := make([]order.Order, len(chain))
			for i, idx := range chain {
				fleets[i] = candidates[idx]
			}
			paths = append(paths, Path{Fleets: fleets})
		}

		for i, o := range candidates {
			if visited[i] {
				continue
			}
			if !m.HasPassableBorder(last, o.Origin.Province, false) {
				continue
			}
			visited[i] = true
			walk(append(chain, i))
			visited[i] = false
		}
	}

	for i, o := range candidates {
		if !fleetAdjacentToOrigin(m, o, origin) {
			continue
		}
		visited[i] = true
		walk([]int{i})
		visited[i] = false
	}

	return paths
}

// fleetAdjacentToOrigin determines whether the given fleet order's
// own region directly borders the army move's origin province.
func fleetAdjacentToOrigin(m *geo.Map, o order.Order, origin string) bool {
	return m.HasPassableBorder(o.Origin, origin, false)
}
