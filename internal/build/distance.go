package build

import "github.com/TedDriggs/diplomacy-sub000/internal/geo"

// unreachableDistance stands in for "no path exists at all", which
// only happens on a hand-built partial map; the standard board is
// fully connected for both metrics below.
const unreachableDistance = 1 << 30

// distanceToNearestHome implements the civil-disorder distance metric
// of ¶4.9: the fewest border-hops from `from` to any of `homes`,
// counted two different ways depending on unit type.
//
// A fleet's hop graph is restricted to fleet-passable borders (sea
// and coast) — a fleet can never count a land-only hop.
//
// An army's hop graph additionally counts hops across sea borders,
// modeling the fact that a chain of fleets could in principle convoy
// it across water even though none is actually ordered to; this
// mirrors the convoy pathfinder's notion of a route without
// requiring one to actually exist this turn.
func distanceToNearestHome(m *geo.Map, from string, homes map[string]bool, army bool) int {
	if homes[from] {
		return 0
	}

	visited := map[string]bool{from: true}
	frontier := []string{from}
	dist := 0

	for len(frontier) > 0 {
		dist++
		var next []string
		for _, cur := range frontier {
			for _, nb := range neighborProvinces(m, cur, !army) {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				if homes[nb] {
					return dist
				}
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return unreachableDistance
}

// neighborProvinces returns the distinct provinces directly bordering
// the given province. With `fleetOnly` set, only borders passable by
// a fleet count (the fleet distance metric); otherwise every border
// counts regardless of passability (the army metric, which treats a
// sea crossing as a potential convoy hop).
func neighborProvinces(m *geo.Map, province string, fleetOnly bool) []string {
	seen := map[string]bool{province: true}
	var out []string
	for _, r := range m.RegionsOf(province) {
		for _, b := range m.BordersContaining(r) {
			if fleetOnly && !b.PassableBy(false) {
				continue
			}
			var other geo.RegionKey
			if b.From == r {
				other = b.To
			} else {
				other = b.From
			}
			region, ok := m.FindRegion(other)
			if !ok || seen[region.Province] {
				continue
			}
			seen[region.Province] = true
			out = append(out, region.Province)
		}
	}
	return out
}
