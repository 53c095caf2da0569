package geo

import "fmt"

// BorderSpec :
// Describes one row of the borders table handed to `NewMap`: an
// undirected edge between two region keys, passable by unit types
// whose occupancy terrain matches the border's own terrain tag.
//
// The `From` and `To` are the region keys joined by this border.
//
// The `Terrain` governs which unit types may cross it: `Land` and
// `Coast` borders admit armies, `Sea` and `Coast` borders admit
// fleets.
type BorderSpec struct {
	From    RegionKey
	To      RegionKey
	Terrain Terrain
}

// Border :
// An undirected edge between two regions, passable by a unit type
// iff the unit may occupy the border's terrain.
type Border struct {
	From    RegionKey
	To      RegionKey
	Terrain Terrain
}

// ErrInvalidBorderRegion : A border referenced a region that was never declared.
var ErrInvalidBorderRegion = fmt.Errorf("border references unknown region")

// ErrSelfBorder : A border's two endpoints were the same region.
var ErrSelfBorder = fmt.Errorf("border connects a region to itself")

// PassableBy :
// Determines whether a unit of the given type may cross this border.
//
// The `army` flag selects whether the crossing unit is an army
// (true) or a fleet (false).
func (b Border) PassableBy(army bool) bool {
	switch b.Terrain {
	case Land:
		return army
	case Sea:
		return !army
	case Coast:
		return true
	default:
		return false
	}
}

// connects :
// Determines whether this border has the given region as one of its
// two endpoints, and if so returns the other endpoint.
func (b Border) connects(r RegionKey) (RegionKey, bool) {
	switch {
	case b.From == r:
		return b.To, true
	case b.To == r:
		return b.From, true
	default:
		return RegionKey{}, false
	}
}
