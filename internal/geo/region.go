package geo

import "fmt"

// RegionSpec :
// Describes one row of the regions table handed to `NewMap`.
//
// The `Key` is the short identifier of the parent province this
// region belongs to.
//
// The `Coast` tags which coast of a split-coast province this region
// represents, or `NoCoast` for provinces with a single region.
//
// The `Terrain` is the ground this region is made of.
type RegionSpec struct {
	Key     string
	Coast   Coast
	Terrain Terrain
}

// RegionKey :
// Identifies a region within a `Map`. Two region keys compare equal
// to each other by province and coast; `RegionMatchesProvince` is
// provided separately so support and convoy code can match on
// province alone without caring about coast.
//
// The `Province` is the short identifier of the parent province.
//
// The `Coast` disambiguates split-coast regions; `NoCoast` for
// single-region provinces.
type RegionKey struct {
	Province string
	Coast    Coast
}

// String :
// Renders the region key the way the textual order grammar expects
// it: the province key optionally suffixed with a parenthesized
// coast code.
func (r RegionKey) String() string {
	if r.Coast == NoCoast {
		return r.Province
	}
	return fmt.Sprintf("%s(%s)", r.Province, r.Coast)
}

// Region :
// A subdivision of a province addressable by units. Armies occupy
// Land or Coast; fleets occupy Sea or Coast. Explicit-coast regions
// (north/south/east/west coast of a split-coast province) are always
// Sea for occupancy purposes, so armies cannot sit on them even
// though their parent province is a Coast province as a whole.
//
// The `Key` uniquely identifies this region within a `Map`.
//
// The `Province` is the short key of the parent province.
//
// The `Terrain` is the ground this region is made of.
type Region struct {
	Key      RegionKey
	Province string
	Terrain  Terrain
}

// ErrInvalidRegionProvince : A region spec referenced a province that was never declared.
var ErrInvalidRegionProvince = fmt.Errorf("region references unknown province")

// ErrDuplicateRegion : Two region specs described the same region key.
var ErrDuplicateRegion = fmt.Errorf("duplicate region key")

// CanOccupy :
// Determines whether a unit of the given type may sit on this region
// at rest (as opposed to merely crossing it, which borders govern
// separately).
//
// The `army` flag selects whether the occupying unit is an army
// (true) or a fleet (false).
//
// Returns whether the region's terrain accepts that unit type.
func (r Region) CanOccupy(army bool) bool {
	if r.Key.Coast != NoCoast {
		// An explicit-coast region is always treated as sea for
		// occupancy, regardless of the nominal terrain tag carried
		// by its spec.
		return !army
	}

	switch r.Terrain {
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

// MatchesProvince :
// Determines whether this region belongs to the given province,
// ignoring any coast tag. Used throughout support and convoy code
// which reasons about provinces while preserving coast only for
// occupancy.
func (r Region) MatchesProvince(province string) bool {
	return r.Province == province
}
