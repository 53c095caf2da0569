package unit

import (
	"fmt"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
)

// Nation :
// Opaque string identity of a player. The adjudicator never
// interprets this value beyond equality comparison; any casing or
// naming scheme a caller chooses is carried through untouched.
type Nation string

// Type :
// The two unit kinds a nation can own. Armies occupy Land or Coast
// terrain; fleets occupy Sea or Coast terrain (and the named-coast
// regions of split-coast provinces).
type Type int

const (
	Army Type = iota
	Fleet
)

// String :
// Provides the single-letter code used by the textual order grammar
// (`A` or `F`).
func (t Type) String() string {
	if t == Fleet {
		return "F"
	}
	return "A"
}

// IsArmy :
// Convenience predicate mirroring the `army bool` parameter accepted
// throughout `internal/geo`.
func (t Type) IsArmy() bool {
	return t == Army
}

// Unit :
// A unit has no cross-turn identity: it is wholly described by its
// owning nation and its type. Two units are the same unit, for every
// purpose the adjudicator cares about, iff they agree on both fields
// and occupy the same region.
type Unit struct {
	Nation Nation
	Type   Type
}

// Position :
// Associates a unit with the region it currently occupies. The
// invariant enforced by `internal/submission` is that at most one
// position exists per province at any settled state; a `Position`
// value itself carries no such guarantee, it is just a pair.
type Position struct {
	Unit   Unit
	Region geo.RegionKey
}

// ErrUnitCannotOccupyRegion : A unit type was placed on a region whose terrain cannot hold it.
var ErrUnitCannotOccupyRegion = fmt.Errorf("unit type cannot occupy region")

// Valid :
// Checks that this position is at least terrain-consistent: that the
// unit's type can sit on the region's terrain. It does not check
// against a `Map` for region existence; callers building a list of
// starting positions against a known map should additionally confirm
// the region resolves.
//
// The `region` is the resolved `geo.Region` this position claims to
// occupy.
func (p Position) Valid(region geo.Region) error {
	if !region.CanOccupy(p.Unit.Type.IsArmy()) {
		return ErrUnitCannotOccupyRegion
	}
	return nil
}

// String :
// Renders the unit the way the textual order grammar expects it:
// type code followed by region key.
func (p Position) String() string {
	return fmt.Sprintf("%s %s", p.Unit.Type, p.Region)
}
