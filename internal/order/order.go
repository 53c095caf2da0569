package order

import (
	"fmt"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// Order :
// (nation, unit type, origin region, command) — the full description
// of one instruction a player gives to one of their units.
//
// The `Nation` is the issuing player.
//
// The `UnitType` is the type of the ordered unit; it must match the
// type of whatever unit actually occupies `Origin` for the order to
// be valid.
//
// The `Origin` is the region the ordered unit currently occupies.
//
// The `Command` is what the unit is being told to do.
type Order struct {
	Nation   unit.Nation
	UnitType unit.Type
	Origin   geo.RegionKey
	Command  Command
}

// String :
// Renders the order in the canonical textual grammar: `NAT: UT REG
// COMMAND`.
func (o Order) String() string {
	return fmt.Sprintf("%s: %s %s %s", o.Nation, o.UnitType, o.Origin, o.Command)
}

// InvalidReason :
// The pre-resolution rejection reasons computed while a `Submission`
// validates raw orders against starting positions, before any order
// enters adjudication. An order tagged with one of these contributes
// no state to the resolver and projects to `Fails`.
type InvalidReason int

const (
	// NoUnit : no unit of the stated type belongs to any nation at Origin.
	NoUnit InvalidReason = iota
	// ForeignUnit : a unit occupies Origin, but not one owned by Nation.
	ForeignUnit
	// MultipleToSameUnit : a later order named a unit that already had one; this is the discarded duplicate.
	MultipleToSameUnit
	// UnreachableDestination : a move has neither a direct border nor a conceivable convoy route to its destination.
	UnreachableDestination
)

// String :
// Provides a short, stable name for the reason, used in traces and
// test failure messages.
func (r InvalidReason) String() string {
	return [...]string{
		"no_unit",
		"foreign_unit",
		"multiple_to_same_unit",
		"unreachable_destination",
	}[r]
}
