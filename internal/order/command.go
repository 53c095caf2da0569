package order

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// Command :
// Sealed sum type of the things a player can order a unit to do.
// Each phase of the game only accepts a subset of the implementing
// types (`internal/submission` enforces which); the sealing itself
// is expressed the Go way, as an interface with an unexported marker
// method rather than a tagged union.
type Command interface {
	isCommand()
	// String renders the command the way the textual order grammar
	// would (without the leading "NAT: UT REG" prefix).
	String() string
}

// ConvoyPreference :
// A move may leave the choice of route to the adjudicator, or
// explicitly insist on a convoy route even when a direct border
// exists (relevant to the "unintended convoy" edge case some
// rulebook editions treat differently).
type ConvoyPreference int

const (
	Unspecified ConvoyPreference = iota
	MustUseConvoy
)

// Hold :
// Orders a unit to stay in place and resist being dislodged.
type Hold struct{}

func (Hold) isCommand()    {}
func (Hold) String() string { return "hold" }

// Move :
// Orders a unit to attempt to enter another region, directly or (for
// armies) by convoy.
//
// The `Dest` is the region the unit attempts to enter.
//
// The `Convoy` records whether the order insisted on a convoy route.
type Move struct {
	Dest   geo.RegionKey
	Convoy ConvoyPreference
}

func (Move) isCommand() {}
func (m Move) String() string {
	s := "-> " + m.Dest.String()
	if m.Convoy == MustUseConvoy {
		s += " via convoy"
	}
	return s
}

// SupportTarget :
// Sealed sum type describing what a support order aids: either
// another unit holding, or another unit's move.
type SupportTarget interface {
	isSupportTarget()
	String() string
}

// SupportHold :
// The aided unit is holding (or otherwise not moving) in `Region`.
type SupportHold struct {
	Unit   unit.Type
	Region geo.RegionKey
}

// SupportMove :
// The aided unit is moving from `From` to `Dest`.
type SupportMove struct {
	Unit unit.Type
	From geo.RegionKey
	Dest geo.RegionKey
}

func (SupportHold) isSupportTarget() {}
func (SupportMove) isSupportTarget() {}

func (s SupportHold) String() string {
	return "supports " + s.Unit.String() + " " + s.Region.String()
}

func (s SupportMove) String() string {
	return "supports " + s.Unit.String() + " " + s.From.String() + " -> " + s.Dest.String()
}

// Support :
// Orders a unit to back up another unit's hold or move, adding to
// its strength provided the support itself is not cut.
type Support struct {
	Target SupportTarget
}

func (Support) isCommand()      {}
func (s Support) String() string { return s.Target.String() }

// Convoy :
// Orders a fleet to ferry an army from `From` to `To`. Only armies
// may be convoyed; the fleet issuing this order must itself be at
// sea.
type Convoy struct {
	From geo.RegionKey
	To   geo.RegionKey
}

func (Convoy) isCommand() {}
func (c Convoy) String() string {
	return "convoys " + c.From.String() + " -> " + c.To.String()
}

// RetreatHold :
// In the retreat phase, orders a dislodged unit to disband rather
// than retreat.
type RetreatHold struct{}

func (RetreatHold) isCommand()    {}
func (RetreatHold) String() string { return "hold" }

// RetreatMove :
// In the retreat phase, orders a dislodged unit to retreat to
// `Dest`.
type RetreatMove struct {
	Dest geo.RegionKey
}

func (RetreatMove) isCommand() {}
func (r RetreatMove) String() string {
	return "-> " + r.Dest.String()
}

// Build :
// In the build phase, orders a new unit of the enclosing order's
// type to be raised at the order's origin region.
type Build struct{}

func (Build) isCommand()    {}
func (Build) String() string { return "build" }

// Disband :
// In the build phase, orders the unit at the order's origin region
// to be disbanded.
type Disband struct{}

func (Disband) isCommand()    {}
func (Disband) String() string { return "disband" }
