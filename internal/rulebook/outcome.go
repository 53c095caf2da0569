package rulebook

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
)

// HoldOutcome :
// The typed result of a Hold (or, structurally, a Support or Convoy)
// order that does not itself move: either it resists in place, or it
// is dislodged by a successful move into its province.
type HoldOutcome interface {
	Succeeds() bool
	isHoldOutcome()
}

// HoldSucceeds : The occupier resisted; no successful move arrived.
type HoldSucceeds struct{}

func (HoldSucceeds) Succeeds() bool { return true }
func (HoldSucceeds) isHoldOutcome() {}

// HoldDislodged : A successful move from `By` dislodged this unit.
type HoldDislodged struct{ By order.Order }

func (HoldDislodged) Succeeds() bool { return false }
func (HoldDislodged) isHoldOutcome() {}

// MoveOutcome :
// The typed result of a Move order. Beyond the usual boolean
// projection, exposes the two facts a competing move needs to compute
// its own prevent strength against this one (¶4.5): whether this move
// ever had a path at all, and whether it specifically lost a
// head-to-head battle (as opposed to failing for any other reason) —
// a unit that lost a head-to-head cannot prevent anyone else.
type MoveOutcome interface {
	Succeeds() bool
	HasPath() bool
	LostHeadToHead() bool
	isMoveOutcome()
}

// MoveToSelf : The move's destination is the province the unit already occupies.
type MoveToSelf struct{}

func (MoveToSelf) Succeeds() bool        { return false }
func (MoveToSelf) HasPath() bool         { return false }
func (MoveToSelf) LostHeadToHead() bool  { return false }
func (MoveToSelf) isMoveOutcome()        {}

// MoveNoPath : No direct border and, for an army, no convoy route exists.
type MoveNoPath struct{}

func (MoveNoPath) Succeeds() bool       { return false }
func (MoveNoPath) HasPath() bool        { return false }
func (MoveNoPath) LostHeadToHead() bool { return false }
func (MoveNoPath) isMoveOutcome()       {}

// MoveFriendlyFire : The destination resists, and the resisting unit shares the mover's nation.
type MoveFriendlyFire struct{}

func (MoveFriendlyFire) Succeeds() bool       { return false }
func (MoveFriendlyFire) HasPath() bool        { return true }
func (MoveFriendlyFire) LostHeadToHead() bool { return false }
func (MoveFriendlyFire) isMoveOutcome()       {}

// MoveLostHeadToHead : This move and its destination's occupier targeted each other directly, and this one did not win.
type MoveLostHeadToHead struct{}

func (MoveLostHeadToHead) Succeeds() bool       { return false }
func (MoveLostHeadToHead) HasPath() bool        { return true }
func (MoveLostHeadToHead) LostHeadToHead() bool { return true }
func (MoveLostHeadToHead) isMoveOutcome()       {}

// MoveOccupierDefended : The destination's non-moving (or failed-exit) occupier resisted with enough strength.
type MoveOccupierDefended struct{}

func (MoveOccupierDefended) Succeeds() bool       { return false }
func (MoveOccupierDefended) HasPath() bool        { return true }
func (MoveOccupierDefended) LostHeadToHead() bool { return false }
func (MoveOccupierDefended) isMoveOutcome()       {}

// MovePrevented : A competing move into the same destination had equal or greater prevent strength.
type MovePrevented struct{ By order.Order }

func (MovePrevented) Succeeds() bool       { return false }
func (MovePrevented) HasPath() bool        { return true }
func (MovePrevented) LostHeadToHead() bool { return false }
func (MovePrevented) isMoveOutcome()       {}

// MoveSucceeds : The move enters its destination.
type MoveSucceeds struct{}

func (MoveSucceeds) Succeeds() bool       { return true }
func (MoveSucceeds) HasPath() bool        { return true }
func (MoveSucceeds) LostHeadToHead() bool { return false }
func (MoveSucceeds) isMoveOutcome()       {}

// SupportOutcome :
// The typed result of a Support order.
type SupportOutcome interface {
	Succeeds() bool
	isSupportOutcome()
}

// SupportNotDisrupted : The support stands and counts toward its target's strength.
type SupportNotDisrupted struct{}

func (SupportNotDisrupted) Succeeds() bool     { return true }
func (SupportNotDisrupted) isSupportOutcome()  {}

// SupportingSelf : The support named its own region, or a move-support whose from and dest coincide.
type SupportingSelf struct{}

func (SupportingSelf) Succeeds() bool    { return false }
func (SupportingSelf) isSupportOutcome() {}

// CantReach : No border connects the supporter to the province it claims to aid.
type CantReach struct{}

func (CantReach) Succeeds() bool    { return false }
func (CantReach) isSupportOutcome() {}

// CutBy : An attacking move from `By` cut this support.
type CutBy struct{ By order.Order }

func (CutBy) Succeeds() bool    { return false }
func (CutBy) isSupportOutcome() {}

// ConvoyOutcome :
// The typed result of a Convoy order.
type ConvoyOutcome interface {
	Succeeds() bool
	isConvoyOutcome()
}

// NotAtSea : The issuing fleet's region is not open sea, so it cannot convoy.
type NotAtSea struct{}

func (NotAtSea) Succeeds() bool    { return false }
func (NotAtSea) isConvoyOutcome()  {}

// ConvoyDislodged : A successful move from `By` dislodged the convoying fleet.
type ConvoyDislodged struct{ By order.Order }

func (ConvoyDislodged) Succeeds() bool   { return false }
func (ConvoyDislodged) isConvoyOutcome() {}

// Paradox : This convoy was declared failed to break a paradoxical dependency cycle (Szykman rule).
type Paradox struct{}

func (Paradox) Succeeds() bool    { return false }
func (Paradox) isConvoyOutcome()  {}

// ConvoyNotDisrupted : The fleet stood its ground; the convoy is available to any army routing through it.
type ConvoyNotDisrupted struct{}

func (ConvoyNotDisrupted) Succeeds() bool   { return true }
func (ConvoyNotDisrupted) isConvoyOutcome() {}

// InvalidOutcome :
// Wraps a pre-resolution rejection reason as a failing outcome.
// `Adjudicate` only receives validated orders and never records one of
// these, so `Outcome.Get` has no entry for a rejected order; rejected
// orders and their reasons are listed in `submission.Context.Invalid`.
type InvalidOutcome struct{ Reason order.InvalidReason }

func (InvalidOutcome) Succeeds() bool { return false }
