package retreat

import "github.com/TedDriggs/diplomacy-sub000/internal/order"

// Status :
// The classification of one candidate retreat destination, computed
// once per dislodged unit before any retreat order is seen.
type Status int

const (
	Available Status = iota
	Unreachable
	BlockedByDislodger
	Occupied
	Contested
)

// String :
func (s Status) String() string {
	switch s {
	case Available:
		return "available"
	case Unreachable:
		return "unreachable"
	case BlockedByDislodger:
		return "blocked_by_dislodger"
	case Occupied:
		return "occupied"
	case Contested:
		return "contested"
	default:
		return "unknown"
	}
}

// Outcome :
// The typed result of one retreat order.
type Outcome interface {
	Succeeds() bool
}

// HeldDisband : The unit was ordered to hold rather than retreat, and disbands.
type HeldDisband struct{}

func (HeldDisband) Succeeds() bool { return false }

// Blocked : A Move retreat named a destination whose computed status rules it out.
type Blocked struct{ Status Status }

func (Blocked) Succeeds() bool { return false }

// Prevented : Two retreats targeted the same destination; neither wins it.
type Prevented struct{ By order.Order }

func (Prevented) Succeeds() bool { return false }

// Succeeds : The retreat enters its destination unopposed.
type Succeeds struct{}

func (Succeeds) Succeeds() bool { return true }
