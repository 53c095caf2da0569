// Package diplomacy is the public facade over this module's internal
// packages: a map, a submission of one turn's orders, and the phase
// contexts (retreat, build) that chain off an adjudicated outcome.
//
// Callers that want the full internal type vocabulary (invalid
// reasons, per-family outcome types, the textual order grammar
// reader) can import the `internal/...` packages directly from code
// that lives inside this module; this file exists so an external
// caller outside the module tree never has to.
package diplomacy

import (
	"github.com/TedDriggs/diplomacy-sub000/internal/build"
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/phase"
	"github.com/TedDriggs/diplomacy-sub000/internal/retreat"
	"github.com/TedDriggs/diplomacy-sub000/internal/rulebook"
	"github.com/TedDriggs/diplomacy-sub000/internal/submission"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// Map, Order, Command, Nation, UnitType, Position and RegionKey are the
// vocabulary every caller needs to describe a turn; re-exported here
// so a caller only imports this one package.
type (
	Map       = geo.Map
	Order     = order.Order
	Command   = order.Command
	Nation    = unit.Nation
	UnitType  = unit.Type
	Position  = unit.Position
	RegionKey = geo.RegionKey
	Edition   = rulebook.Edition
	Time      = phase.Time
)

const (
	Army  = unit.Army
	Fleet = unit.Fleet
)

const (
	Edition1971 = rulebook.Edition1971
	Edition1982 = rulebook.Edition1982
	Edition2023 = rulebook.Edition2023
	EditionDPTG = rulebook.EditionDPTG
)

// StandardMap :
// Returns the classic 34-supply-center board.
func StandardMap() *Map {
	return geo.Standard()
}

// NewMap :
// Builds a map from scratch, for scenarios other than the standard
// board.
func NewMap(provinces []geo.ProvinceSpec, regions []geo.RegionSpec, borders []geo.BorderSpec) (*Map, error) {
	return geo.NewMap(provinces, regions, borders)
}

// Submission :
// A validated, frozen turn of raw orders, ready to adjudicate.
type Submission = submission.Submission

// NewSubmission :
// Validates raw orders against starting positions on a map, per
// ¶4.2, and returns a submission ready for `Adjudicate`.
func NewSubmission(m *Map, positions []Position, raw []Order) (*Submission, error) {
	return submission.New(m, positions, raw)
}

// SubmissionWithInferredState :
// Builds a submission without an explicit starting-position list,
// inferring one position per distinct order origin.
func SubmissionWithInferredState(m *Map, raw []Order) (*Submission, error) {
	return submission.WithInferredState(m, raw)
}

// Outcome :
// The settled result of adjudicating one turn.
type Outcome = rulebook.Outcome

// RetreatContext :
// The frozen set of pending retreats following an adjudicated turn.
type RetreatContext = retreat.Context

// NewRetreatContext :
// Builds the retreat phase's starting input from a resolved main
// phase, per ¶4.8, and pairs it with the retreat orders to resolve.
func NewRetreatContext(outcome *Outcome, retreatOrders []Order) *RetreatContext {
	return retreat.NewContext(outcome, retreatOrders)
}

// BuildContext :
// The frozen input to one build phase.
type BuildContext = build.Context

// BuildOwnership :
// Which nation currently controls each supply-center province.
type BuildOwnership = build.Ownership

// InitialOwnerships :
// Builds the ownership map for the very first Winter of a game.
func InitialOwnerships(m *Map) BuildOwnership {
	return build.InitialOwnerships(m)
}

// NewBuildContext :
// Builds a build-phase context from the map, the supply-center
// ownerships in effect before this turn, the current per-nation unit
// positions, and the build orders to resolve.
func NewBuildContext(m *Map, previous BuildOwnership, positions []Position, orders []Order) (*BuildContext, error) {
	return build.NewContext(m, previous, positions, orders)
}

// ParseTime :
// Parses a canonical `SYYYYP` time string into a `Time`.
func ParseTime(s string) (Time, error) {
	return phase.Parse(s)
}
