package build

// Outcome :
// The typed result of one build-phase order, per ¶4.9. Mirrors the
// shape of `internal/rulebook`'s outcome families: a sealed interface
// with a boolean projection, never a bare bool.
type Outcome interface {
	Succeeds() bool
	isOutcome()
}

// Succeeds : The build or disband was carried out.
type Succeeds struct{}

func (Succeeds) Succeeds() bool { return true }
func (Succeeds) isOutcome()     {}

// RedeploymentProhibited : The nation attempted both build and disband orders in one turn, or issued an order in a direction it owes nothing in.
type RedeploymentProhibited struct{}

func (RedeploymentProhibited) Succeeds() bool { return false }
func (RedeploymentProhibited) isOutcome()     {}

// InvalidProvince : A build's target region is not one of the issuing nation's home supply centers.
type InvalidProvince struct{}

func (InvalidProvince) Succeeds() bool { return false }
func (InvalidProvince) isOutcome()     {}

// ForeignControlled : A build's target home center is currently owned by another nation.
type ForeignControlled struct{}

func (ForeignControlled) Succeeds() bool { return false }
func (ForeignControlled) isOutcome()     {}

// OccupiedProvince : A build's target province already has a unit in it.
type OccupiedProvince struct{}

func (OccupiedProvince) Succeeds() bool { return false }
func (OccupiedProvince) isOutcome()     {}

// InvalidTerrain : A build's target region cannot hold the requested unit type.
type InvalidTerrain struct{}

func (InvalidTerrain) Succeeds() bool { return false }
func (InvalidTerrain) isOutcome()     {}

// DisbandingNonexistentUnit : A disband named a province with no unit in it.
type DisbandingNonexistentUnit struct{}

func (DisbandingNonexistentUnit) Succeeds() bool { return false }
func (DisbandingNonexistentUnit) isOutcome()     {}

// DisbandingForeignUnit : A disband named a province occupied by a unit of another nation.
type DisbandingForeignUnit struct{}

func (DisbandingForeignUnit) Succeeds() bool { return false }
func (DisbandingForeignUnit) isOutcome()     {}

// AllBuildsUsed : The issuing nation already used every build its supply-center surplus allows.
type AllBuildsUsed struct{}

func (AllBuildsUsed) Succeeds() bool { return false }
func (AllBuildsUsed) isOutcome()     {}

// AllDisbandsUsed : The issuing nation already used every disband its unit surplus requires.
type AllDisbandsUsed struct{}

func (AllDisbandsUsed) Succeeds() bool { return false }
func (AllDisbandsUsed) isOutcome()     {}
