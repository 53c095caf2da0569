package rulebook

// Edition :
// The closed set of rulebook variants this adjudicator recognizes.
// Every edition runs the same decision procedure (¶4.6/¶4.7 are
// unchanged); an edition only decides whether an "unintended" convoy
// enables a swap of places. Civil-disorder disband ordering in
// `internal/build` takes no edition and is the same for all of them.
type Edition int

const (
	Edition1971 Edition = iota
	Edition1982
	Edition2023
	EditionDPTG
)

// String :
func (e Edition) String() string {
	switch e {
	case Edition1971:
		return "1971"
	case Edition1982:
		return "1982"
	case Edition2023:
		return "2023"
	case EditionDPTG:
		return "DPTG"
	default:
		return "unknown"
	}
}

// ParseEdition :
// Parses an edition's canonical name. Kept separate from
// `pkg/config` so the library never has to know how a caller's
// configuration file spells an edition.
//
// Returns the edition and whether the name was recognized.
func ParseEdition(name string) (Edition, bool) {
	switch name {
	case "1971":
		return Edition1971, true
	case "1982":
		return Edition1982, true
	case "2023":
		return Edition2023, true
	case "DPTG", "dptg":
		return EditionDPTG, true
	default:
		return Edition(0), false
	}
}

// allowsUnintendedConvoy :
// Whether this edition honors a convoy route a player did not
// explicitly request when it would otherwise enable an army swap that
// a purely land-adjacent reading of the orders would forbid (two
// armies trading provinces directly is illegal; routing one of them
// through a fleet neither side asked for makes it legal). 1982 and
// 2023 honor it; 1971 and DPTG do not.
func (e Edition) allowsUnintendedConvoy() bool {
	switch e {
	case Edition1982, Edition2023:
		return true
	default:
		return false
	}
}
