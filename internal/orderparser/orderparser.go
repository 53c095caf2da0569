// Package orderparser reads the canonical textual order grammar of
// spec.md ¶6 (`NAT: UT REG COMMAND`) into `internal/order` values.
//
// This is the convenience reader SPEC_FULL.md ¶1 and ¶2 describe: it
// is used by this module's own tests and by `cmd/adjudicate`, not
// shipped as a hardened production-facing parser. Grounded in the
// original implementation's hand-written recursive-descent parser
// (`diplomacy/src/parser/mod.rs`) — no parser-combinator library is
// used upstream, so none is adopted here either (see DESIGN.md).
package orderparser

import (
	"fmt"
	"strings"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

// ErrTooFewWords : An order string lacked one of the three header words every order needs, or had no command after them.
var ErrTooFewWords = fmt.Errorf("orderparser: order has too few words")

// ErrUnknownUnitType : The unit-type word was neither "A" nor "F" (case-insensitively).
var ErrUnknownUnitType = fmt.Errorf("orderparser: unknown unit type")

// ErrMalformedRegion : A region word did not parse as a province key with an optional coast suffix.
var ErrMalformedRegion = fmt.Errorf("orderparser: malformed region")

// ErrMalformedCoast : A region's parenthesized coast suffix was not one of nc/ec/sc/wc.
var ErrMalformedCoast = fmt.Errorf("orderparser: malformed coast tag")

// ErrUnknownCommand : The command word did not match any recognized command for this phase.
var ErrUnknownCommand = fmt.Errorf("orderparser: unknown command")

// ErrMalformedMove : A move command's words did not match "-> DEST" or "-> DEST via convoy".
var ErrMalformedMove = fmt.Errorf("orderparser: malformed move command")

// ErrMalformedSupport : A support command's words did not match either supported-order shape.
var ErrMalformedSupport = fmt.Errorf("orderparser: malformed support command")

// ErrMalformedConvoy : A convoy command's words did not match "convoys REG -> DEST".
var ErrMalformedConvoy = fmt.Errorf("orderparser: malformed convoy command")

// ParseMainOrder :
// Parses one line of the main-phase grammar: `NAT: UT REG COMMAND`
// where COMMAND is hold, a move, a support, or a convoy.
func ParseMainOrder(s string) (order.Order, error) {
	words := strings.Fields(s)
	nation, ut, origin, rest, err := parseHeader(words)
	if err != nil {
		return order.Order{}, err
	}
	cmd, err := parseMainCommand(rest)
	if err != nil {
		return order.Order{}, err
	}
	return order.Order{Nation: nation, UnitType: ut, Origin: origin, Command: cmd}, nil
}

// ParseRetreatOrder :
// Parses one line of the retreat-phase grammar: `NAT: UT REG COMMAND`
// where COMMAND is hold or a move; no convoy or support is accepted.
func ParseRetreatOrder(s string) (order.Order, error) {
	words := strings.Fields(s)
	nation, ut, origin, rest, err := parseHeader(words)
	if err != nil {
		return order.Order{}, err
	}
	cmd, err := parseRetreatCommand(rest)
	if err != nil {
		return order.Order{}, err
	}
	return order.Order{Nation: nation, UnitType: ut, Origin: origin, Command: cmd}, nil
}

// ParseBuildOrder :
// Parses one line of the build-phase grammar: `NAT: UT REG COMMAND`
// where COMMAND is `build` or `disband`.
func ParseBuildOrder(s string) (order.Order, error) {
	words := strings.Fields(s)
	nation, ut, origin, rest, err := parseHeader(words)
	if err != nil {
		return order.Order{}, err
	}
	cmd, err := parseBuildCommand(rest)
	if err != nil {
		return order.Order{}, err
	}
	return order.Order{Nation: nation, UnitType: ut, Origin: origin, Command: cmd}, nil
}

// parseHeader reads the three words every order shares — nation,
// unit type, origin region — and returns whatever words remain for
// the phase-specific command parser.
func parseHeader(words []string) (unit.Nation, unit.Type, geo.RegionKey, []string, error) {
	if len(words) < 3 {
		return "", 0, geo.RegionKey{}, nil, ErrTooFewWords
	}
	nation := unit.Nation(strings.TrimSuffix(words[0], ":"))
	ut, err := parseUnitType(words[1])
	if err != nil {
		return "", 0, geo.RegionKey{}, nil, err
	}
	origin, err := parseRegionKey(words[2])
	if err != nil {
		return "", 0, geo.RegionKey{}, nil, err
	}
	return nation, ut, origin, words[3:], nil
}

func parseUnitType(s string) (unit.Type, error) {
	switch strings.ToUpper(s) {
	case "A":
		return unit.Army, nil
	case "F":
		return unit.Fleet, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownUnitType, s)
	}
}

// parseRegionKey reads a region word: a province key, optionally
// suffixed with a parenthesized coast tag, e.g. "spa(sc)".
func parseRegionKey(s string) (geo.RegionKey, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return geo.RegionKey{Province: s}, nil
	}
	if !strings.HasSuffix(s, ")") {
		return geo.RegionKey{}, fmt.Errorf("%w: %s", ErrMalformedRegion, s)
	}
	province := s[:open]
	coast, ok := parseCoast(s[open+1 : len(s)-1])
	if !ok {
		return geo.RegionKey{}, fmt.Errorf("%w: %s", ErrMalformedCoast, s)
	}
	return geo.RegionKey{Province: province, Coast: coast}, nil
}

func parseCoast(s string) (geo.Coast, bool) {
	switch strings.ToLower(s) {
	case "nc":
		return geo.North, true
	case "ec":
		return geo.East, true
	case "sc":
		return geo.South, true
	case "wc":
		return geo.West, true
	default:
		return geo.NoCoast, false
	}
}
