// Package phase implements the canonical game-time string described in
// spec.md ¶6 and grounded in the original implementation's
// calendar.rs/time.rs: a season, a four-digit year and a phase letter,
// comparable in (year, season, phase) order without ever touching the
// wall clock.
package phase

import (
	"fmt"
	"strconv"
)

// Season :
// The quarter of the year a turn falls in. Not every variant uses
// every season, but the standard game only ever issues orders in
// Spring, Fall and (for builds) Winter; Summer is carried for
// variants the original supported.
type Season int

const (
	Spring Season = iota
	Summer
	Fall
	Winter
)

// String :
// Provides the single-letter code used by the canonical time string.
func (s Season) String() string {
	switch s {
	case Spring:
		return "S"
	case Summer:
		return "U"
	case Fall:
		return "F"
	case Winter:
		return "W"
	default:
		return "?"
	}
}

// Kind :
// The step within a season: the main movement phase, a retreat phase
// following it, or (Winter only, in the standard variant) a build
// phase.
type Kind int

const (
	Movement Kind = iota
	Retreat
	Build
)

// String :
// Provides the single-letter code used by the canonical time string.
func (k Kind) String() string {
	switch k {
	case Movement:
		return "M"
	case Retreat:
		return "R"
	case Build:
		return "B"
	default:
		return "?"
	}
}

// Time :
// A specific point in game time, rendered as `SYYYYP` — season,
// four-digit year, phase. Comparisons never consult a wall clock;
// `Compare` is the only ordering a caller should rely on.
type Time struct {
	Year   int
	Season Season
	Kind   Kind
}

// String :
// Renders the canonical `SYYYYP` form.
func (t Time) String() string {
	return fmt.Sprintf("%s%04d%s", t.Season, t.Year, t.Kind)
}

// Compare :
// Orders two times lexicographically by (year, season, phase),
// matching spec.md ¶6. Returns a negative number if `t` sorts before
// `other`, zero if they name the same time, and a positive number if
// `t` sorts after `other`.
func (t Time) Compare(other Time) int {
	if t.Year != other.Year {
		return t.Year - other.Year
	}
	if t.Season != other.Season {
		return int(t.Season) - int(other.Season)
	}
	return int(t.Kind) - int(other.Kind)
}

// ErrMalformedTime : A canonical time string was not exactly six characters of the expected shape.
var ErrMalformedTime = fmt.Errorf("malformed canonical time string")

// Parse :
// Parses a canonical `SYYYYP` string into a `Time`.
func Parse(s string) (Time, error) {
	if len(s) != 6 {
		return Time{}, ErrMalformedTime
	}
	season, ok := parseSeason(s[0:1])
	if !ok {
		return Time{}, ErrMalformedTime
	}
	year, err := strconv.Atoi(s[1:5])
	if err != nil {
		return Time{}, ErrMalformedTime
	}
	kind, ok := parseKind(s[5:6])
	if !ok {
		return Time{}, ErrMalformedTime
	}
	return Time{Year: year, Season: season, Kind: kind}, nil
}

func parseSeason(s string) (Season, bool) {
	switch s {
	case "S":
		return Spring, true
	case "U":
		return Summer, true
	case "F":
		return Fall, true
	case "W":
		return Winter, true
	default:
		return 0, false
	}
}

func parseKind(s string) (Kind, bool) {
	switch s {
	case "M":
		return Movement, true
	case "R":
		return Retreat, true
	case "B":
		return Build, true
	default:
		return 0, false
	}
}

// Next :
// Advances to the following turn of the standard game's calendar:
// Spring Movement -> Spring Retreat -> Fall Movement -> Fall Retreat
// -> Winter Build -> Spring Movement of the next year. Grounded in
// the original's `Calendar::new`, which inserts a Retreat phase after
// every Main phase; this is the fixed standard-variant sequence
// rather than a general configurable calendar (¶1 excludes
// turn-scheduling as a library feature).
func (t Time) Next() Time {
	switch {
	case t.Season == Spring && t.Kind == Movement:
		return Time{Year: t.Year, Season: Spring, Kind: Retreat}
	case t.Season == Spring && t.Kind == Retreat:
		return Time{Year: t.Year, Season: Fall, Kind: Movement}
	case t.Season == Fall && t.Kind == Movement:
		return Time{Year: t.Year, Season: Fall, Kind: Retreat}
	case t.Season == Fall && t.Kind == Retreat:
		return Time{Year: t.Year, Season: Winter, Kind: Build}
	case t.Season == Winter && t.Kind == Build:
		return Time{Year: t.Year + 1, Season: Spring, Kind: Movement}
	default:
		return Time{Year: t.Year, Season: Spring, Kind: Movement}
	}
}
