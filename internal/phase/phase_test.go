package phase_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/phase"
)

func TestStringRoundTrip(t *testing.T) {
	cases := []phase.Time{
		{Year: 1901, Season: phase.Spring, Kind: phase.Movement},
		{Year: 1901, Season: phase.Fall, Kind: phase.Retreat},
		{Year: 1904, Season: phase.Winter, Kind: phase.Build},
	}
	for _, c := range cases {
		s := c.String()
		got, err := phase.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if got != c {
			t.Errorf("round trip of %v produced %v", c, got)
		}
	}
}

func TestCompareOrdersByYearThenSeasonThenKind(t *testing.T) {
	early := phase.Time{Year: 1901, Season: phase.Spring, Kind: phase.Movement}
	later := phase.Time{Year: 1901, Season: phase.Fall, Kind: phase.Movement}
	nextYear := phase.Time{Year: 1902, Season: phase.Spring, Kind: phase.Movement}

	if early.Compare(later) >= 0 {
		t.Error("spring should sort before fall in the same year")
	}
	if later.Compare(nextYear) >= 0 {
		t.Error("1901 fall should sort before 1902 spring")
	}
	if early.Compare(early) != 0 {
		t.Error("a time should compare equal to itself")
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	for _, bad := range []string{"", "S1901", "X1901M", "S19M1"} {
		if _, err := phase.Parse(bad); err == nil {
			t.Errorf("Parse(%q) should have failed", bad)
		}
	}
}

func TestNextAdvancesThroughStandardCalendar(t *testing.T) {
	t0 := phase.Time{Year: 1901, Season: phase.Spring, Kind: phase.Movement}
	seq := []phase.Time{t0}
	for i := 0; i < 5; i++ {
		seq = append(seq, seq[len(seq)-1].Next())
	}

	want := []phase.Time{
		{Year: 1901, Season: phase.Spring, Kind: phase.Movement},
		{Year: 1901, Season: phase.Spring, Kind: phase.Retreat},
		{Year: 1901, Season: phase.Fall, Kind: phase.Movement},
		{Year: 1901, Season: phase.Fall, Kind: phase.Retreat},
		{Year: 1901, Season: phase.Winter, Kind: phase.Build},
		{Year: 1902, Season: phase.Spring, Kind: phase.Movement},
	}
	for i, w := range want {
		if seq[i] != w {
			t.Errorf("step %d = %v, want %v", i, seq[i], w)
		}
	}
}
