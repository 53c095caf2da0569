package order_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

func TestOrderStringRendersCanonicalGrammar(t *testing.T) {
	o := order.Order{
		Nation:   "france",
		UnitType: unit.Army,
		Origin:   geo.RegionKey{Province: "par"},
		Command:  order.Move{Dest: geo.RegionKey{Province: "bur"}},
	}
	want := "france: A par -> bur"
	if got := o.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInvalidReasonStrings(t *testing.T) {
	cases := map[order.InvalidReason]string{
		order.NoUnit:                 "no_unit",
		order.ForeignUnit:            "foreign_unit",
		order.MultipleToSameUnit:     "multiple_to_same_unit",
		order.UnreachableDestination: "unreachable_destination",
	}
	for reason, want := range cases {
		if got := reason.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", reason, got, want)
		}
	}
}

func TestMoveStringIncludesConvoyQualifier(t *testing.T) {
	mv := order.Move{Dest: geo.RegionKey{Province: "lon"}, Convoy: order.MustUseConvoy}
	if got := mv.String(); got != "-> lon via convoy" {
		t.Errorf("got %q", got)
	}
}

func TestSupportTargetStrings(t *testing.T) {
	hold := order.SupportHold{Unit: unit.Army, Region: geo.RegionKey{Province: "ber"}}
	if got := hold.String(); got != "supports A ber" {
		t.Errorf("got %q", got)
	}
	mv := order.SupportMove{Unit: unit.Fleet, From: geo.RegionKey{Province: "kie"}, Dest: geo.RegionKey{Province: "ber"}}
	if got := mv.String(); got != "supports F kie -> ber" {
		t.Errorf("got %q", got)
	}
}
