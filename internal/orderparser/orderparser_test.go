package orderparser_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/orderparser"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

func TestParseMainOrderHold(t *testing.T) {
	o, err := orderparser.ParseMainOrder("AUS: F tri hold")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := order.Order{Nation: "AUS", UnitType: unit.Fleet, Origin: geo.RegionKey{Province: "tri"}, Command: order.Hold{}}
	if o != want {
		t.Errorf("got %+v, want %+v", o, want)
	}
}

func TestParseMainOrderMove(t *testing.T) {
	o, err := orderparser.ParseMainOrder("ENG: A lon -> bel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := order.Order{Nation: "ENG", UnitType: unit.Army, Origin: geo.RegionKey{Province: "lon"}, Command: order.Move{Dest: geo.RegionKey{Province: "bel"}}}
	if o != want {
		t.Errorf("got %+v, want %+v", o, want)
	}
}

func TestParseMainOrderMoveViaConvoy(t *testing.T) {
	o, err := orderparser.ParseMainOrder("ENG: A lon -> bel via convoy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mv, ok := o.Command.(order.Move)
	if !ok || mv.Convoy != order.MustUseConvoy {
		t.Errorf("expected a mandatory-convoy move, got %+v", o.Command)
	}

	noPref, err := orderparser.ParseMainOrder("ENG: A lon -> bel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if noPref == o {
		t.Error("an unqualified move should not equal a mandatory-convoy move")
	}
}

func TestParseMainOrderSupportHold(t *testing.T) {
	o, err := orderparser.ParseMainOrder("GER: A sil supports A ber")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := order.Support{Target: order.SupportHold{Unit: unit.Army, Region: geo.RegionKey{Province: "ber"}}}
	if o.Command != want {
		t.Errorf("got %+v, want %+v", o.Command, want)
	}
}

func TestParseMainOrderSupportMove(t *testing.T) {
	o, err := orderparser.ParseMainOrder("GER: A sil supports A ber -> pru")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := order.Support{Target: order.SupportMove{Unit: unit.Army, From: geo.RegionKey{Province: "ber"}, Dest: geo.RegionKey{Province: "pru"}}}
	if o.Command != want {
		t.Errorf("got %+v, want %+v", o.Command, want)
	}
}

func TestParseMainOrderConvoy(t *testing.T) {
	o, err := orderparser.ParseMainOrder("FRA: F eng convoys bre -> lon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := order.Convoy{From: geo.RegionKey{Province: "bre"}, To: geo.RegionKey{Province: "lon"}}
	if o.Command != want {
		t.Errorf("got %+v, want %+v", o.Command, want)
	}
}

func TestParseRegionWithCoast(t *testing.T) {
	o, err := orderparser.ParseMainOrder("RUS: F spa(sc) hold")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Origin != (geo.RegionKey{Province: "spa", Coast: geo.South}) {
		t.Errorf("got origin %+v", o.Origin)
	}
}

func TestParseRetreatOrders(t *testing.T) {
	hold, err := orderparser.ParseRetreatOrder("TUR: F ank hold")
	if err != nil || hold.Command != (order.RetreatHold{}) {
		t.Fatalf("got %+v, %v", hold, err)
	}
	move, err := orderparser.ParseRetreatOrder("TUR: F ank -> con")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if move.Command != (order.RetreatMove{Dest: geo.RegionKey{Province: "con"}}) {
		t.Errorf("got %+v", move.Command)
	}
}

func TestParseBuildOrders(t *testing.T) {
	b, err := orderparser.ParseBuildOrder("GER: A ber build")
	if err != nil || b.Command != (order.Build{}) {
		t.Fatalf("got %+v, %v", b, err)
	}
	d, err := orderparser.ParseBuildOrder("GER: A ber disband")
	if err != nil || d.Command != (order.Disband{}) {
		t.Fatalf("got %+v, %v", d, err)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"AUS: F",
		"AUS: X tri hold",
		"AUS: F tri(zz) hold",
		"AUS: F tri somethingstrange",
		"AUS: A par supports F",
	}
	for _, c := range cases {
		if _, err := orderparser.ParseMainOrder(c); err == nil {
			t.Errorf("ParseMainOrder(%q) should have failed", c)
		}
	}
}

func TestNationColonIsOptional(t *testing.T) {
	o, err := orderparser.ParseMainOrder("FRA A par hold")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Nation != "FRA" {
		t.Errorf("got nation %q", o.Nation)
	}
}
