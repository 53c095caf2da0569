package retreat_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/retreat"
	"github.com/TedDriggs/diplomacy-sub000/internal/rulebook"
	"github.com/TedDriggs/diplomacy-sub000/internal/submission"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

func rk(p string) geo.RegionKey { return geo.RegionKey{Province: p} }

// buildDislodgement adjudicates a turn where Germany dislodges France
// out of Paris: A pic -> par, supported from bur, against a lone
// holding French army.
func buildDislodgement(t *testing.T) (*rulebook.Outcome, order.Order) {
	t.Helper()
	m := geo.Standard()

	germanMove := order.Order{Nation: "germany", UnitType: unit.Army, Origin: rk("pic"), Command: order.Move{Dest: rk("par")}}
	germanSupport := order.Order{Nation: "germany", UnitType: unit.Army, Origin: rk("bur"),
		Command: order.Support{Target: order.SupportMove{Unit: unit.Army, From: rk("pic"), Dest: rk("par")}}}
	franceHold := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("par"), Command: order.Hold{}}

	positions := []unit.Position{
		{Unit: unit.Unit{Nation: "germany", Type: unit.Army}, Region: rk("pic")},
		{Unit: unit.Unit{Nation: "germany", Type: unit.Army}, Region: rk("bur")},
		{Unit: unit.Unit{Nation: "france", Type: unit.Army}, Region: rk("par")},
	}
	raw := []order.Order{germanMove, germanSupport, franceHold}

	sub, err := submission.New(m, positions, raw)
	if err != nil {
		t.Fatalf("submission.New: %v", err)
	}
	outcome := rulebook.Adjudicate(m, sub.Context().Orders, rulebook.Edition1982, nil)
	return outcome, germanMove
}

func TestNewContextComputesCandidateStatuses(t *testing.T) {
	outcome, germanMove := buildDislodgement(t)
	ctx := retreat.NewContext(outcome, nil)

	pending := ctx.Pending()
	if len(pending) != 1 {
		t.Fatalf("expected exactly one pending retreat, got %d", len(pending))
	}
	p := pending[0]
	if p.Order.Origin.Province != "par" {
		t.Fatalf("expected the pending retreat to be for par, got %s", p.Order.Origin.Province)
	}
	if p.DislodgedBy != germanMove {
		t.Fatalf("got dislodger %+v, want %+v", p.DislodgedBy, germanMove)
	}

	cases := map[string]retreat.Status{
		"pic": retreat.BlockedByDislodger,
		"bur": retreat.Occupied,
		"bre": retreat.Available,
		"gas": retreat.Available,
	}
	for province, want := range cases {
		cand, ok := p.Find(rk(province))
		if !ok {
			t.Errorf("expected a candidate for %s", province)
			continue
		}
		if cand.Status != want {
			t.Errorf("%s: got status %v, want %v", province, cand.Status, want)
		}
	}
}

func TestResolveAllowsRetreatToAvailableDestination(t *testing.T) {
	outcome, _ := buildDislodgement(t)
	retreatOrder := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("par"), Command: order.RetreatMove{Dest: rk("gas")}}
	ctx := retreat.NewContext(outcome, []order.Order{retreatOrder})

	results, survivors := ctx.Resolve()
	if !results[retreatOrder].Succeeds() {
		t.Fatalf("got %#v, want the retreat to gas to succeed", results[retreatOrder])
	}

	found := false
	for _, p := range survivors {
		if p.Region.Province == "gas" && p.Unit.Nation == "france" {
			found = true
		}
	}
	if !found {
		t.Error("expected the retreating french army to appear at gas in the survivors")
	}
}

func TestResolveBlocksRetreatIntoDislodgerOrigin(t *testing.T) {
	outcome, _ := buildDislodgement(t)
	retreatOrder := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("par"), Command: order.RetreatMove{Dest: rk("pic")}}
	ctx := retreat.NewContext(outcome, []order.Order{retreatOrder})

	results, _ := ctx.Resolve()
	blocked, ok := results[retreatOrder].(retreat.Blocked)
	if !ok {
		t.Fatalf("got %#v, want Blocked", results[retreatOrder])
	}
	if blocked.Status != retreat.BlockedByDislodger {
		t.Errorf("got status %v, want BlockedByDislodger", blocked.Status)
	}
}

func TestResolveHoldDisbands(t *testing.T) {
	outcome, _ := buildDislodgement(t)
	retreatOrder := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("par"), Command: order.RetreatHold{}}
	ctx := retreat.NewContext(outcome, []order.Order{retreatOrder})

	results, _ := ctx.Resolve()
	if _, ok := results[retreatOrder].(retreat.HeldDisband); !ok {
		t.Fatalf("got %#v, want HeldDisband", results[retreatOrder])
	}
}

// buildDoubleDislodgement adjudicates a turn that dislodges two units
// at once, both of which can retreat to the one neutral province
// (gas) bordering them both, so issuing both retreats there exercises
// mutual prevention.
func buildDoubleDislodgement(t *testing.T) *rulebook.Outcome {
	t.Helper()
	m := geo.Standard()

	raw := []order.Order{
		{Nation: "france", UnitType: unit.Army, Origin: rk("par"), Command: order.Hold{}},
		{Nation: "germany", UnitType: unit.Army, Origin: rk("pic"), Command: order.Move{Dest: rk("par")}},
		{Nation: "germany", UnitType: unit.Army, Origin: rk("bre"),
			Command: order.Support{Target: order.SupportMove{Unit: unit.Army, From: rk("pic"), Dest: rk("par")}}},
		{Nation: "italy", UnitType: unit.Army, Origin: rk("bur"), Command: order.Hold{}},
		{Nation: "austria", UnitType: unit.Army, Origin: rk("mar"), Command: order.Move{Dest: rk("bur")}},
		{Nation: "austria", UnitType: unit.Army, Origin: rk("mun"),
			Command: order.Support{Target: order.SupportMove{Unit: unit.Army, From: rk("mar"), Dest: rk("bur")}}},
	}
	positions := make([]unit.Position, len(raw))
	for i, o := range raw {
		positions[i] = unit.Position{Unit: unit.Unit{Nation: o.Nation, Type: o.UnitType}, Region: o.Origin}
	}

	sub, err := submission.New(m, positions, raw)
	if err != nil {
		t.Fatalf("submission.New: %v", err)
	}
	return rulebook.Adjudicate(m, sub.Context().Orders, rulebook.Edition1982, nil)
}

func TestResolveMutuallyPreventsRetreatsToSameDestination(t *testing.T) {
	outcome := buildDoubleDislodgement(t)

	parRetreat := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("par"), Command: order.RetreatMove{Dest: rk("gas")}}
	burRetreat := order.Order{Nation: "italy", UnitType: unit.Army, Origin: rk("bur"), Command: order.RetreatMove{Dest: rk("gas")}}
	ctx := retreat.NewContext(outcome, []order.Order{parRetreat, burRetreat})

	results, _ := ctx.Resolve()
	parOutcome, ok := results[parRetreat].(retreat.Prevented)
	if !ok {
		t.Fatalf("got %#v, want Prevented", results[parRetreat])
	}
	if parOutcome.By != burRetreat {
		t.Errorf("got prevented by %+v, want %+v", parOutcome.By, burRetreat)
	}
	if _, ok := results[burRetreat].(retreat.Prevented); !ok {
		t.Fatalf("got %#v, want Prevented", results[burRetreat])
	}
}
