package strength_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/strength"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

func rk(p string) geo.RegionKey { return geo.RegionKey{Province: p} }

type succeedsAll map[order.Order]bool

func (s succeedsAll) Succeeds(o order.Order) bool { return s[o] }

func TestAttackAndDefendAddOneToSupports(t *testing.T) {
	if got := strength.Attack(2); got != 3 {
		t.Errorf("Attack(2) = %d, want 3", got)
	}
	if got := strength.Defend(0); got != 1 {
		t.Errorf("Defend(0) = %d, want 1", got)
	}
}

func TestHoldStrengthVacatesOnSuccessfulExit(t *testing.T) {
	if got := strength.Hold(true, true, 3); got != 0 {
		t.Errorf("got %d, want 0 for a successfully vacating occupier", got)
	}
}

func TestHoldStrengthFailedExitResistsWithBareOne(t *testing.T) {
	if got := strength.Hold(true, false, 3); got != 1 {
		t.Errorf("got %d, want 1 for a failed-exit occupier regardless of supports", got)
	}
}

func TestHoldStrengthNonMoverCountsSupports(t *testing.T) {
	if got := strength.Hold(false, false, 2); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestPreventStrengthZeroWithoutPathOrAfterLosingHeadToHead(t *testing.T) {
	if got := strength.Prevent(false, false, 5); got != 0 {
		t.Errorf("got %d, want 0 when the move has no path", got)
	}
	if got := strength.Prevent(true, true, 5); got != 0 {
		t.Errorf("got %d, want 0 when the move lost a head-to-head", got)
	}
	if got := strength.Prevent(true, false, 2); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestSupportingMoveExcludesDefenderNation(t *testing.T) {
	supportOrder := order.Order{
		Nation:   "germany",
		UnitType: unit.Army,
		Origin:   rk("mun"),
		Command:  order.Support{Target: order.SupportMove{Unit: unit.Army, From: rk("sil"), Dest: rk("ber")}},
	}
	allOrders := []order.Order{supportOrder}
	resolver := succeedsAll{supportOrder: true}

	count := strength.SupportingMove(allOrders, resolver, "russia", "sil", "ber", "germany", true)
	if count != 0 {
		t.Errorf("got %d, want 0: a defender's own nation's support should never count against itself", count)
	}

	count = strength.SupportingMove(allOrders, resolver, "russia", "sil", "ber", "russia", true)
	if count != 1 {
		t.Errorf("got %d, want 1 when the defender is a different nation", count)
	}
}

func TestSupportingHoldCountsOnlySucceeding(t *testing.T) {
	supporting := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("pic"), Command: order.Support{Target: order.SupportHold{Unit: unit.Army, Region: rk("par")}}}
	cutSupport := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("gas"), Command: order.Support{Target: order.SupportHold{Unit: unit.Army, Region: rk("par")}}}
	allOrders := []order.Order{supporting, cutSupport}
	resolver := succeedsAll{supporting: true, cutSupport: false}

	if got := strength.SupportingHold(allOrders, resolver, "par"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}
