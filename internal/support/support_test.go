package support_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/support"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

func rk(p string) geo.RegionKey { return geo.RegionKey{Province: p} }

func TestLegalRejectsSupportingOwnRegion(t *testing.T) {
	supporter := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("par")}
	target := order.SupportHold{Unit: unit.Army, Region: rk("par")}
	if support.Legal(supporter, target) {
		t.Error("a unit cannot support-hold its own region")
	}
}

func TestLegalRejectsNoOpSupportMove(t *testing.T) {
	supporter := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("pic")}
	target := order.SupportMove{Unit: unit.Army, From: rk("par"), Dest: rk("par")}
	if support.Legal(supporter, target) {
		t.Error("a support-move whose from and dest coincide is illegal")
	}
}

func TestReachableRequiresPassableBorder(t *testing.T) {
	m := geo.Standard()
	supporter := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("pic")}
	if !support.Reachable(m, supporter, "bel") {
		t.Error("pic should reach bel")
	}
	if support.Reachable(m, supporter, "mun") {
		t.Error("pic should not reach mun")
	}
}

func TestCutsRequiresDifferentNationAndPath(t *testing.T) {
	supporter := order.Order{Nation: "france", UnitType: unit.Army, Origin: rk("pic"),
		Command: order.Support{Target: order.SupportHold{Unit: unit.Army, Region: rk("bel")}}}
	attacker := order.Order{Nation: "germany", UnitType: unit.Army, Origin: rk("ruh"),
		Command: order.Move{Dest: rk("pic")}}

	cuts := support.Cuts(supporter, attacker, order.SupportHold{Unit: unit.Army, Region: rk("bel")}, true, func() bool { return true })
	if !cuts {
		t.Error("an attack into the supporter's province by a different nation should cut the support")
	}

	sameNationAttacker := attacker
	sameNationAttacker.Nation = "france"
	if support.Cuts(supporter, sameNationAttacker, order.SupportHold{Unit: unit.Army, Region: rk("bel")}, true, func() bool { return true }) {
		t.Error("a unit cannot cut its own nation's support")
	}

	if support.Cuts(supporter, attacker, order.SupportHold{Unit: unit.Army, Region: rk("bel")}, false, func() bool { return true }) {
		t.Error("an attack with no path to the supporter cannot cut the support")
	}
}

func TestCutsExceptionForSupportAidingMoveIntoAttackersOrigin(t *testing.T) {
	// DATC 6.D.15: RUS F con supports F bla -> ank, RUS F bla -> ank,
	// TUR F ank -> con. The Turkish attack on the supporter (con) is
	// immune unless it actually dislodges con, because the supported
	// move is itself attacking the Turkish fleet's own province (ank).
	supporter := order.Order{Nation: "russia", UnitType: unit.Fleet, Origin: rk("con"),
		Command: order.Support{Target: order.SupportMove{Unit: unit.Fleet, From: rk("bla"), Dest: rk("ank")}}}
	attacker := order.Order{Nation: "turkey", UnitType: unit.Fleet, Origin: rk("ank"),
		Command: order.Move{Dest: rk("con")}}
	target := order.SupportMove{Unit: unit.Fleet, From: rk("bla"), Dest: rk("ank")}

	notDislodging := func() bool { return false }
	if support.Cuts(supporter, attacker, target, true, notDislodging) {
		t.Error("support for a move landing on the attacker's own origin should not be cut unless the attacker dislodges it")
	}

	dislodging := func() bool { return true }
	if !support.Cuts(supporter, attacker, target, true, dislodging) {
		t.Error("the support should be cut once the attack actually dislodges the supporter")
	}
}
