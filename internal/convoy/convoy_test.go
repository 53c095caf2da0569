package convoy_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/convoy"
	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

func rk(p string) geo.RegionKey { return geo.RegionKey{Province: p} }

type allSucceed struct{}

func (allSucceed) Succeeds(order.Order) bool { return true }

type allFail struct{}

func (allFail) Succeeds(order.Order) bool { return false }

func TestRouteFindsSingleFleetChain(t *testing.T) {
	m := geo.Standard()
	fleet := order.Order{Nation: "france", UnitType: unit.Fleet, Origin: rk("eng"), Command: order.Convoy{From: rk("bre"), To: rk("lon")}}
	allOrders := []order.Order{fleet}

	paths := convoy.Route(m, allOrders, allSucceed{}, "bre", "lon")
	if len(paths) == 0 {
		t.Fatal("expected a convoy route bre -> eng -> lon")
	}
}

func TestRouteFailsWhenTheFleetOrderFails(t *testing.T) {
	m := geo.Standard()
	fleet := order.Order{Nation: "france", UnitType: unit.Fleet, Origin: rk("eng"), Command: order.Convoy{From: rk("bre"), To: rk("lon")}}
	allOrders := []order.Order{fleet}

	paths := convoy.Route(m, allOrders, allFail{}, "bre", "lon")
	if len(paths) != 0 {
		t.Fatal("a convoy route should not exist through a dislodged fleet")
	}
}

func TestPreResolutionReachableIgnoresOrderSuccess(t *testing.T) {
	m := geo.Standard()
	fleet := order.Order{Nation: "france", UnitType: unit.Fleet, Origin: rk("eng"), Command: order.Convoy{From: rk("bre"), To: rk("lon")}}
	allOrders := []order.Order{fleet}

	if !convoy.PreResolutionReachable(m, allOrders, "bre", "lon") {
		t.Error("a conceivable fleet chain should be reachable before any resolver exists")
	}
}

func TestRouteFindsMultiFleetChain(t *testing.T) {
	m := geo.Standard()
	first := order.Order{Nation: "france", UnitType: unit.Fleet, Origin: rk("eng"), Command: order.Convoy{From: rk("bre"), To: rk("lon")}}
	second := order.Order{Nation: "france", UnitType: unit.Fleet, Origin: rk("mao"), Command: order.Convoy{From: rk("bre"), To: rk("lon")}}
	allOrders := []order.Order{first, second}

	paths := convoy.Route(m, allOrders, allSucceed{}, "bre", "lon")
	if len(paths) == 0 {
		t.Fatal("expected at least the single-fleet path through eng")
	}
	found := false
	for _, p := range paths {
		if len(p.Fleets) == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a two-fleet path bre -> mao -> eng -> lon, got %v", paths)
	}
}

func TestRouteFindsNothingWithoutMatchingConvoyOrders(t *testing.T) {
	m := geo.Standard()
	paths := convoy.Route(m, nil, allSucceed{}, "bre", "lon")
	if paths != nil {
		t.Errorf("expected a nil result with no candidate convoys, got %v", paths)
	}
}
