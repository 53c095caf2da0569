package resolve_test

import (
	"testing"

	"github.com/TedDriggs/diplomacy-sub000/internal/geo"
	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/internal/resolve"
	"github.com/TedDriggs/diplomacy-sub000/internal/unit"
)

type boolOutcome bool

func (b boolOutcome) Succeeds() bool { return bool(b) }

func rk(p string) geo.RegionKey { return geo.RegionKey{Province: p} }

func moveOrder(nation, from, to string) order.Order {
	return order.Order{Nation: unit.Nation(nation), UnitType: unit.Army, Origin: rk(from), Command: order.Move{Dest: rk(to)}}
}

func findByOrigin(orders []order.Order, province string) (order.Order, bool) {
	for _, o := range orders {
		if o.Origin.Province == province {
			return o, true
		}
	}
	return order.Order{}, false
}

// a bare-bones adjudicate function: a move succeeds unless its
// destination is occupied by an order that is not itself a
// successful move away from that province. Sufficient to exercise the
// engine's guess/commit and cycle-detection machinery without
// depending on the full rulebook.
func chainAdjudicate(orders []order.Order) resolve.AdjudicateFunc {
	return func(o order.Order, e *resolve.Engine) resolve.OrderOutcome {
		mv, ok := o.Command.(order.Move)
		if !ok {
			return boolOutcome(true)
		}
		occupier, occupied := findByOrigin(orders, mv.Dest.Province)
		if !occupied {
			return boolOutcome(true)
		}
		if _, isMove := occupier.Command.(order.Move); isMove {
			return boolOutcome(e.Succeeds(occupier))
		}
		return boolOutcome(false)
	}
}

func circularMove(o order.Order) resolve.OrderOutcome { return boolOutcome(true) }
func paradoxConvoy(o order.Order) resolve.OrderOutcome { return boolOutcome(false) }

func TestIndependentOrdersResolveDirectly(t *testing.T) {
	orders := []order.Order{moveOrder("france", "par", "pic")}
	e := resolve.NewEngine(orders, chainAdjudicate(orders), circularMove, paradoxConvoy, nil)
	if !e.Succeeds(orders[0]) {
		t.Error("a move into an empty province should succeed")
	}
}

func TestChainOfMovesIntoVacatedProvincesAllSucceed(t *testing.T) {
	orders := []order.Order{
		moveOrder("france", "par", "bur"),
		moveOrder("germany", "bur", "mun"),
	}
	e := resolve.NewEngine(orders, chainAdjudicate(orders), circularMove, paradoxConvoy, nil)
	for _, o := range orders {
		if !e.Succeeds(o) {
			t.Errorf("expected %s to succeed", o)
		}
	}
}

// TestGenuineCycleResolvesAsCircularMovement is the circular move DATC
// scenario of spec.md ¶8: three armies, each moving into the
// province the next one vacates, form a closed cycle with no outside
// occupier — every member must succeed.
func TestGenuineCycleResolvesAsCircularMovement(t *testing.T) {
	orders := []order.Order{
		moveOrder("turkey", "con", "bul"),
		moveOrder("austria", "bul", "rum"),
		moveOrder("russia", "rum", "con"),
	}
	e := resolve.NewEngine(orders, chainAdjudicate(orders), circularMove, paradoxConvoy, nil)
	results := e.ResolveAll()
	for _, o := range orders {
		if !results[o].Succeeds() {
			t.Errorf("expected %s to succeed as part of the circular movement", o)
		}
	}
}

func TestResolveAllCoversEveryOrder(t *testing.T) {
	orders := []order.Order{
		moveOrder("turkey", "con", "bul"),
		moveOrder("austria", "bul", "rum"),
		moveOrder("russia", "rum", "con"),
	}
	e := resolve.NewEngine(orders, chainAdjudicate(orders), circularMove, paradoxConvoy, nil)
	results := e.ResolveAll()
	if len(results) != len(orders) {
		t.Fatalf("got %d results, want %d", len(results), len(orders))
	}
}
