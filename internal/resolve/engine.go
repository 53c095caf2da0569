package resolve

import (
	"fmt"

	"github.com/TedDriggs/diplomacy-sub000/internal/order"
	"github.com/TedDriggs/diplomacy-sub000/pkg/logger"
)

// OrderOutcome :
// The minimal shape every rulebook outcome variant must provide: a
// boolean projection used by the resolver's internal state and by
// every caller that only cares whether the order succeeded, not why.
type OrderOutcome interface {
	Succeeds() bool
}

// Resolver :
// Exposed so that `internal/convoy`, `internal/support` and
// `internal/strength` can ask for the success of an order they
// depend on without importing the resolver's guess/commit machinery
// itself.
type Resolver interface {
	Succeeds(o order.Order) bool
}

// AdjudicateFunc :
// Supplied by `internal/rulebook`: given an order and the engine
// itself (so the rulebook can both ask whether a dependency succeeds
// and, where a rule genuinely needs it — head-to-head prevent-strength
// comparisons consult another move's full typed outcome — resolve it
// in full), produce the order's typed outcome. Called once per guess —
// twice for an order whose dependency chain closes back on itself —
// and once more whenever cycle resolution clears an order so it can be
// re-resolved.
type AdjudicateFunc func(o order.Order, e *Engine) OrderOutcome

// guess :
// A minimal `OrderOutcome` carrying nothing but the boolean guess
// made while an order's real resolution is still in progress.
// Returned from `Resolve` only while an order is `Guessing`; nothing
// downstream ever needs more than the boolean projection of a
// dependency mid-resolution (see ¶4.6).
type guess bool

func (g guess) Succeeds() bool { return bool(g) }

type status int

const (
	guessingStatus status = iota
	knownStatus
)

type entry struct {
	status   status
	succeeds bool
	outcome  OrderOutcome
}

// Engine :
// Implements the main-phase guess-and-check fixpoint described in
// ¶4.6: resolves every order's success or failure even when outcomes
// are mutually dependent, by hypothesizing a value, running the
// rulebook against the hypothesis, and checking whether the
// hypothesis was ever actually needed.
//
// The `orders` list fixes the deterministic iteration/reporting order
// (¶5 — Go map iteration is randomized, so a parallel slice carries
// the real order).
//
// The `adjudicate` callback is the rulebook's dispatch table.
//
// The `circularMove` and `paradoxConvoy` callbacks produce the typed
// outcome for the two cycle-resolution cases (¶4.6) without this
// package needing to import the rulebook's concrete outcome types.
//
// The `entries` map holds the resolution state for every order that
// has been touched at least once; an absent entry means "not yet
// resolved".
//
// The `chain` is the ordered list of orders whose value is currently
// a guess still under test — used purely to detect when a
// hypothesis loops back on itself.
//
// The `paradoxical` set records convoy orders declared failed to
// break a paradox, kept for callers wanting to audit which convoys
// were sacrificed.
type Engine struct {
	orders        []order.Order
	adjudicate    AdjudicateFunc
	circularMove  func(order.Order) OrderOutcome
	paradoxConvoy func(order.Order) OrderOutcome
	log           logger.Logger

	entries     map[order.Order]*entry
	chain       []order.Order
	paradoxical map[order.Order]bool
}

// NewEngine :
// Builds a resolver for exactly the given orders. `log` may be nil,
// in which case tracing is discarded.
func NewEngine(orders []order.Order, adjudicate AdjudicateFunc, circularMove, paradoxConvoy func(order.Order) OrderOutcome, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Noop{}
	}
	return &Engine{
		orders:        orders,
		adjudicate:    adjudicate,
		circularMove:  circularMove,
		paradoxConvoy: paradoxConvoy,
		log:           log,
		entries:       make(map[order.Order]*entry),
		paradoxical:   make(map[order.Order]bool),
	}
}

// Succeeds :
// Implements `Resolver` for every helper package: resolves the order
// and projects the typed outcome to a boolean.
func (e *Engine) Succeeds(o order.Order) bool {
	return e.Resolve(o).Succeeds()
}

// Paradoxical :
// Reports whether the given convoy order was declared failed to
// break a paradox during resolution.
func (e *Engine) Paradoxical(o order.Order) bool {
	return e.paradoxical[o]
}

// Resolve :
// The core routine of ¶4.6. Resolves `o`'s typed outcome, recursing
// through the rulebook as needed and resolving any paradox or
// circular-movement cycle this order is part of.
func (e *Engine) Resolve(o order.Order) OrderOutcome {
	if ent, ok := e.entries[o]; ok {
		if ent.status == knownStatus {
			return ent.outcome
		}
		e.recordDependency(o)
		return guess(ent.succeeds)
	}
	return e.resolveUnknown(o)
}

// recordDependency appends o to the chain of currently-guessing
// orders, unless it is already present — this is precisely how a
// hypothesis "loops back" on itself or on an ancestor gets noticed.
func (e *Engine) recordDependency(o order.Order) {
	for _, d := range e.chain {
		if d == o {
			return
		}
	}
	e.chain = append(e.chain, o)
	e.trace(fmt.Sprintf("dependency recorded: %s (chain depth %d)", o, len(e.chain)))
}

func (e *Engine) resolveUnknown(o order.Order) OrderOutcome {
	preEntries := e.cloneEntries()
	preChainLen := len(e.chain)

	e.entries[o] = &entry{status: guessingStatus, succeeds: false}
	e.trace(fmt.Sprintf("guessing %s := fails", o))
	firstOutcome := e.adjudicate(o, e)
	first := firstOutcome.Succeeds()

	newDep, found := e.firstNewDependency(preChainLen)
	if !found {
		e.entries[o] = &entry{status: knownStatus, succeeds: first, outcome: firstOutcome}
		e.trace(fmt.Sprintf("commit %s := %v (no dependency)", o, first))
		return firstOutcome
	}

	if newDep != o {
		e.entries[o] = &entry{status: guessingStatus, succeeds: first}
		e.appendChain(o)
		e.trace(fmt.Sprintf("guess %s := %v stands, chain passes through to %s", o, first, newDep))
		return guess(first)
	}

	// The chain closed back on o itself: try the other guess before
	// concluding this is a genuine cycle.
	e.restore(preEntries, preChainLen)
	preEntries = e.cloneEntries()
	e.entries[o] = &entry{status: guessingStatus, succeeds: true}
	e.trace(fmt.Sprintf("cycle on %s: retrying with guess := succeeds", o))
	secondOutcome := e.adjudicate(o, e)
	second := secondOutcome.Succeeds()

	if first == second {
		// Guesses made by dependents under the retried hypothesis are
		// discarded so they get resolved again against the real value.
		e.restore(preEntries, preChainLen)
		e.entries[o] = &entry{status: knownStatus, succeeds: second, outcome: secondOutcome}
		e.trace(fmt.Sprintf("%s independent of guess, commit := %v", o, second))
		return secondOutcome
	}

	e.trace(fmt.Sprintf("genuine cycle detected closing on %s", o))
	e.resolveCycleTail(preChainLen)
	return e.Resolve(o)
}

// firstNewDependency returns the first chain entry appended beyond
// the given mark, if any.
func (e *Engine) firstNewDependency(mark int) (order.Order, bool) {
	if len(e.chain) <= mark {
		return order.Order{}, false
	}
	return e.chain[mark], true
}

func (e *Engine) appendChain(o order.Order) {
	for _, d := range e.chain {
		if d == o {
			return
		}
	}
	e.chain = append(e.chain, o)
}

// resolveCycleTail implements the two cycle-breaking rules of ¶4.6:
// a tail made entirely of moves is a circular movement (every member
// succeeds); otherwise convoy orders in the tail are declared failed
// (Szykman) and every other order in the tail is cleared so it can be
// re-resolved with the convoys now known-failed.
func (e *Engine) resolveCycleTail(mark int) {
	tail := append([]order.Order(nil), e.chain[mark:]...)
	e.chain = e.chain[:mark]

	allMoves := true
	for _, t := range tail {
		if _, ok := t.Command.(order.Move); !ok {
			allMoves = false
			break
		}
	}

	if allMoves {
		for _, t := range tail {
			outcome := e.circularMove(t)
			e.entries[t] = &entry{status: knownStatus, succeeds: true, outcome: outcome}
			e.trace(fmt.Sprintf("circular movement: %s succeeds", t))
		}
		return
	}

	for _, t := range tail {
		if _, ok := t.Command.(order.Convoy); ok {
			e.paradoxical[t] = true
			outcome := e.paradoxConvoy(t)
			e.entries[t] = &entry{status: knownStatus, succeeds: false, outcome: outcome}
			e.trace(fmt.Sprintf("szykman: %s declared failed to break paradox", t))
		} else {
			delete(e.entries, t)
			e.trace(fmt.Sprintf("cleared %s for re-resolution", t))
		}
	}
}

func (e *Engine) cloneEntries() map[order.Order]*entry {
	out := make(map[order.Order]*entry, len(e.entries))
	for k, v := range e.entries {
		cp := *v
		out[k] = &cp
	}
	return out
}

func (e *Engine) restore(entries map[order.Order]*entry, chainLen int) {
	e.entries = entries
	e.chain = e.chain[:chainLen]
}

func (e *Engine) trace(msg string) {
	e.log.Trace(logger.Verbose, "resolve", msg)
}

// ResolveAll :
// Resolves every order in submission order, returning a map from
// order to its typed outcome; `Orders` gives the deterministic order
// list needed to iterate it reproducibly. Exists so `internal/rulebook`
// does not have to re-derive the iteration-order guarantee of ¶5.
func (e *Engine) ResolveAll() map[order.Order]OrderOutcome {
	out := make(map[order.Order]OrderOutcome, len(e.orders))
	for _, o := range e.orders {
		out[o] = e.Resolve(o)
	}
	return out
}

// Orders :
// Returns the submission-ordered list of orders this engine was
// built for.
func (e *Engine) Orders() []order.Order {
	return e.orders
}
