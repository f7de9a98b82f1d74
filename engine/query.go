package engine

import (
	"fmt"

	"github.com/runegrid/runegrid/core"
)

// Query is a declarative component filter: an entity matches when it holds
// every included kind and none of the excluded kinds. Queries are evaluated
// fresh against current world state on every call; no index or result is
// cached across evaluations.
type Query struct {
	include []core.Kind
	exclude []core.Kind
}

// Select starts a query matching entities that hold all the given kinds.
func Select(kinds ...core.Kind) Query {
	return Query{include: kinds}
}

// Without adds kinds the matched entities must not hold.
func (q Query) Without(kinds ...core.Kind) Query {
	q.exclude = append(q.exclude[:len(q.exclude):len(q.exclude)], kinds...)
	return q
}

// Includes reports whether the query positively filters on the given kind.
func (q Query) Includes(k core.Kind) bool {
	for _, inc := range q.include {
		if inc == k {
			return true
		}
	}
	return false
}

// Result binds one matched entity to handles for exactly the components the
// query positively filtered on. Components the entity happens to own beyond
// the filter are not reachable through the result.
type Result struct {
	Entity   core.Entity
	captured map[core.Kind]core.Component
}

// Component returns the captured component of the given kind. Asking for a
// kind the query did not include is a programmer error and panics.
func (r Result) Component(k core.Kind) core.Component {
	c, ok := r.captured[k]
	if !ok {
		panic(fmt.Sprintf("engine: component %s was not requested by the query", core.KindName(k)))
	}
	return c
}

// TryComponent returns the captured component of the given kind, or false if
// the query did not request it.
func (r Result) TryComponent(k core.Kind) (core.Component, bool) {
	c, ok := r.captured[k]
	return c, ok
}

// Results is an ordered query result set, in registry iteration order.
type Results []Result

// Only returns the single result. Any other length is a programmer error and
// panics; it signals a query/system mismatch, typically a singleton component
// that is missing or duplicated.
func (rs Results) Only() Result {
	if len(rs) != 1 {
		panic(fmt.Sprintf("engine: Only() requires exactly 1 result, got %d", len(rs)))
	}
	return rs[0]
}

// Entities returns the matched entities in result order.
func (rs Results) Entities() []core.Entity {
	out := make([]core.Entity, len(rs))
	for i, r := range rs {
		out[i] = r.Entity
	}
	return out
}

// Evaluate scans all live entities in registry order and returns those that
// hold every included kind and none of the excluded kinds, each bound to its
// positively-filtered components.
func (w *World) Evaluate(q Query) Results {
	results := make(Results, 0, 16)

entities:
	for _, e := range w.order {
		kinds := w.components[e]
		for _, k := range q.exclude {
			if _, has := kinds[k]; has {
				continue entities
			}
		}
		captured := make(map[core.Kind]core.Component, len(q.include))
		for _, k := range q.include {
			c, has := kinds[k]
			if !has {
				continue entities
			}
			captured[k] = c
		}
		results = append(results, Result{Entity: e, captured: captured})
	}
	return results
}

// As extracts the typed component T from a result. The query must have
// included T's kind.
func As[T any](r Result) *T {
	return r.Component(core.KindOf[T]()).(*T)
}

// TryAs extracts the typed component T from a result, or false if the query
// did not request it.
func TryAs[T any](r Result) (*T, bool) {
	c, ok := r.TryComponent(core.KindOf[T]())
	if !ok {
		return nil, false
	}
	return c.(*T), true
}
