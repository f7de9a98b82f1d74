package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runegrid/runegrid/core"
)

func seedEntities(t *testing.T, s *Scheduler, ctx *Context, sets ...[]core.Component) []core.Entity {
	t.Helper()
	ids := make([]core.Entity, len(sets))
	for i, set := range sets {
		ids[i] = ctx.Commands.AddEntity(set...)
	}
	s.Fire(EventUpdate, ctx)
	return ids
}

func TestQueryPositiveAndNegativeFilters(t *testing.T) {
	w, s, ctx := harness(t)

	ids := seedEntities(t, s, ctx,
		[]core.Component{&posComponent{X: 1}},                    // pos only
		[]core.Component{&posComponent{X: 2}, &tagComponent{}},   // pos + tag
		[]core.Component{&velComponent{}},                        // vel only
		[]core.Component{&posComponent{X: 4}, &velComponent{}},   // pos + vel
	)

	results := w.Evaluate(Select(kindPos).Without(kindTag))

	require.Len(t, results, 2)
	assert.Equal(t, []core.Entity{ids[0], ids[3]}, results.Entities())
	for _, res := range results {
		assert.False(t, w.Has(res.Entity, kindTag))
	}
}

func TestQueryPreservesRegistryOrder(t *testing.T) {
	w, s, ctx := harness(t)

	ids := seedEntities(t, s, ctx,
		[]core.Component{&posComponent{}},
		[]core.Component{&posComponent{}},
		[]core.Component{&posComponent{}},
	)

	// Destroy the middle entity; remaining order must hold.
	ctx.Commands.DestroyEntity(ids[1])
	s.Fire(EventUpdate, ctx)

	results := w.Evaluate(Select(kindPos))
	assert.Equal(t, []core.Entity{ids[0], ids[2]}, results.Entities())
}

func TestQueryExposesOnlyRequestedComponents(t *testing.T) {
	w, s, ctx := harness(t)

	seedEntities(t, s, ctx,
		[]core.Component{&posComponent{X: 5}, &velComponent{DX: 6}},
	)

	results := w.Evaluate(Select(kindPos))
	require.Len(t, results, 1)

	pos := As[posComponent](results[0])
	assert.Equal(t, 5, pos.X)

	// The entity owns a velComponent, but the query never requested it.
	assert.Panics(t, func() {
		results[0].Component(kindVel)
	})
	_, ok := results[0].TryComponent(kindVel)
	assert.False(t, ok)
	_, ok = TryAs[velComponent](results[0])
	assert.False(t, ok)
}

func TestQueryResultsShareComponentReferences(t *testing.T) {
	w, s, ctx := harness(t)

	ids := seedEntities(t, s, ctx, []core.Component{&posComponent{X: 1}})

	// In-place data mutation through a result handle is immediately visible
	// to later reads; no command needed.
	res := w.Evaluate(Select(kindPos)).Only()
	As[posComponent](res).X = 42

	assert.Equal(t, 42, MustComponent[posComponent](w, ids[0]).X)
}

func TestQueryEvaluatesFreshEachCall(t *testing.T) {
	w, s, ctx := harness(t)

	assert.Empty(t, w.Evaluate(Select(kindPos)))

	seedEntities(t, s, ctx, []core.Component{&posComponent{}})
	assert.Len(t, w.Evaluate(Select(kindPos)), 1)

	seedEntities(t, s, ctx, []core.Component{&posComponent{}})
	assert.Len(t, w.Evaluate(Select(kindPos)), 2)
}

func TestOnlyRequiresExactlyOneResult(t *testing.T) {
	w, s, ctx := harness(t)

	assert.Panics(t, func() {
		w.Evaluate(Select(kindPos)).Only()
	})

	ids := seedEntities(t, s, ctx, []core.Component{&posComponent{}})
	assert.Equal(t, ids[0], w.Evaluate(Select(kindPos)).Only().Entity)

	seedEntities(t, s, ctx, []core.Component{&posComponent{}})
	assert.Panics(t, func() {
		w.Evaluate(Select(kindPos)).Only()
	})
}

func TestWithoutDoesNotMutateBaseQuery(t *testing.T) {
	w, s, ctx := harness(t)

	seedEntities(t, s, ctx,
		[]core.Component{&posComponent{}},
		[]core.Component{&posComponent{}, &tagComponent{}},
	)

	base := Select(kindPos)
	narrowed := base.Without(kindTag)

	assert.Len(t, w.Evaluate(base), 2)
	assert.Len(t, w.Evaluate(narrowed), 1)
	assert.True(t, narrowed.Includes(kindPos))
}
