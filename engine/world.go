package engine

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/runegrid/runegrid/core"
)

// World owns entity identity and the kind-keyed component store.
//
// The world follows a single-logical-thread model: systems read it and mutate
// component data in place, but every structural change (create or destroy an
// entity, add or remove a component) routes through the command queue and is
// applied in one serialized phase per event firing. Nothing here locks; the
// command queue is the sole structural writer.
type World struct {
	nextEntityID core.Entity

	components map[core.Entity]map[core.Kind]core.Component
	order      []core.Entity // live entities in creation order, drives query iteration

	singletons map[core.Kind]bool

	log *zap.Logger
}

// NewWorld creates an empty world. A nil logger defaults to a no-op logger.
func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		nextEntityID: 1,
		components:   make(map[core.Entity]map[core.Kind]core.Component),
		order:        make([]core.Entity, 0, 64),
		singletons:   make(map[core.Kind]bool),
		log:          log,
	}
}

// MarkSingleton declares kinds that may have at most one live instance in the
// world. A command that would create a second instance is a programmer error
// and panics at apply time.
func (w *World) MarkSingleton(kinds ...core.Kind) {
	for _, k := range kinds {
		w.singletons[k] = true
	}
}

// reserveEntityID allocates the next entity id. Ids are never reused.
func (w *World) reserveEntityID() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// addEntity commits a reserved entity with its initial component set.
// Only the command queue calls this.
func (w *World) addEntity(id core.Entity, components []core.Component) {
	if _, exists := w.components[id]; exists {
		w.log.Warn("add of an already-live entity ignored", zap.Uint64("entity", uint64(id)))
		return
	}
	kinds := make(map[core.Kind]core.Component, len(components))
	for _, c := range components {
		k := componentKind(c)
		w.checkSingleton(k, id)
		kinds[k] = c
	}
	w.components[id] = kinds
	w.order = append(w.order, id)
}

// destroyEntity removes an entity and all of its components.
// Destroying an id that is not live is a no-op.
func (w *World) destroyEntity(id core.Entity) {
	if _, ok := w.components[id]; !ok {
		w.log.Debug("destroy of dead entity ignored", zap.Uint64("entity", uint64(id)))
		return
	}
	delete(w.components, id)
	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// addComponent attaches a component to a live entity, replacing any existing
// component of the same kind. Addressed to a dead entity it is a stale
// command and is skipped.
func (w *World) addComponent(id core.Entity, c core.Component) {
	kinds, ok := w.components[id]
	if !ok {
		w.log.Debug("add component to dead entity skipped",
			zap.Uint64("entity", uint64(id)),
			zap.String("kind", core.KindName(componentKind(c))))
		return
	}
	k := componentKind(c)
	if _, replacing := kinds[k]; !replacing {
		w.checkSingleton(k, id)
	}
	kinds[k] = c
}

// removeComponent detaches a component kind from an entity. A missing kind is
// a no-op; a dead entity means the command went stale and is skipped.
func (w *World) removeComponent(id core.Entity, k core.Kind) {
	kinds, ok := w.components[id]
	if !ok {
		w.log.Debug("remove component from dead entity skipped",
			zap.Uint64("entity", uint64(id)),
			zap.String("kind", core.KindName(k)))
		return
	}
	delete(kinds, k)
}

// checkSingleton panics if adding kind k would create a second live instance
// of a declared-singleton kind.
func (w *World) checkSingleton(k core.Kind, id core.Entity) {
	if !w.singletons[k] {
		return
	}
	for e, kinds := range w.components {
		if e == id {
			continue
		}
		if _, has := kinds[k]; has {
			panic(fmt.Sprintf("engine: singleton component %s already live on entity %d",
				core.KindName(k), e))
		}
	}
}

// Alive reports whether the entity is live.
func (w *World) Alive(id core.Entity) bool {
	_, ok := w.components[id]
	return ok
}

// Has reports whether the entity is live and holds the given component kind.
func (w *World) Has(id core.Entity, k core.Kind) bool {
	kinds, ok := w.components[id]
	if !ok {
		return false
	}
	_, ok = kinds[k]
	return ok
}

// Component returns the entity's component of the given kind. Requesting a
// component that is not present is a programmer error and panics; use
// TryComponent when absence is an expected condition.
func (w *World) Component(id core.Entity, k core.Kind) core.Component {
	c, ok := w.TryComponent(id, k)
	if !ok {
		panic(fmt.Sprintf("engine: entity %d has no %s component", id, core.KindName(k)))
	}
	return c
}

// TryComponent returns the entity's component of the given kind, or false if
// the entity is dead or does not hold the kind.
func (w *World) TryComponent(id core.Entity, k core.Kind) (core.Component, bool) {
	kinds, ok := w.components[id]
	if !ok {
		return nil, false
	}
	c, ok := kinds[k]
	return c, ok
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.order)
}

// Entities returns the live entities in registry (creation) order.
func (w *World) Entities() []core.Entity {
	out := make([]core.Entity, len(w.order))
	copy(out, w.order)
	return out
}

// componentKind derives the kind tag for a component value, enforcing the
// pointer contract.
func componentKind(c core.Component) core.Kind {
	t := reflect.TypeOf(c)
	if t == nil || t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("engine: components must be pointers, got %T", c))
	}
	return t
}

// GetComponent is the typed counterpart of World.TryComponent.
func GetComponent[T any](w *World, id core.Entity) (*T, bool) {
	c, ok := w.TryComponent(id, core.KindOf[T]())
	if !ok {
		return nil, false
	}
	return c.(*T), true
}

// MustComponent is the typed counterpart of World.Component.
func MustComponent[T any](w *World, id core.Entity) *T {
	return w.Component(id, core.KindOf[T]()).(*T)
}
