package core

import "reflect"

// Component is a data-only value attached to exactly one entity.
// Components are always stored and handed out as pointers so systems can
// mutate component data in place without routing through the command queue.
type Component any

// Kind is the runtime tag a component is stored and queried under.
// One kind maps to one concrete component pointer type.
type Kind = reflect.Type

// KindOf returns the kind tag for component type T.
// T is the component struct itself, not a pointer to it.
func KindOf[T any]() Kind {
	return reflect.TypeOf((*T)(nil))
}

// KindOfValue returns the kind tag of a live component value.
// The value must be a component pointer as produced by the store.
func KindOfValue(c Component) Kind {
	return reflect.TypeOf(c)
}

// KindName returns a short human-readable name for a kind, for logs and
// panic messages.
func KindName(k Kind) string {
	if k == nil {
		return "<nil>"
	}
	if k.Kind() == reflect.Ptr {
		return k.Elem().Name()
	}
	return k.Name()
}
