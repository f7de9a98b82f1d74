package core

// Entity is an opaque identifier grouping a set of components.
// Ids are allocated from a monotonic counter and never reused, so a stale
// reference to a destroyed entity can never alias a newer one.
type Entity uint64

// NoEntity is the zero value, never allocated to a live entity.
const NoEntity Entity = 0
