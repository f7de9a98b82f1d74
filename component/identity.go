package component

import "github.com/runegrid/runegrid/core"

// Identity gives an entity a stable name for lookups and logs.
type Identity struct {
	Id   string
	Name string
}

// KindIdentity is the query tag for Identity.
var KindIdentity = core.KindOf[Identity]()
