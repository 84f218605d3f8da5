package game

type EventPool string

const (
	PoolNormal   EventPool = "normal"
	PoolGrounded EventPool = "grounded"
)

// ActivePool is the event pool the state draws from; grounding is the only
// thing that switches it.
func ActivePool(s PlayerState) EventPool {
	if s.Grounded {
		return PoolGrounded
	}
	return PoolNormal
}

// SelectEvent picks the next event. A grounded player only ever sees the
// grounded event; otherwise the pick is uniform over the catalog events.
func SelectEvent(s PlayerState, catalog Catalog, rng RandomSource) Event {
	if ActivePool(s) == PoolGrounded {
		return catalog.Grounded
	}
	return catalog.Events[rng.IntN(len(catalog.Events))]
}
