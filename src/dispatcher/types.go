package dispatcher

import "liftsim/src/types"

// Decision is the outcome of choosing where to go after a stop.
type Decision struct {
	Target int
	Memory types.Direction
	Phase  types.Phase
}
