// State types are kept separate from the handlers so the whole state can be deep copied.
package elev

import (
	"log/slog"

	"liftsim/src/floors"
	"liftsim/src/types"
)

// State is everything the controller owns besides the floor registry.
type State struct {
	Phase     types.Phase
	Memory    types.Direction // last travel direction, set on arrival and on departure decisions
	Floor     int
	Target    int
	Progress  int // ticks spent towards the next floor
	DoorsOpen bool
	Cabin     []types.Passenger
	Delivered int
}

// Elevator is the single cabin controller. The driver owns it and calls Tick once per
// simulated tick; it is not safe for concurrent use.
type Elevator struct {
	state    State
	floors   *floors.Registry
	capacity int
	log      *slog.Logger
}
