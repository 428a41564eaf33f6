package elev

import (
	"errors"
	"fmt"

	"liftsim/src/types"
)

var ErrNotServed = errors.New("call not served within tick limit")

// TicksToServe estimates how many ticks pass before the doors are open on floor, assuming a
// call is placed there now and nobody else shows up. The estimate runs on a deep copy, so
// the elevator itself is left untouched.
func (e *Elevator) TicksToServe(floor int, limit int) (int, error) {
	if err := types.CheckFloor(floor, e.floors.Height()); err != nil {
		return 0, err
	}
	sim := e.Clone()
	sim.floors.RequestCall(floor)

	for ticks := 0; ticks <= limit; ticks++ {
		if sim.state.DoorsOpen && sim.state.Floor == floor {
			return ticks, nil
		}
		sim.Tick()
	}
	return limit, fmt.Errorf("%w: floor %d after %d ticks", ErrNotServed, floor, limit)
}
