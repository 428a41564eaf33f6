package elev

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"liftsim/src/floors"
	"liftsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// New returns a resting elevator on floor 0 serving the floors of registry.
func New(registry *floors.Registry, capacity int) *Elevator {
	return &Elevator{
		state: State{
			Phase:  types.Idle,
			Memory: types.DirNone,
			Target: types.NoTarget,
		},
		floors:   registry,
		capacity: capacity,
		log:      slog.Default(),
	}
}

func (e *Elevator) Capacity() int {
	return e.capacity
}

// Call lights the call signal on floor.
func (e *Elevator) Call(floor int) error {
	return e.floors.RequestCall(floor)
}

// RequestDestination lights the order signal on floor. It is ignored while the cabin is
// empty.
func (e *Elevator) RequestDestination(floor int) error {
	if err := types.CheckFloor(floor, e.floors.Height()); err != nil {
		return err
	}
	if len(e.state.Cabin) == 0 {
		return nil
	}
	return e.floors.RequestDestination(floor)
}

// Board puts p in the cabin directly, bypassing the floor queues.
func (e *Elevator) Board(p types.Passenger) error {
	if err := types.CheckFloor(p.Destination, e.floors.Height()); err != nil {
		return err
	}
	if len(e.state.Cabin) >= e.capacity {
		return fmt.Errorf("%w: %d of %d aboard", types.ErrCabinFull, len(e.state.Cabin), e.capacity)
	}
	e.state.Cabin = append(e.state.Cabin, p)
	return e.RequestDestination(p.Destination)
}

// Alight removes the first passenger destined for the current floor.
func (e *Elevator) Alight() (types.Passenger, error) {
	if len(e.state.Cabin) == 0 {
		return types.Passenger{}, fmt.Errorf("%w: cabin is empty", types.ErrEmptyQueue)
	}
	p, ok := e.alightHere()
	if !ok {
		return types.Passenger{}, fmt.Errorf("%w: nobody aboard for floor %d", types.ErrEmptyQueue, e.state.Floor)
	}
	return p, nil
}

// Snapshot copies the state for display. It never mutates the elevator.
func (e *Elevator) Snapshot() types.Snapshot {
	cabin := make([]int, len(e.state.Cabin))
	for i, p := range e.state.Cabin {
		cabin[i] = p.Destination
	}
	return types.Snapshot{
		Phase:     e.state.Phase,
		Memory:    e.state.Memory,
		Floor:     e.state.Floor,
		Target:    e.state.Target,
		Progress:  e.state.Progress,
		DoorsOpen: e.state.DoorsOpen,
		Cabin:     cabin,
		Waiting:   e.floors.WaitingCounts(),
		Calls:     e.floors.Calls(),
		Orders:    e.floors.Orders(),
		Delivered: e.state.Delivered,
	}
}

// Clone deep copies the elevator together with its floor registry. The clone does not log.
func (e *Elevator) Clone() *Elevator {
	clone := &Elevator{
		floors:   e.floors.Clone(),
		capacity: e.capacity,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if err := deepcopy.Copy(&clone.state, &e.state); err != nil {
		panic(err)
	}
	return clone
}

func (e *Elevator) alightHere() (types.Passenger, bool) {
	i := slices.IndexFunc(e.state.Cabin, func(p types.Passenger) bool {
		return p.Destination == e.state.Floor
	})
	if i < 0 {
		return types.Passenger{}, false
	}
	p := e.state.Cabin[i]
	e.state.Cabin = slices.Delete(e.state.Cabin, i, i+1)
	e.state.Delivered++
	return p, true
}
