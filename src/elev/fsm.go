// Contains the tick handlers of the elevator state machine.
package elev

import (
	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/types"
)

// Tick advances the state machine by exactly one transition. Loading and Unloading move at
// most one passenger per tick.
func (e *Elevator) Tick() {
	switch e.state.Phase {
	case types.Idle:
		e.handleIdle()
	case types.MovingUp:
		e.handleMoving(1, types.DirUp)
	case types.MovingDown:
		e.handleMoving(-1, types.DirDown)
	case types.DoorOpening:
		e.handleDoorOpening()
	case types.Unloading:
		e.handleUnloading()
	case types.Loading:
		e.handleLoading()
	case types.DoorClosing:
		e.handleDoorClosing()
	}
}

// Picks the nearest call, if any.
func (e *Elevator) handleIdle() {
	target, err := dispatcher.SelectCall(e.state.Floor, e.floors.Calls())
	if err != nil {
		e.log.Error("Selecting call failed", "floor", e.state.Floor, "err", err)
		return
	}
	e.state.Target = target
	if target == types.NoTarget {
		return
	}
	e.log.Debug("Call selected", "floor", e.state.Floor, "target", target)
	e.setPhase(dispatcher.PhaseToward(e.state.Floor, target))
}

// Counts travel ticks and stops on arrival at a floor that needs service.
func (e *Elevator) handleMoving(step int, dir types.Direction) {
	e.state.Progress++
	if e.state.Progress < config.TicksPerFloor {
		return
	}
	e.state.Progress = 0
	e.state.Floor += step
	e.log.Debug("Floor reached", "floor", e.state.Floor, "direction", dir)

	if e.shouldStopHere() {
		e.state.Memory = dir
		e.setPhase(types.DoorOpening)
	}
}

func (e *Elevator) shouldStopHere() bool {
	floor := e.state.Floor
	return floor == e.state.Target ||
		(e.floors.HasWaiting(floor) && len(e.state.Cabin) < e.capacity) ||
		e.floors.CallAt(floor) ||
		e.floors.OrderAt(floor)
}

// The call signal stays lit until the doors close again.
func (e *Elevator) handleDoorOpening() {
	e.state.DoorsOpen = true
	e.floors.ClearDestination(e.state.Floor)
	if len(e.state.Cabin) == 0 {
		e.setPhase(types.Loading)
	} else {
		e.setPhase(types.Unloading)
	}
}

func (e *Elevator) handleUnloading() {
	if p, ok := e.alightHere(); ok {
		e.log.Debug("Passenger alighted", "floor", e.state.Floor, "origin", p.Origin, "aboard", len(e.state.Cabin))
		return
	}
	e.setPhase(types.Loading)
}

func (e *Elevator) handleLoading() {
	floor := e.state.Floor
	if e.floors.HasWaiting(floor) && len(e.state.Cabin) < e.capacity {
		p, err := e.floors.Pop(floor)
		if err != nil {
			e.log.Error("Boarding failed", "floor", floor, "err", err)
			return
		}
		e.state.Cabin = append(e.state.Cabin, p)
		e.RequestDestination(p.Destination)
		e.log.Debug("Passenger boarded", "floor", floor, "destination", p.Destination, "aboard", len(e.state.Cabin))
		return
	}
	e.setPhase(types.DoorClosing)
}

// Chooses where to go next. Passengers still waiting here (cabin full) keep the call lit.
func (e *Elevator) handleDoorClosing() {
	floor := e.state.Floor
	e.state.DoorsOpen = false
	e.floors.ClearCall(floor)

	decision, err := dispatcher.SelectNext(floor, e.state.Memory, len(e.state.Cabin) == 0, e.floors.Calls(), e.floors.Orders())
	if err != nil {
		e.log.Error("Selecting next destination failed", "floor", floor, "err", err)
	}
	e.state.Target = decision.Target
	e.state.Memory = decision.Memory
	e.setPhase(decision.Phase)

	if e.floors.HasWaiting(floor) {
		e.floors.RequestCall(floor)
	}
}

func (e *Elevator) setPhase(phase types.Phase) {
	if phase == e.state.Phase {
		return
	}
	e.log.Debug("Phase changed",
		"from", e.state.Phase,
		"to", phase,
		"floor", e.state.Floor,
		"target", e.state.Target)
	e.state.Phase = phase
}
