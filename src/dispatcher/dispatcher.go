// Package dispatcher chooses the next target floor. Every function here is pure.
package dispatcher

import (
	"liftsim/src/types"
)

// SelectCall returns the floor with a pending call closest to floor, or types.NoTarget.
// On equal distance the lowest floor wins.
func SelectCall(floor int, calls []bool) (int, error) {
	if err := types.CheckFloor(floor, len(calls)); err != nil {
		return types.NoTarget, err
	}
	target := types.NoTarget
	best := len(calls) + 1
	for f, called := range calls {
		if called && abs(floor-f) < best {
			target = f
			best = abs(floor - f)
		}
	}
	return target, nil
}

// SelectNext decides the next move when the doors are about to close.
//   - Empty cabin: nearest call, or Idle.
//   - Occupied cabin: keep going in the remembered direction while orders remain that way,
//     otherwise reverse.
func SelectNext(floor int, memory types.Direction, cabinEmpty bool, calls []bool, orders []bool) (Decision, error) {
	if err := types.CheckFloor(floor, len(calls)); err != nil {
		return idle(memory), err
	}
	if err := types.CheckFloor(floor, len(orders)); err != nil {
		return idle(memory), err
	}

	if cabinEmpty {
		target := types.NoTarget
		best := len(calls) + 1
		for f, called := range calls {
			if called && best > abs(floor-f) {
				target = f
				best = abs(floor - f)
			}
		}
		if target == types.NoTarget {
			return idle(memory), nil
		}
		return Decision{Target: target, Memory: memory, Phase: PhaseToward(floor, target)}, nil
	}

	switch memory {
	case types.DirDown:
		if f, ok := orderBelow(floor, orders); ok {
			return Decision{Target: f, Memory: types.DirDown, Phase: types.MovingDown}, nil
		}
		if f, ok := orderAbove(floor, orders); ok {
			return Decision{Target: f, Memory: types.DirUp, Phase: types.MovingUp}, nil
		}
	default:
		if f, ok := orderAbove(floor, orders); ok {
			return Decision{Target: f, Memory: types.DirUp, Phase: types.MovingUp}, nil
		}
		if f, ok := orderBelow(floor, orders); ok {
			return Decision{Target: f, Memory: types.DirDown, Phase: types.MovingDown}, nil
		}
	}

	// Only a passenger who boarded for this very floor is left.
	if orders[floor] {
		return Decision{Target: floor, Memory: memory, Phase: types.DoorOpening}, nil
	}
	return idle(memory), nil
}

// PhaseToward is the phase that brings the cabin from floor to target.
func PhaseToward(floor int, target int) types.Phase {
	switch {
	case target > floor:
		return types.MovingUp
	case target < floor:
		return types.MovingDown
	default:
		return types.DoorOpening
	}
}

func orderAbove(floor int, orders []bool) (int, bool) {
	for f := floor + 1; f < len(orders); f++ {
		if orders[f] {
			return f, true
		}
	}
	return types.NoTarget, false
}

func orderBelow(floor int, orders []bool) (int, bool) {
	for f := floor - 1; f >= 0; f-- {
		if orders[f] {
			return f, true
		}
	}
	return types.NoTarget, false
}

func idle(memory types.Direction) Decision {
	return Decision{Target: types.NoTarget, Memory: memory, Phase: types.Idle}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
