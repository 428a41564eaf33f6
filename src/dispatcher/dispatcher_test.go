package dispatcher

import (
	"errors"
	"testing"

	"liftsim/src/types"
)

func signals(height int, floors ...int) []bool {
	s := make([]bool, height)
	for _, f := range floors {
		s[f] = true
	}
	return s
}

func TestSelectCall_Nearest(t *testing.T) {
	target, err := SelectCall(0, signals(10, 3, 7))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if target != 3 {
		t.Errorf("SelectCall() = %d, expected 3", target)
	}
}

func TestSelectCall_TieGoesToLowestFloor(t *testing.T) {
	target, _ := SelectCall(5, signals(10, 2, 8))
	if target != 2 {
		t.Errorf("SelectCall() = %d, expected 2", target)
	}
}

func TestSelectCall_None(t *testing.T) {
	target, err := SelectCall(4, signals(10))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if target != types.NoTarget {
		t.Errorf("SelectCall() = %d, expected NoTarget", target)
	}
}

func TestSelectCall_CurrentFloor(t *testing.T) {
	target, _ := SelectCall(6, signals(10, 6, 5))
	if target != 6 {
		t.Errorf("SelectCall() = %d, expected 6", target)
	}
}

func TestSelectCall_OutOfRange(t *testing.T) {
	if _, err := SelectCall(10, signals(10, 1)); !errors.Is(err, types.ErrOutOfRangeFloor) {
		t.Errorf("Expected ErrOutOfRangeFloor, got %v", err)
	}
}

func TestSelectNext(t *testing.T) {
	tests := []struct {
		name       string
		floor      int
		memory     types.Direction
		cabinEmpty bool
		calls      []int
		orders     []int
		expected   Decision
	}{
		{
			name: "empty cabin goes to nearest call", floor: 4, memory: types.DirUp, cabinEmpty: true,
			calls: []int{1, 6}, orders: []int{9},
			expected: Decision{Target: 6, Memory: types.DirUp, Phase: types.MovingUp},
		},
		{
			name: "empty cabin tie goes low", floor: 5, memory: types.DirUp, cabinEmpty: true,
			calls:    []int{2, 8},
			expected: Decision{Target: 2, Memory: types.DirUp, Phase: types.MovingDown},
		},
		{
			name: "empty cabin call here opens doors", floor: 5, memory: types.DirDown, cabinEmpty: true,
			calls:    []int{5, 6},
			expected: Decision{Target: 5, Memory: types.DirDown, Phase: types.DoorOpening},
		},
		{
			name: "empty cabin without calls rests", floor: 5, memory: types.DirDown, cabinEmpty: true,
			orders:   []int{1},
			expected: Decision{Target: types.NoTarget, Memory: types.DirDown, Phase: types.Idle},
		},
		{
			name: "continue up", floor: 4, memory: types.DirUp,
			orders:   []int{2, 6},
			expected: Decision{Target: 6, Memory: types.DirUp, Phase: types.MovingUp},
		},
		{
			name: "first order above, not the nearest", floor: 4, memory: types.DirUp,
			orders:   []int{3, 7, 9},
			expected: Decision{Target: 7, Memory: types.DirUp, Phase: types.MovingUp},
		},
		{
			name: "reverse to down", floor: 4, memory: types.DirUp,
			orders:   []int{2},
			expected: Decision{Target: 2, Memory: types.DirDown, Phase: types.MovingDown},
		},
		{
			name: "continue down", floor: 4, memory: types.DirDown,
			orders:   []int{2, 6},
			expected: Decision{Target: 2, Memory: types.DirDown, Phase: types.MovingDown},
		},
		{
			name: "reverse to up", floor: 4, memory: types.DirDown,
			orders:   []int{8},
			expected: Decision{Target: 8, Memory: types.DirUp, Phase: types.MovingUp},
		},
		{
			name: "no memory behaves as up", floor: 0, memory: types.DirNone,
			orders:   []int{5},
			expected: Decision{Target: 5, Memory: types.DirUp, Phase: types.MovingUp},
		},
		{
			name: "calls ignored while occupied", floor: 4, memory: types.DirUp,
			calls: []int{5}, orders: []int{1},
			expected: Decision{Target: 1, Memory: types.DirDown, Phase: types.MovingDown},
		},
		{
			name: "order here only", floor: 3, memory: types.DirDown,
			orders:   []int{3},
			expected: Decision{Target: 3, Memory: types.DirDown, Phase: types.DoorOpening},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := SelectNext(tc.floor, tc.memory, tc.cabinEmpty, signals(10, tc.calls...), signals(10, tc.orders...))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d != tc.expected {
				t.Errorf("Decision not as expected.\nExpected: %+v\nWas: %+v", tc.expected, d)
			}
		})
	}
}

func TestSelectNext_OutOfRange(t *testing.T) {
	_, err := SelectNext(-1, types.DirUp, false, signals(10), signals(10))
	if !errors.Is(err, types.ErrOutOfRangeFloor) {
		t.Errorf("Expected ErrOutOfRangeFloor, got %v", err)
	}
}

func TestPhaseToward(t *testing.T) {
	if PhaseToward(2, 5) != types.MovingUp {
		t.Errorf("Expected MovingUp")
	}
	if PhaseToward(5, 2) != types.MovingDown {
		t.Errorf("Expected MovingDown")
	}
	if PhaseToward(3, 3) != types.DoorOpening {
		t.Errorf("Expected DoorOpening")
	}
}
