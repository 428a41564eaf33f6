package types

// NoTarget marks that no target floor is selected.
const NoTarget = -1

// Phase is the state of the elevator controller.
type Phase int

const (
	Idle Phase = iota
	MovingUp
	MovingDown
	DoorOpening
	DoorClosing
	Unloading
	Loading
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case MovingUp:
		return "MovingUp"
	case MovingDown:
		return "MovingDown"
	case DoorOpening:
		return "DoorOpening"
	case DoorClosing:
		return "DoorClosing"
	case Unloading:
		return "Unloading"
	case Loading:
		return "Loading"
	}
	return "Unknown"
}

// Direction is the last travel direction remembered by the controller.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	}
	return "None"
}

// Action is the kind of an external command.
type Action int

const (
	ActCall Action = iota
	ActOrder
	ActSpawn
	ActSpawnRandom
)

func (a Action) String() string {
	switch a {
	case ActCall:
		return "Call"
	case ActOrder:
		return "Order"
	case ActSpawn:
		return "Spawn"
	case ActSpawnRandom:
		return "SpawnRandom"
	}
	return "Unknown"
}

// Command is an external request buffered by the driver until the next tick.
// Floor is ignored for ActSpawnRandom.
type Command struct {
	Action Action
	Floor  int
}

// RandSource is the entropy used for passenger generation. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Snapshot is a read-only copy of the simulation state for rendering.
type Snapshot struct {
	Phase     Phase
	Memory    Direction
	Floor     int
	Target    int
	Progress  int
	DoorsOpen bool
	Cabin     []int // destination floor of each passenger, boarding order
	Waiting   []int // queue length per floor
	Calls     []bool
	Orders    []bool
	Delivered int
}

// Frame is what the driver hands to the renderer after each tick.
type Frame struct {
	Time   int
	State  Snapshot
	ETA    map[int]int // ticks until the doors open, per lit call
	Paused bool
}
