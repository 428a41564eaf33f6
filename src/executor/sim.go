package executor

import (
	"errors"
	"log/slog"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/floors"
	"liftsim/src/types"
)

// Sim owns the floor registry and the elevator. External commands are buffered and applied
// right before the next tick.
type Sim struct {
	floors   *floors.Registry
	elevator *elev.Elevator
	spawner  Spawner
	pending  []types.Command
	now      int
}

func NewSim(cfg config.Config, rng types.RandSource) *Sim {
	registry := floors.New(cfg.Floors)
	return &Sim{
		floors:   registry,
		elevator: elev.New(registry, cfg.Capacity),
		spawner:  NewSpawner(rng, cfg.SpawnChance, cfg.Floors),
	}
}

func (s *Sim) Enqueue(cmd types.Command) {
	s.pending = append(s.pending, cmd)
}

// Step applies buffered commands in arrival order, maybe spawns a random passenger, then
// advances the elevator one tick. A failing command is logged and skipped.
func (s *Sim) Step() {
	for _, cmd := range s.pending {
		if err := s.apply(cmd); err != nil {
			slog.Warn("Command failed", "cmd", elev.FormatCommand(cmd), "err", err)
		}
	}
	s.pending = s.pending[:0]

	if p, ok := s.spawner.Maybe(); ok {
		if err := s.admit(p); err != nil {
			panic(err)
		}
	}

	s.elevator.Tick()
	s.now++
}

func (s *Sim) Now() int {
	return s.now
}

func (s *Sim) Snapshot() types.Snapshot {
	return s.elevator.Snapshot()
}

// ETAs estimates the ticks until the doors open for every lit call. Calls that would not
// be served within config.EstimateTickLimit are left out.
func (s *Sim) ETAs() map[int]int {
	etas := make(map[int]int)
	for floor, lit := range s.floors.Calls() {
		if !lit {
			continue
		}
		ticks, err := s.elevator.TicksToServe(floor, config.EstimateTickLimit)
		if errors.Is(err, elev.ErrNotServed) {
			continue
		}
		if err != nil {
			slog.Error("Estimate failed", "floor", floor, "err", err)
			continue
		}
		etas[floor] = ticks
	}
	return etas
}

func (s *Sim) Frame() types.Frame {
	return types.Frame{
		Time:  s.now,
		State: s.Snapshot(),
		ETA:   s.ETAs(),
	}
}
