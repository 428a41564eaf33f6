package executor

import (
	"log/slog"

	"liftsim/src/elev"
	"liftsim/src/types"
)

// Call lights the call signal on floor.
func (s *Sim) Call(floor int) error {
	return s.elevator.Call(floor)
}

// RequestDestination lights the order signal on floor. Ignored while the cabin is empty.
func (s *Sim) RequestDestination(floor int) error {
	return s.elevator.RequestDestination(floor)
}

// SpawnPassenger queues a passenger with a random destination on floor and calls the
// elevator there.
func (s *Sim) SpawnPassenger(floor int) (types.Passenger, error) {
	p, err := s.spawner.At(floor)
	if err != nil {
		return types.Passenger{}, err
	}
	return p, s.admit(p)
}

// SpawnRandomPassenger queues a passenger with random origin and destination.
func (s *Sim) SpawnRandomPassenger() types.Passenger {
	p := s.spawner.Random()
	if err := s.admit(p); err != nil {
		// Random floors are always in range.
		panic(err)
	}
	return p
}

func (s *Sim) admit(p types.Passenger) error {
	if err := s.floors.Enqueue(p.Origin, p); err != nil {
		return err
	}
	slog.Debug("Passenger spawned", "origin", p.Origin, "destination", p.Destination)
	return s.floors.RequestCall(p.Origin)
}

func (s *Sim) apply(cmd types.Command) error {
	switch cmd.Action {
	case types.ActCall:
		return s.Call(cmd.Floor)
	case types.ActOrder:
		return s.RequestDestination(cmd.Floor)
	case types.ActSpawn:
		_, err := s.SpawnPassenger(cmd.Floor)
		return err
	case types.ActSpawnRandom:
		s.SpawnRandomPassenger()
		return nil
	}
	slog.Warn("Unknown command", "cmd", elev.FormatCommand(cmd))
	return nil
}
