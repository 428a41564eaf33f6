package executor

import "liftsim/src/types"

// Spawner creates random passengers. Chance is in percent, drawn from [0, 100].
type Spawner struct {
	rng    types.RandSource
	chance int
	height int
}

func NewSpawner(rng types.RandSource, chance int, height int) Spawner {
	return Spawner{rng: rng, chance: chance, height: height}
}

// Maybe returns a new passenger with the configured chance.
func (s Spawner) Maybe() (types.Passenger, bool) {
	if s.rng.Intn(101) >= s.chance {
		return types.Passenger{}, false
	}
	return s.Random(), true
}

func (s Spawner) Random() types.Passenger {
	return types.NewRandomPassenger(s.rng, s.height)
}

func (s Spawner) At(floor int) (types.Passenger, error) {
	return types.NewPassengerFrom(s.rng, s.height, floor)
}
