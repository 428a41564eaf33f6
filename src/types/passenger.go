package types

import "fmt"

// Passenger is one rider travelling from Origin to Destination.
// It is passed by value and never modified after construction.
type Passenger struct {
	Origin      int
	Destination int
}

// NewRandomPassenger draws both floors uniformly, re-drawing the destination until it
// differs from the origin.
func NewRandomPassenger(rng RandSource, height int) Passenger {
	origin := rng.Intn(height)
	return Passenger{Origin: origin, Destination: drawDestination(rng, height, origin)}
}

// NewPassengerFrom fixes the origin and draws a destination different from it.
func NewPassengerFrom(rng RandSource, height int, origin int) (Passenger, error) {
	if err := CheckFloor(origin, height); err != nil {
		return Passenger{}, err
	}
	return Passenger{Origin: origin, Destination: drawDestination(rng, height, origin)}, nil
}

// NewPassenger builds a passenger from explicit floors. Origin and destination may be
// equal here, unlike the random constructors.
func NewPassenger(height int, origin int, destination int) (Passenger, error) {
	if err := CheckFloor(origin, height); err != nil {
		return Passenger{}, err
	}
	if err := CheckFloor(destination, height); err != nil {
		return Passenger{}, err
	}
	return Passenger{Origin: origin, Destination: destination}, nil
}

// CheckFloor returns ErrOutOfRangeFloor unless 0 <= floor < height.
func CheckFloor(floor int, height int) error {
	if floor < 0 || floor >= height {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRangeFloor, floor, height)
	}
	return nil
}

func drawDestination(rng RandSource, height int, origin int) int {
	destination := rng.Intn(height)
	for destination == origin {
		destination = rng.Intn(height)
	}
	return destination
}
