package types

import "errors"

var (
	ErrOutOfRangeFloor = errors.New("floor out of range")
	ErrCabinFull       = errors.New("cabin full")
	ErrEmptyQueue      = errors.New("empty queue")
)
