// Package floors holds the per-floor waiting queues and button signals.
package floors

import (
	"fmt"
	"slices"

	"liftsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Registry is sized once at construction and never resized.
// It is not safe for concurrent use; the driver serialises all access.
type Registry struct {
	t table
}

type table struct {
	Waiting [][]types.Passenger
	Calls   []bool
	Orders  []bool
}

func New(height int) *Registry {
	return &Registry{t: table{
		Waiting: make([][]types.Passenger, height),
		Calls:   make([]bool, height),
		Orders:  make([]bool, height),
	}}
}

func (r *Registry) Height() int {
	return len(r.t.Calls)
}

// Enqueue appends p to the back of the queue on floor.
func (r *Registry) Enqueue(floor int, p types.Passenger) error {
	if err := r.check(floor); err != nil {
		return err
	}
	r.t.Waiting[floor] = append(r.t.Waiting[floor], p)
	return nil
}

func (r *Registry) HasWaiting(floor int) bool {
	if r.check(floor) != nil {
		return false
	}
	return len(r.t.Waiting[floor]) > 0
}

// Pop removes the passenger who has waited longest on floor.
func (r *Registry) Pop(floor int) (types.Passenger, error) {
	if err := r.check(floor); err != nil {
		return types.Passenger{}, err
	}
	queue := r.t.Waiting[floor]
	if len(queue) == 0 {
		return types.Passenger{}, fmt.Errorf("%w: nobody waiting on floor %d", types.ErrEmptyQueue, floor)
	}
	p := queue[0]
	r.t.Waiting[floor] = queue[1:]
	return p, nil
}

func (r *Registry) RequestCall(floor int) error {
	return r.set(r.t.Calls, floor, true)
}

func (r *Registry) ClearCall(floor int) error {
	return r.set(r.t.Calls, floor, false)
}

// RequestDestination lights the order signal unconditionally. Callers only do so while
// the cabin is occupied.
func (r *Registry) RequestDestination(floor int) error {
	return r.set(r.t.Orders, floor, true)
}

func (r *Registry) ClearDestination(floor int) error {
	return r.set(r.t.Orders, floor, false)
}

func (r *Registry) CallAt(floor int) bool {
	return r.check(floor) == nil && r.t.Calls[floor]
}

func (r *Registry) OrderAt(floor int) bool {
	return r.check(floor) == nil && r.t.Orders[floor]
}

// Calls returns a copy of the call signals.
func (r *Registry) Calls() []bool {
	return slices.Clone(r.t.Calls)
}

// Orders returns a copy of the destination signals.
func (r *Registry) Orders() []bool {
	return slices.Clone(r.t.Orders)
}

func (r *Registry) WaitingCounts() []int {
	counts := make([]int, len(r.t.Waiting))
	for floor, queue := range r.t.Waiting {
		counts[floor] = len(queue)
	}
	return counts
}

// Clone returns an independent deep copy.
func (r *Registry) Clone() *Registry {
	clone := new(Registry)
	if err := deepcopy.Copy(&clone.t, &r.t); err != nil {
		panic(err)
	}
	return clone
}

func (r *Registry) set(signals []bool, floor int, value bool) error {
	if err := r.check(floor); err != nil {
		return err
	}
	signals[floor] = value
	return nil
}

func (r *Registry) check(floor int) error {
	return types.CheckFloor(floor, r.Height())
}
