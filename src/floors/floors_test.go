package floors

import (
	"errors"
	"reflect"
	"testing"

	"liftsim/src/types"
)

func TestEnqueuePop_FIFO(t *testing.T) {
	r := New(10)
	first := types.Passenger{Origin: 3, Destination: 7}
	second := types.Passenger{Origin: 3, Destination: 1}

	if err := r.Enqueue(3, first); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := r.Enqueue(3, second); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.HasWaiting(3) {
		t.Fatalf("Expected passengers waiting on floor 3")
	}

	for _, expected := range []types.Passenger{first, second} {
		p, err := r.Pop(3)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if p != expected {
			t.Errorf("Popped passenger not as expected.\nExpected: %+v\nWas: %+v", expected, p)
		}
	}
	if r.HasWaiting(3) {
		t.Errorf("Expected floor 3 to be empty")
	}
}

func TestPop_EmptyQueue(t *testing.T) {
	r := New(10)
	if _, err := r.Pop(2); !errors.Is(err, types.ErrEmptyQueue) {
		t.Errorf("Expected ErrEmptyQueue, got %v", err)
	}
}

func TestOutOfRange(t *testing.T) {
	r := New(10)
	p := types.Passenger{Origin: 0, Destination: 1}
	ops := map[string]func() error{
		"Enqueue":            func() error { return r.Enqueue(10, p) },
		"RequestCall":        func() error { return r.RequestCall(-1) },
		"ClearCall":          func() error { return r.ClearCall(10) },
		"RequestDestination": func() error { return r.RequestDestination(11) },
		"ClearDestination":   func() error { return r.ClearDestination(-3) },
		"Pop":                func() error { _, err := r.Pop(10); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, types.ErrOutOfRangeFloor) {
			t.Errorf("%s: expected ErrOutOfRangeFloor, got %v", name, err)
		}
	}
	if r.HasWaiting(-1) || r.CallAt(10) || r.OrderAt(10) {
		t.Errorf("Out of range queries should report false")
	}
}

func TestRequestCall_Idempotent(t *testing.T) {
	once := New(10)
	twice := New(10)

	once.RequestCall(4)
	twice.RequestCall(4)
	twice.RequestCall(4)

	if !reflect.DeepEqual(once.Calls(), twice.Calls()) {
		t.Errorf("Calling twice differs from once.\nOnce: %+v\nTwice: %+v", once.Calls(), twice.Calls())
	}
	twice.ClearCall(4)
	if twice.CallAt(4) {
		t.Errorf("Expected call on floor 4 to be cleared")
	}
}

func TestSignalsAreCopies(t *testing.T) {
	r := New(4)
	r.RequestDestination(2)

	orders := r.Orders()
	orders[2] = false
	orders[1] = true
	if !r.OrderAt(2) || r.OrderAt(1) {
		t.Errorf("Mutating returned orders changed the registry")
	}

	expected := []bool{false, false, true, false}
	if !reflect.DeepEqual(r.Orders(), expected) {
		t.Errorf("Orders not as expected.\nExpected: %+v\nWas: %+v", expected, r.Orders())
	}
}

func TestWaitingCounts(t *testing.T) {
	r := New(4)
	r.Enqueue(0, types.Passenger{Origin: 0, Destination: 3})
	r.Enqueue(2, types.Passenger{Origin: 2, Destination: 1})
	r.Enqueue(2, types.Passenger{Origin: 2, Destination: 0})

	expected := []int{1, 0, 2, 0}
	if !reflect.DeepEqual(r.WaitingCounts(), expected) {
		t.Errorf("Waiting counts not as expected.\nExpected: %+v\nWas: %+v", expected, r.WaitingCounts())
	}
}

func TestClone_Independent(t *testing.T) {
	r := New(5)
	r.Enqueue(1, types.Passenger{Origin: 1, Destination: 4})
	r.RequestCall(1)

	clone := r.Clone()
	clone.Pop(1)
	clone.ClearCall(1)
	clone.RequestDestination(3)

	if !r.HasWaiting(1) || !r.CallAt(1) || r.OrderAt(3) {
		t.Errorf("Mutating the clone changed the original")
	}
	if clone.Height() != 5 {
		t.Errorf("Clone height = %d, expected 5", clone.Height())
	}
}
