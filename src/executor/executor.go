package executor

import (
	"context"
	"log/slog"

	"liftsim/src/elev"
	"liftsim/src/timer"
	"liftsim/src/types"
)

// Run drives sim from tickCh until ctx is done. Commands received between ticks are applied
// before the next tick. A value on pauseCh toggles pause and is passed on to the clock.
// render is called with the initial state, after every tick and on pause changes.
// Run returning means the loop has stopped and sim is no longer touched.
func Run(ctx context.Context,
	sim *Sim,
	cmdCh <-chan types.Command,
	tickCh <-chan struct{},
	pauseCh <-chan struct{},
	clockCh chan<- timer.TimerAction,
	render func(types.Frame),
) {
	paused := false
	frame := sim.Frame()
	render(frame)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Executor stopped", "time", sim.Now(), "delivered", sim.Snapshot().Delivered)
			return

		case cmd := <-cmdCh:
			slog.Debug("Command buffered", "cmd", elev.FormatCommand(cmd))
			sim.Enqueue(cmd)

		case <-pauseCh:
			paused = !paused
			action := timer.Resume
			if paused {
				action = timer.Pause
			}
			select {
			case clockCh <- action:
			case <-ctx.Done():
				return
			}
			slog.Info("Pause toggled", "paused", paused, "time", sim.Now())
			frame.Paused = paused
			render(frame)

		case <-tickCh:
			if paused {
				continue
			}
			sim.Step()
			frame = sim.Frame()
			frame.Paused = paused
			render(frame)
		}
	}
}

// RunHeadless advances sim by ticks steps as fast as possible, or until ctx is done.
func RunHeadless(ctx context.Context, sim *Sim, ticks int) {
	for i := 0; i < ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		sim.Step()
	}
	snap := sim.Snapshot()
	slog.Info("Simulation finished",
		"time", sim.Now(),
		"delivered", snap.Delivered,
		"aboard", len(snap.Cabin),
		"waiting", sum(snap.Waiting),
	)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
