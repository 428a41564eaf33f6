package timer

import (
	"context"
	"log/slog"
	"time"
)

type TimerAction int

const (
	Pause TimerAction = iota
	Resume
	Toggle
)

// Clock paces the simulation: it sends on tick every interval until ctx is done. A tick
// is dropped when the receiver is still busy with the previous one.
func Clock(ctx context.Context, interval time.Duration, tick chan<- struct{}, action <-chan TimerAction) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	paused := false
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-action:
			paused = nextPaused(paused, a)
			slog.Debug("Clock action", "action", a, "paused", paused)
		case <-ticker.C:
			if paused {
				continue
			}
			select {
			case tick <- struct{}{}:
			default:
			}
		}
	}
}

func nextPaused(paused bool, a TimerAction) bool {
	switch a {
	case Pause:
		return true
	case Resume:
		return false
	case Toggle:
		return !paused
	}
	return paused
}
