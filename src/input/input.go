package input

import (
	"context"
	"log/slog"

	"liftsim/src/types"

	"github.com/eiannone/keyboard"
)

type EventKind int

const (
	None EventKind = iota
	Command
	TogglePause
	Quit
)

type Event struct {
	Kind    EventKind
	Command types.Command
}

// Parser turns key presses into events. Call, order and spawn take a floor digit as the
// next key; any other key cancels the pending action.
type Parser struct {
	pending *types.Action
}

func (p *Parser) Feed(r rune, key keyboard.Key) Event {
	switch key {
	case keyboard.KeyCtrlC, keyboard.KeyEsc:
		p.pending = nil
		return Event{Kind: Quit}
	case keyboard.KeySpace:
		p.pending = nil
		return Event{Kind: TogglePause}
	}

	if p.pending != nil {
		action := *p.pending
		p.pending = nil
		if r >= '0' && r <= '9' {
			return Event{Kind: Command, Command: types.Command{Action: action, Floor: int(r - '0')}}
		}
		slog.Debug("Pending action cancelled", "action", action, "key", string(r))
		return Event{}
	}

	var action types.Action
	switch r {
	case 'q':
		return Event{Kind: Quit}
	case 'r':
		return Event{Kind: Command, Command: types.Command{Action: types.ActSpawnRandom}}
	case 'c':
		action = types.ActCall
	case 'o':
		action = types.ActOrder
	case 'p':
		action = types.ActSpawn
	default:
		return Event{}
	}
	p.pending = &action
	return Event{}
}

// Poll reads the console until ctx is done or a quit key is pressed. Commands go to
// cmdCh, pause toggles to pauseCh. Poll calls quit before returning on a quit key.
func Poll(ctx context.Context, cmdCh chan<- types.Command, pauseCh chan<- struct{}, quit func()) error {
	keysCh, err := keyboard.GetKeys(10)
	if err != nil {
		return err
	}
	defer keyboard.Close()

	var parser Parser
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-keysCh:
			if ev.Err != nil {
				return ev.Err
			}
			out := parser.Feed(ev.Rune, ev.Key)
			switch out.Kind {
			case Command:
				select {
				case cmdCh <- out.Command:
				case <-ctx.Done():
					return nil
				}
			case TogglePause:
				select {
				case pauseCh <- struct{}{}:
				case <-ctx.Done():
					return nil
				}
			case Quit:
				slog.Info("Quit requested from keyboard")
				quit()
				return nil
			}
		}
	}
}
