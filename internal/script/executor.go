package script

import (
	"context"
	"fmt"
	"time"

	"github.com/replaykit/replay-cli/internal/platform"
)

// InjectionError reports a failed injection call during replay. Execution
// halts at the failing action; actions already injected are not undone.
type InjectionError struct {
	Index  int // 0-based position in the script
	Action Action
	Cause  error
}

func (e *InjectionError) Error() string {
	return fmt.Sprintf("action %d (%s, line %d): %v", e.Index+1, e.Action.Kind, e.Action.Line, e.Cause)
}

func (e *InjectionError) Unwrap() error { return e.Cause }

// Runner replays scripts against an Inputter, strictly sequentially: each
// action's delay is a blocking pause, and its injection call completes
// before the next action's delay begins.
type Runner struct {
	in    platform.Inputter
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner returns a Runner that injects through in.
func NewRunner(in platform.Inputter) *Runner {
	return &Runner{in: in, sleep: sleepCtx}
}

// Run replays s in order. For each action it waits the action's delay, then
// dispatches the injection call. The first failure is returned as an
// *InjectionError and no further actions run. Cancelling ctx aborts between
// actions (and during a delay); it never interrupts an in-flight injection
// call.
func (r *Runner) Run(ctx context.Context, s *Script) error {
	for i, a := range s.Actions {
		if err := r.sleep(ctx, a.Delay); err != nil {
			return err
		}
		if err := r.dispatch(a); err != nil {
			return &InjectionError{Index: i, Action: a, Cause: err}
		}
	}
	return nil
}

// dispatch maps an action to its injection call. The switch is exhaustive
// over Kind.
func (r *Runner) dispatch(a Action) error {
	switch a.Kind {
	case KindMove:
		return r.in.MoveCursor(a.X, a.Y)
	case KindClick:
		return r.in.Click(a.Button, 1)
	case KindHold:
		return r.in.Hold(a.Button)
	case KindRelease:
		return r.in.Release(a.Button)
	case KindHotkey:
		return r.in.KeyCombo(a.Keys)
	case KindWrite:
		return r.in.TypeText(a.Text)
	default:
		return fmt.Errorf("unknown action kind %v", a.Kind)
	}
}

// sleepCtx blocks for d or until ctx is cancelled. A zero delay still
// observes an already-cancelled ctx.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
