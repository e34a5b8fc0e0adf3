// Package script implements the line-oriented input replay format: parsing
// script text into an ordered list of timed actions and replaying them
// sequentially against a platform.Inputter.
//
// One action per line: <keyword> <delay> [<args...>]. The delay is a
// non-negative integer in milliseconds, waited before the action fires.
// Keywords: move, click, hold, release, hotkey, write. Lines starting with
// '#' and blank lines are ignored. A file may group actions into named
// scripts with "--- name" header lines; a bare "---" closes the section.
package script

import (
	"fmt"
	"strings"
	"time"

	"github.com/replaykit/replay-cli/internal/platform"
)

// Kind identifies an action variant. The set is closed: the executor
// dispatches with an exhaustive switch, so adding a Kind is a
// compile-checked extension point.
type Kind int

const (
	KindMove Kind = iota
	KindClick
	KindHold
	KindRelease
	KindHotkey
	KindWrite
)

// String returns the script keyword for the kind.
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindClick:
		return "click"
	case KindHold:
		return "hold"
	case KindRelease:
		return "release"
	case KindHotkey:
		return "hotkey"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Action is one unit of scripted input behavior: an injection call plus the
// delay to wait before it fires. Only the fields relevant to Kind are set.
type Action struct {
	Kind  Kind
	Delay time.Duration

	X, Y   int                  // move
	Button platform.MouseButton // click, hold, release
	Keys   []string             // hotkey
	Text   string               // write

	// Line is the 1-based source line the action was parsed from,
	// used to identify the action in errors.
	Line int
}

// String renders the action in canonical script form, parseable by Parse.
func (a Action) String() string {
	ms := a.Delay.Milliseconds()
	switch a.Kind {
	case KindMove:
		return fmt.Sprintf("move %d %d %d", ms, a.X, a.Y)
	case KindClick, KindHold, KindRelease:
		return fmt.Sprintf("%s %d %s", a.Kind, ms, a.Button)
	case KindHotkey:
		return fmt.Sprintf("hotkey %d %s", ms, strings.Join(a.Keys, "+"))
	case KindWrite:
		return fmt.Sprintf("write %d %s", ms, a.Text)
	default:
		return a.Kind.String()
	}
}

// Script is an ordered, immutable list of timed actions, replayed once per
// execution. Order is the replay order.
type Script struct {
	// Name is the "--- name" section header, or "" for a headerless script.
	Name    string
	Actions []Action
}

// String renders the script in canonical text form.
func (s *Script) String() string {
	var b strings.Builder
	if s.Name != "" {
		fmt.Fprintf(&b, "--- %s\n", s.Name)
	}
	for _, a := range s.Actions {
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Library holds the named scripts parsed from one file, in file order.
type Library struct {
	Scripts []*Script
	index   map[string]*Script
}

// Get returns the script with the given name.
func (l *Library) Get(name string) (*Script, bool) {
	s, ok := l.index[name]
	return s, ok
}

// Names returns the script names in file order.
func (l *Library) Names() []string {
	names := make([]string, len(l.Scripts))
	for i, s := range l.Scripts {
		names[i] = s.Name
	}
	return names
}
