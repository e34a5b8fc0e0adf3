package script

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/replaykit/replay-cli/internal/platform"
)

// commentMarker introduces a comment line.
const commentMarker = "#"

// sectionMarker opens ("--- name") or closes ("---") a named script section.
const sectionMarker = "---"

// ParseError reports a malformed script line. Parsing fails as a whole:
// no actions from a file with a ParseError ever execute.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func parseErrorf(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// Parse parses script text containing a single headerless script.
// Section headers are rejected; use ParseLibrary for multi-script files.
func Parse(text string) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if strings.HasPrefix(line, sectionMarker) {
			return nil, parseErrorf(lineNo, "unexpected script header %q in a single-script source", line)
		}
		a, err := parseAction(line, lineNo)
		if err != nil {
			return nil, err
		}
		s.Actions = append(s.Actions, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return s, nil
}

// ParseLibrary parses a file that may contain multiple named scripts.
// A "--- name" line starts a section (implicitly closing the previous one);
// a bare "---" closes the current section. A file with no headers yields a
// single unnamed script. Actions after a bare "---" but before the next
// header, and duplicate section names, are errors.
func ParseLibrary(text string) (*Library, error) {
	lib := &Library{index: make(map[string]*Script)}
	var current *Script
	sawHeader := false

	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if strings.HasPrefix(line, sectionMarker) {
			name := strings.TrimSpace(line[len(sectionMarker):])
			if name == "" {
				if current == nil {
					return nil, parseErrorf(lineNo, "%q closes a script section, but none is open", sectionMarker)
				}
				current = nil
				continue
			}
			if _, dup := lib.index[name]; dup {
				return nil, parseErrorf(lineNo, "duplicate script name %q", name)
			}
			current = &Script{Name: name}
			lib.Scripts = append(lib.Scripts, current)
			lib.index[name] = current
			sawHeader = true
			continue
		}
		if current == nil {
			if sawHeader {
				return nil, parseErrorf(lineNo, "action outside a script section")
			}
			// Headerless file: everything belongs to one unnamed script.
			current = &Script{}
			lib.Scripts = append(lib.Scripts, current)
			lib.index[""] = current
		}
		a, err := parseAction(line, lineNo)
		if err != nil {
			return nil, err
		}
		current.Actions = append(current.Actions, a)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lib, nil
}

// parseAction parses one non-blank, non-comment line. The line has already
// been trimmed; lineNo is 1-based for error reporting.
func parseAction(line string, lineNo int) (Action, error) {
	keyword, rest := nextToken(line)

	var kind Kind
	switch keyword {
	case "move":
		kind = KindMove
	case "click":
		kind = KindClick
	case "hold":
		kind = KindHold
	case "release":
		kind = KindRelease
	case "hotkey":
		kind = KindHotkey
	case "write":
		kind = KindWrite
	default:
		return Action{}, parseErrorf(lineNo, "unknown action %q (expected move, click, hold, release, hotkey, or write)", keyword)
	}

	delayTok, rest := nextToken(rest)
	if delayTok == "" {
		return Action{}, parseErrorf(lineNo, "%s: missing delay", keyword)
	}
	ms, err := strconv.Atoi(delayTok)
	if err != nil {
		return Action{}, parseErrorf(lineNo, "%s: invalid delay %q", keyword, delayTok)
	}
	if ms < 0 {
		return Action{}, parseErrorf(lineNo, "%s: negative delay %d", keyword, ms)
	}

	a := Action{Kind: kind, Delay: time.Duration(ms) * time.Millisecond, Line: lineNo}

	switch kind {
	case KindMove:
		xTok, afterX := nextToken(rest)
		yTok, afterY := nextToken(afterX)
		if xTok == "" || yTok == "" {
			return Action{}, parseErrorf(lineNo, "move: expected x and y coordinates")
		}
		if afterY != "" {
			return Action{}, parseErrorf(lineNo, "move: unexpected trailing arguments %q", afterY)
		}
		x, err := strconv.Atoi(xTok)
		if err != nil {
			return Action{}, parseErrorf(lineNo, "move: invalid x coordinate %q", xTok)
		}
		y, err := strconv.Atoi(yTok)
		if err != nil {
			return Action{}, parseErrorf(lineNo, "move: invalid y coordinate %q", yTok)
		}
		a.X, a.Y = x, y

	case KindClick, KindHold, KindRelease:
		tok, after := nextToken(rest)
		if tok == "" {
			return Action{}, parseErrorf(lineNo, "%s: missing mouse button", keyword)
		}
		if after != "" {
			return Action{}, parseErrorf(lineNo, "%s: unexpected trailing arguments %q", keyword, after)
		}
		button, err := platform.ParseMouseButton(tok)
		if err != nil {
			return Action{}, parseErrorf(lineNo, "%s: %v", keyword, err)
		}
		a.Button = button

	case KindHotkey:
		tok, after := nextToken(rest)
		if tok == "" {
			return Action{}, parseErrorf(lineNo, "hotkey: missing key combination")
		}
		if after != "" {
			return Action{}, parseErrorf(lineNo, "hotkey: unexpected trailing arguments %q", after)
		}
		keys, err := platform.ParseKeyCombo(tok)
		if err != nil {
			return Action{}, parseErrorf(lineNo, "hotkey: %v", err)
		}
		a.Keys = keys

	case KindWrite:
		// The remainder of the line, verbatim, including internal spaces.
		if rest == "" {
			return Action{}, parseErrorf(lineNo, "write: missing text")
		}
		a.Text = rest
	}

	return a, nil
}

// nextToken splits off the first whitespace-delimited token and returns it
// with the rest of the line, left-trimmed. Interior whitespace of the rest
// is preserved (write actions take it verbatim).
func nextToken(s string) (token, rest string) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", ""
	}
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimLeft(s[i:], " \t")
	}
	return s, ""
}
