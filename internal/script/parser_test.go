package script

import (
	"strings"
	"testing"
	"time"

	"github.com/replaykit/replay-cli/internal/platform"
)

func TestParse_MoveAndClick(t *testing.T) {
	s, err := Parse("move 0 100 200\nclick 500 left\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(s.Actions))
	}

	mv := s.Actions[0]
	if mv.Kind != KindMove || mv.X != 100 || mv.Y != 200 || mv.Delay != 0 {
		t.Errorf("move: got %+v", mv)
	}
	cl := s.Actions[1]
	if cl.Kind != KindClick || cl.Button != platform.MouseLeft {
		t.Errorf("click: got %+v", cl)
	}
	if cl.Delay != 500*time.Millisecond {
		t.Errorf("click delay: got %v, want 500ms", cl.Delay)
	}
}

func TestParse_WriteTakesRestOfLineVerbatim(t *testing.T) {
	s, err := Parse("write 0 Hello World\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(s.Actions))
	}
	a := s.Actions[0]
	if a.Kind != KindWrite {
		t.Errorf("kind: got %v, want write", a.Kind)
	}
	if a.Text != "Hello World" {
		t.Errorf("text: got %q, want %q", a.Text, "Hello World")
	}
}

func TestParse_CommentsAndBlanksProduceNoActions(t *testing.T) {
	text := strings.Join([]string{
		"# this is a comment",
		"",
		"move 0 10 20",
		"   ",
		"# another comment",
		"click 0 right",
		"",
	}, "\n")

	s, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(s.Actions))
	}
	if s.Actions[0].Kind != KindMove || s.Actions[1].Kind != KindClick {
		t.Errorf("action order disturbed by comments: %v, %v", s.Actions[0].Kind, s.Actions[1].Kind)
	}
}

func TestParse_Hotkey(t *testing.T) {
	s, err := Parse("hotkey 250 ctrl+shift+t\n")
	if err != nil {
		t.Fatal(err)
	}
	a := s.Actions[0]
	if a.Kind != KindHotkey {
		t.Fatalf("kind: got %v", a.Kind)
	}
	want := []string{"ctrl", "shift", "t"}
	if len(a.Keys) != len(want) {
		t.Fatalf("keys: got %v, want %v", a.Keys, want)
	}
	for i := range want {
		if a.Keys[i] != want[i] {
			t.Errorf("keys[%d]: got %q, want %q", i, a.Keys[i], want[i])
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
		wantSub  string
	}{
		{"unknown keyword", "move 0 1 2\nfrobnicate 0 left\n", 2, "unknown action"},
		{"negative delay", "click -5 left\n", 1, "negative delay"},
		{"malformed delay", "click abc left\n", 1, "invalid delay"},
		{"missing delay", "click\n", 1, "missing delay"},
		{"missing move args", "move 0 100\n", 1, "expected x and y"},
		{"bad coordinate", "move 0 ten 20\n", 1, "invalid x"},
		{"trailing move args", "move 0 1 2 3\n", 1, "trailing"},
		{"missing button", "hold 0\n", 1, "missing mouse button"},
		{"bad button", "click 0 fourth\n", 1, "unknown mouse button"},
		{"missing text", "write 100\n", 1, "missing text"},
		{"bad combo", "hotkey 0 ctrl++t\n", 1, "invalid key combination"},
		{"error names later line", "# ok\nmove 0 1 2\nclick 0 nope\n", 3, "unknown mouse button"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("expected error, got script with %d actions", len(s.Actions))
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("line: got %d, want %d", pe.Line, tt.wantLine)
			}
			if !strings.Contains(pe.Reason, tt.wantSub) {
				t.Errorf("reason %q does not contain %q", pe.Reason, tt.wantSub)
			}
		})
	}
}

func TestParse_RejectsSectionHeader(t *testing.T) {
	_, err := Parse("--- setup\nmove 0 1 2\n")
	if err == nil {
		t.Fatal("expected error for section header in single-script parse")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	text := strings.Join([]string{
		"move 0 100 200",
		"click 500 left",
		"hold 10 middle",
		"release 10 middle",
		"hotkey 250 ctrl+shift+t",
		"write 1000 Hello World",
	}, "\n") + "\n"

	first, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(first.String())
	if err != nil {
		t.Fatalf("re-parse of serialized script failed: %v", err)
	}
	if len(second.Actions) != len(first.Actions) {
		t.Fatalf("action count: got %d, want %d", len(second.Actions), len(first.Actions))
	}
	for i := range first.Actions {
		a, b := first.Actions[i], second.Actions[i]
		if a.Kind != b.Kind || a.Delay != b.Delay || a.X != b.X || a.Y != b.Y ||
			a.Button != b.Button || a.Text != b.Text || len(a.Keys) != len(b.Keys) {
			t.Errorf("action %d changed across round-trip:\n  %+v\n  %+v", i, a, b)
		}
	}
}

func TestParseLibrary_NamedSections(t *testing.T) {
	text := strings.Join([]string{
		"--- setup",
		"move 0 10 10",
		"click 100 left",
		"---",
		"# second script",
		"--- teardown",
		"hotkey 0 ctrl+w",
	}, "\n")

	lib, err := ParseLibrary(text)
	if err != nil {
		t.Fatal(err)
	}
	names := lib.Names()
	if len(names) != 2 || names[0] != "setup" || names[1] != "teardown" {
		t.Fatalf("names: got %v", names)
	}
	setup, ok := lib.Get("setup")
	if !ok || len(setup.Actions) != 2 {
		t.Fatalf("setup: ok=%v actions=%d", ok, len(setup.Actions))
	}
	teardown, ok := lib.Get("teardown")
	if !ok || len(teardown.Actions) != 1 {
		t.Fatalf("teardown: ok=%v actions=%d", ok, len(teardown.Actions))
	}
}

func TestParseLibrary_HeaderlessFileIsOneUnnamedScript(t *testing.T) {
	lib, err := ParseLibrary("move 0 1 2\nwrite 0 hi\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(lib.Scripts) != 1 {
		t.Fatalf("expected 1 script, got %d", len(lib.Scripts))
	}
	s, ok := lib.Get("")
	if !ok || s.Name != "" || len(s.Actions) != 2 {
		t.Fatalf("unnamed script: ok=%v %+v", ok, s)
	}
}

func TestParseLibrary_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"duplicate name", "--- a\nmove 0 1 2\n--- a\nmove 0 3 4\n"},
		{"action after close", "--- a\nmove 0 1 2\n---\nclick 0 left\n"},
		{"close without open", "---\n"},
		{"bad action inside section", "--- a\nclick 0 sideways\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLibrary(tt.text); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestScript_StringIncludesHeader(t *testing.T) {
	lib, err := ParseLibrary("--- demo\nmove 0 5 5\n")
	if err != nil {
		t.Fatal(err)
	}
	s, _ := lib.Get("demo")
	out := s.String()
	if !strings.HasPrefix(out, "--- demo\n") {
		t.Errorf("serialized named script should start with header, got:\n%s", out)
	}
	if !strings.Contains(out, "move 0 5 5\n") {
		t.Errorf("serialized script missing action line:\n%s", out)
	}
}
