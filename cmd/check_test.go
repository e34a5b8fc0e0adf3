package cmd

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestCheckCommand_ValidScript(t *testing.T) {
	path := writeScript(t, "# demo\nmove 0 10 20\nhotkey 100 ctrl+c\n")

	out, err := execCLI(t, "check", path)
	if err != nil {
		t.Fatal(err)
	}

	var result CheckResult
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if !result.OK || len(result.Scripts) != 1 {
		t.Fatalf("result: %+v", result)
	}
	if len(result.Scripts[0].Actions) != 2 {
		t.Errorf("actions: %+v", result.Scripts[0].Actions)
	}
}

func TestCheckCommand_ReportsErrorLine(t *testing.T) {
	path := writeScript(t, "move 0 1 2\nclick -10 left\n")

	out, err := execCLI(t, "check", path)
	if err == nil {
		t.Fatal("expected parse error")
	}

	var result CheckResult
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if result.OK {
		t.Error("result should not be ok")
	}
	if result.Line != 2 {
		t.Errorf("line: got %d, want 2", result.Line)
	}
}

func TestListCommand(t *testing.T) {
	path := writeScript(t, "--- a\nmove 0 1 2\n---\n--- b\nclick 0 left\nwrite 0 hi\n")

	out, err := execCLI(t, "list", path)
	if err != nil {
		t.Fatal(err)
	}

	var entries []scriptEntry
	if err := yaml.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: %+v", entries)
	}
	if entries[0].Name != "a" || entries[0].Actions != 1 {
		t.Errorf("entry 0: %+v", entries[0])
	}
	if entries[1].Name != "b" || entries[1].Actions != 2 {
		t.Errorf("entry 1: %+v", entries[1])
	}
}
