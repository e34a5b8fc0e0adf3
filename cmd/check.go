package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
	"github.com/replaykit/replay-cli/internal/script"
)

// CheckResult is the output of a check command.
type CheckResult struct {
	OK      bool          `yaml:"ok"                json:"ok"`
	Action  string        `yaml:"action"            json:"action"`
	Scripts []ScriptCheck `yaml:"scripts,omitempty" json:"scripts,omitempty"`
	Line    int           `yaml:"line,omitempty"    json:"line,omitempty"`
	Error   string        `yaml:"error,omitempty"   json:"error,omitempty"`
}

// ScriptCheck reports one parsed script.
type ScriptCheck struct {
	Name    string       `yaml:"name,omitempty" json:"name,omitempty"`
	Actions []ActionInfo `yaml:"actions"        json:"actions"`
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate an input script without running it",
	Long:  "Parse a script file (or stdin with \"-\") and report its actions, or the first parse error with its line number. Nothing is injected.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := readScriptText(args[0])
	if err != nil {
		return err
	}

	lib, err := script.ParseLibrary(text)
	if err != nil {
		result := CheckResult{Action: "check", Error: err.Error()}
		var pe *script.ParseError
		if errors.As(err, &pe) {
			result.Line = pe.Line
		}
		// Print the result, then return an error for non-zero exit code
		_ = output.Print(result)
		return err
	}

	checks := make([]ScriptCheck, len(lib.Scripts))
	for i, s := range lib.Scripts {
		checks[i] = ScriptCheck{Name: s.Name, Actions: actionInfos(s)}
	}
	return output.Print(CheckResult{
		OK:      true,
		Action:  "check",
		Scripts: checks,
	})
}
