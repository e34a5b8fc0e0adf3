package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
	"github.com/replaykit/replay-cli/internal/script"
)

// RunResult is the output of a run command.
type RunResult struct {
	OK        bool         `yaml:"ok"                  json:"ok"`
	Action    string       `yaml:"action"              json:"action"`
	Script    string       `yaml:"script,omitempty"    json:"script,omitempty"`
	Actions   int          `yaml:"actions"             json:"actions"`
	Completed int          `yaml:"completed"           json:"completed"`
	Elapsed   string       `yaml:"elapsed,omitempty"   json:"elapsed,omitempty"`
	Error     string       `yaml:"error,omitempty"     json:"error,omitempty"`
	DryRun    bool         `yaml:"dry_run,omitempty"   json:"dry_run,omitempty"`
	Parsed    []ActionInfo `yaml:"parsed,omitempty"    json:"parsed,omitempty"`
}

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Replay an input script",
	Long: `Parse a script file (or stdin with "-") and replay its actions in order.

Each non-blank, non-comment line is one action: <keyword> <delay_ms> [args].
The delay in milliseconds is waited before the action fires. Execution is
strictly sequential and stops at the first failed injection. Ctrl-C aborts
between actions.

Example script:
  # open a context menu and close it
  move 0 400 300
  click 200 right
  hotkey 500 escape

Files may hold several named scripts under "--- name" headers; pick one
with --name.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("name", "", "Named script to run from a multi-script file")
	runCmd.Flags().Bool("dry-run", false, "Parse and report the actions without injecting anything")
}

func runRun(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	text, err := readScriptText(args[0])
	if err != nil {
		return err
	}
	lib, err := script.ParseLibrary(text)
	if err != nil {
		return err
	}
	s, err := selectScript(lib, name)
	if err != nil {
		return err
	}

	if dryRun {
		return output.Print(RunResult{
			OK:      true,
			Action:  "run",
			Script:  s.Name,
			Actions: len(s.Actions),
			DryRun:  true,
			Parsed:  actionInfos(s),
		})
	}

	inputter, err := inputterFromProvider()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	runErr := script.NewRunner(inputter).Run(ctx, s)
	elapsed := time.Since(start)

	result := RunResult{
		OK:        runErr == nil,
		Action:    "run",
		Script:    s.Name,
		Actions:   len(s.Actions),
		Completed: len(s.Actions),
		Elapsed:   fmt.Sprintf("%.1fs", elapsed.Seconds()),
	}
	if runErr != nil {
		result.Error = runErr.Error()
		var injErr *script.InjectionError
		if errors.As(runErr, &injErr) {
			result.Completed = injErr.Index
		} else {
			result.Completed = 0
		}
		// Print the result, then return an error for non-zero exit code
		_ = output.Print(result)
		return runErr
	}
	return output.Print(result)
}
