package cmd

import (
	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
	"github.com/replaykit/replay-cli/internal/script"
)

// scriptEntry is the output row for one script in a file.
type scriptEntry struct {
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Actions int    `yaml:"actions"        json:"actions"`
}

var listCmd = &cobra.Command{
	Use:   "list <file>",
	Short: "List the scripts defined in a file",
	Long:  "Parse a script file (or stdin with \"-\") and list its named scripts with their action counts.",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	text, err := readScriptText(args[0])
	if err != nil {
		return err
	}
	lib, err := script.ParseLibrary(text)
	if err != nil {
		return err
	}

	entries := make([]scriptEntry, 0, len(lib.Scripts))
	for _, s := range lib.Scripts {
		entries = append(entries, scriptEntry{Name: s.Name, Actions: len(s.Actions)})
	}
	return output.Print(entries)
}
