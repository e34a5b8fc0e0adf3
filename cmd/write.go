package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
)

var writeCmd = &cobra.Command{
	Use:   "write <text>...",
	Short: "Type literal text",
	Long:  "Type a literal string into whatever currently has focus. Multiple arguments are joined with spaces.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	inputter, err := inputterFromProvider()
	if err != nil {
		return err
	}
	if err := inputter.TypeText(text); err != nil {
		return err
	}
	return output.Print(InjectResult{OK: true, Action: "write", Text: text})
}
