package cmd

import (
	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
	"github.com/replaykit/replay-cli/internal/platform"
)

var keyCmd = &cobra.Command{
	Use:   "key <combo>",
	Short: "Press a key combination",
	Long:  "Press and release a key combination, e.g. \"ctrl+c\", \"ctrl+shift+t\", \"enter\".",
	Args:  cobra.ExactArgs(1),
	RunE:  runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	keys, err := platform.ParseKeyCombo(args[0])
	if err != nil {
		return err
	}

	inputter, err := inputterFromProvider()
	if err != nil {
		return err
	}
	if err := inputter.KeyCombo(keys); err != nil {
		return err
	}
	return output.Print(InjectResult{OK: true, Action: "key", Key: args[0]})
}
