package cmd

import (
	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
	"github.com/replaykit/replay-cli/internal/platform"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Release a held mouse button",
	RunE:  runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)
	releaseCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
}

func runRelease(cmd *cobra.Command, args []string) error {
	buttonStr, _ := cmd.Flags().GetString("button")
	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}

	inputter, err := inputterFromProvider()
	if err != nil {
		return err
	}
	if err := inputter.Release(button); err != nil {
		return err
	}
	return output.Print(InjectResult{OK: true, Action: "release", Button: button.String()})
}
