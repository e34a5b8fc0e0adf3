package cmd

import (
	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
	"github.com/replaykit/replay-cli/internal/platform"
)

var holdCmd = &cobra.Command{
	Use:   "hold",
	Short: "Press and hold a mouse button",
	Long:  "Press a mouse button and leave it down. Pair with a later release, or the OS pointer state stays stuck.",
	RunE:  runHold,
}

func init() {
	rootCmd.AddCommand(holdCmd)
	holdCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
}

func runHold(cmd *cobra.Command, args []string) error {
	buttonStr, _ := cmd.Flags().GetString("button")
	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}

	inputter, err := inputterFromProvider()
	if err != nil {
		return err
	}
	if err := inputter.Hold(button); err != nil {
		return err
	}
	return output.Print(InjectResult{OK: true, Action: "hold", Button: button.String()})
}
