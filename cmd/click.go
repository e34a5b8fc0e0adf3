package cmd

import (
	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
	"github.com/replaykit/replay-cli/internal/platform"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click a mouse button at the current cursor position",
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
	clickCmd.Flags().Bool("double", false, "Double-click")
}

func runClick(cmd *cobra.Command, args []string) error {
	buttonStr, _ := cmd.Flags().GetString("button")
	double, _ := cmd.Flags().GetBool("double")

	button, err := platform.ParseMouseButton(buttonStr)
	if err != nil {
		return err
	}
	count := 1
	if double {
		count = 2
	}

	inputter, err := inputterFromProvider()
	if err != nil {
		return err
	}
	if err := inputter.Click(button, count); err != nil {
		return err
	}
	return output.Print(InjectResult{OK: true, Action: "click", Button: button.String()})
}
