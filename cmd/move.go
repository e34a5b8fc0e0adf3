package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/replaykit/replay-cli/internal/output"
)

// InjectResult is the output of the single-shot injection commands
// (move, click, hold, release, key, write).
type InjectResult struct {
	OK     bool   `yaml:"ok"               json:"ok"`
	Action string `yaml:"action"           json:"action"`
	X      int    `yaml:"x,omitempty"      json:"x,omitempty"`
	Y      int    `yaml:"y,omitempty"      json:"y,omitempty"`
	Button string `yaml:"button,omitempty" json:"button,omitempty"`
	Key    string `yaml:"key,omitempty"    json:"key,omitempty"`
	Text   string `yaml:"text,omitempty"   json:"text,omitempty"`
}

var moveCmd = &cobra.Command{
	Use:   "move <x> <y>",
	Short: "Move the cursor to absolute screen coordinates",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid x coordinate %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid y coordinate %q", args[1])
	}

	inputter, err := inputterFromProvider()
	if err != nil {
		return err
	}
	if err := inputter.MoveCursor(x, y); err != nil {
		return err
	}
	return output.Print(InjectResult{OK: true, Action: "move", X: x, Y: y})
}
