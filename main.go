package main

import (
	"github.com/replaykit/replay-cli/cmd"

	// Register the robotgo injection backend.
	_ "github.com/replaykit/replay-cli/internal/platform/robot"
)

func main() {
	cmd.Execute()
}
