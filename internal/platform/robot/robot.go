// Package robot provides the robotgo-backed input injection backend.
// Importing it (blank import from main) registers the backend with
// platform.NewProviderFunc.
package robot

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/replaykit/replay-cli/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{Inputter: &inputter{}}, nil
	}
}

// inputter implements platform.Inputter on top of robotgo.
type inputter struct{}

// buttonName maps a MouseButton to robotgo's button token.
// robotgo calls the middle button "center".
func buttonName(b platform.MouseButton) string {
	switch b {
	case platform.MouseRight:
		return "right"
	case platform.MouseMiddle:
		return "center"
	default:
		return "left"
	}
}

func (in *inputter) MoveCursor(x, y int) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("coordinates (%d,%d) out of range", x, y)
	}
	robotgo.Move(x, y)
	return nil
}

func (in *inputter) Click(button platform.MouseButton, count int) error {
	if count <= 0 {
		count = 1
	}
	robotgo.Click(buttonName(button), count > 1)
	return nil
}

func (in *inputter) Hold(button platform.MouseButton) error {
	if err := robotgo.Toggle(buttonName(button), "down"); err != nil {
		return fmt.Errorf("hold %s: %w", button, err)
	}
	return nil
}

func (in *inputter) Release(button platform.MouseButton) error {
	if err := robotgo.Toggle(buttonName(button), "up"); err != nil {
		return fmt.Errorf("release %s: %w", button, err)
	}
	return nil
}

func (in *inputter) KeyCombo(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("empty key combination")
	}
	// robotgo takes the key first and modifiers after it.
	key := keys[len(keys)-1]
	mods := make([]interface{}, 0, len(keys)-1)
	for _, m := range keys[:len(keys)-1] {
		mods = append(mods, m)
	}
	if err := robotgo.KeyTap(key, mods...); err != nil {
		return fmt.Errorf("key combo %v: %w", keys, err)
	}
	return nil
}

func (in *inputter) TypeText(text string) error {
	robotgo.TypeStr(text)
	return nil
}
