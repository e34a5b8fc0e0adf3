package platform

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ParseMouseButton converts a script or flag token to a MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// String returns the canonical token for the button ("left", "right", "middle").
func (b MouseButton) String() string {
	switch b {
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "left"
	}
}

// ParseKeyCombo splits a "+"-joined key combination like "ctrl+shift+t" into
// its key tokens. Empty tokens (leading/trailing/doubled "+") are an error.
func ParseKeyCombo(s string) ([]string, error) {
	if s == "" {
		return nil, fmt.Errorf("empty key combination")
	}
	parts := strings.Split(s, "+")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("invalid key combination %q", s)
		}
		keys = append(keys, strings.ToLower(p))
	}
	return keys, nil
}
