package platform

// Inputter synthesizes mouse and keyboard input events at the OS level.
// Calls are synchronous: they return once the event has been handed to the
// OS input subsystem, or an error if injection was rejected.
type Inputter interface {
	// MoveCursor moves the pointer to absolute screen coordinates.
	MoveCursor(x, y int) error

	// Click presses and releases a mouse button at the current pointer
	// position. count > 1 produces a multi-click (e.g. 2 = double-click).
	Click(button MouseButton, count int) error

	// Hold presses a mouse button and leaves it down until Release.
	Hold(button MouseButton) error

	// Release releases a previously held mouse button.
	Release(button MouseButton) error

	// KeyCombo presses a key combination and releases it. The last element
	// is the key, preceding elements are modifiers (e.g. ctrl, shift, t).
	KeyCombo(keys []string) error

	// TypeText types a literal string into whatever currently has focus.
	TypeText(text string) error
}
