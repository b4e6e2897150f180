package tui

// Key names as reported by tea.KeyMsg.String.
const (
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyUp       = "up"
	keyDown     = "down"
	keyQuit     = "q"
	keyNew      = "n"
	keyReset    = "x"
	keyRetry    = "r"
)
