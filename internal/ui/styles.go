package ui

import "fmt"

// ANSI256 color codes for console chrome.
const (
	colorPrompt = 74  // blue
	colorMuted  = 245 // medium gray
)

var noColor bool

// RenderPrompt returns s styled as the shell prompt.
func RenderPrompt(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorPrompt, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
