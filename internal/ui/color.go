package ui

import (
	"github.com/fatih/color"
)

// Color functions - these respect NoColor setting automatically
var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	dim    = color.New(color.Faint)
)

// Branch returns a branch name in cyan
func Branch(name string) string {
	return cyan.Sprint(name)
}

// Success returns a green success message with checkmark
func Success(msg string) string {
	return green.Sprintf("✓ %s", msg)
}

// Warning returns a yellow warning message with warning sign
func Warning(msg string) string {
	return yellow.Sprintf("⚠ %s", msg)
}

// Error returns a red error message with X
func Error(msg string) string {
	return red.Sprintf("✗ %s", msg)
}

// Dim returns dimmed/gray text
func Dim(s string) string {
	return dim.Sprint(s)
}

// SetNoColor sets whether color output is disabled
func SetNoColor(disabled bool) {
	color.NoColor = disabled
}
