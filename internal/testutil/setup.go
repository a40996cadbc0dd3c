package testutil

import (
	"github.com/Konoa-1025/Cresta-Open-Data/internal/spinner"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/ui"
)

// SetupTest initializes test environment (disable spinners and colors so
// output assertions see plain text)
func SetupTest() {
	spinner.Enabled = false
	ui.SetNoColor(true)
}

// TeardownTest cleans up after tests
func TeardownTest() {
	spinner.Enabled = true
}
