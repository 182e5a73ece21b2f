package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// IsTerminal reports whether f is an interactive terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfigureWriter disables colors unless w is a terminal and NO_COLOR is
// unset
func ConfigureWriter(w io.Writer) {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" || !IsTerminal(f) {
		DisableColor()
	}
}

// DisableColor switches lipgloss and pterm to plain text
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableStyling()
}
