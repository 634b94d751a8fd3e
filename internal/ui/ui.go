// Package ui owns the terminal presentation layer: output-mode
// detection, the lipgloss style palette and the live progress display
// used while a log is being mined.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// OutputModeInteractive renders colors, icons and the live
	// progress display. Requires stdout to be a TTY.
	OutputModeInteractive OutputMode = iota
	// OutputModePlain renders unstyled text for piped output.
	OutputModePlain
	// OutputModeJSON emits machine-readable JSON and nothing else.
	OutputModeJSON
)

// UI carries the detected output mode and the style palette derived
// from it. Commands obtain one instance and pass it down to reporters.
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New detects the output mode for w and builds the matching UI. An
// explicit format of "json" wins over TTY detection; otherwise the
// mode is interactive exactly when w is a terminal.
func New(w, errW io.Writer, format string) *UI {
	mode := OutputModePlain
	switch {
	case format == "json":
		mode = OutputModeJSON
	case isTerminal(w):
		mode = OutputModeInteractive
	}

	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether the progress display may run.
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// IsJSON reports whether output must stay machine-readable.
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}
