package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode selects when the emitter uses ANSI colours.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
)

// Emitter formats diagnostics for a terminal or a log file.
type Emitter struct {
	w     io.Writer
	color bool
}

// NewEmitter creates an emitter writing to w. In auto mode colour is used
// only when w is a terminal and NO_COLOR is unset.
func NewEmitter(w io.Writer, mode ColorMode) *Emitter {
	return &Emitter{w: w, color: useColor(w, mode)}
}

func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func (e *Emitter) paint(code, s string) string {
	if !e.color {
		return s
	}
	return code + s + ansiReset
}

// Emit writes err for the given file. Errors that are not diagnostics are
// printed as plain errors.
func (e *Emitter) Emit(file string, err error) {
	if err == nil {
		return
	}

	var de *DiagnosticError
	if !errors.As(err, &de) {
		fmt.Fprintf(e.w, "%s: %s %s\n", file, e.paint(ansiBold+ansiRed, "error:"), err)
		return
	}

	var loc strings.Builder
	loc.WriteString(file)
	if de.Token.Line > 0 {
		fmt.Fprintf(&loc, ":%d:%d", de.Token.Line, de.Token.Column)
	}

	header := fmt.Sprintf("error[%s]:", string(de.Code))
	fmt.Fprintf(e.w, "%s: %s %s\n", e.paint(ansiBold, loc.String()), e.paint(ansiBold+ansiRed, header), de.Message)
	if de.Expected != nil {
		fmt.Fprintf(e.w, "  %s %s\n", e.paint(ansiCyan, "expected:"), de.Expected)
	}
	if de.Actual != nil {
		fmt.Fprintf(e.w, "  %s %s\n", e.paint(ansiYellow, "     got:"), de.Actual)
	}
}
