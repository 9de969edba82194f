// Package output provides output formatting for Studinest.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/manav03panchal/studinest/internal/model"
)

// Format represents the output format type.
type Format string

const (
	FormatCLI   Format = "cli"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DefaultWidth is used when the writer is not a terminal.
const DefaultWidth = 80

// Formatter handles output formatting.
type Formatter struct {
	Writer    io.Writer
	Format    Format
	ColorMode ColorMode
}

// NewFormatter creates a new formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		Format:    FormatCLI,
		ColorMode: ColorAuto,
	}
}

// IsColorEnabled returns true if color output is enabled.
func (f *Formatter) IsColorEnabled() bool {
	switch f.ColorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if f.Format == FormatPlain {
			return false
		}
		// Auto-detect based on terminal
		if w, ok := f.Writer.(*os.File); ok {
			return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
		}
		return false
	}
}

// Width returns the terminal width of the writer, or DefaultWidth.
func (f *Formatter) Width() int {
	if w, ok := f.Writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(w.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return DefaultWidth
}

// IsJSON reports whether output should be JSON.
func (f *Formatter) IsJSON() bool {
	return f.Format == FormatJSON
}

// Print outputs formatted text.
func (f *Formatter) Print(a ...interface{}) {
	fmt.Fprint(f.Writer, a...)
}

// Println outputs formatted text with newline.
func (f *Formatter) Println(a ...interface{}) {
	fmt.Fprintln(f.Writer, a...)
}

// Printf outputs formatted text.
func (f *Formatter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSON outputs data as JSON.
func (f *Formatter) JSON(v interface{}) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// FormatDate formats a stored date for display. Raw dates print as-is.
func FormatDate(d model.Date) string {
	if !d.Valid() {
		if d.Raw == "" {
			return "-"
		}
		return d.Raw
	}
	return d.Time.Local().Format("Mon, Jan 2 2006")
}

// FormatDateShort formats a stored date as "Jan 2".
func FormatDateShort(d model.Date) string {
	if !d.Valid() {
		return FormatDate(d)
	}
	return d.Time.Local().Format("Jan 2")
}

// FormatClock formats the time of day.
func FormatClock(t time.Time) string {
	return t.Local().Format("15:04")
}

// FormatSlot formats a schedule entry's time range.
func FormatSlot(e model.ScheduleEntry) string {
	return e.Start + " - " + e.End
}
