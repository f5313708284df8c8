// Package screen renders view-model state as terminal text. Renderers only read
// state; they never call view-models.
package screen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

// MaxCellWidth bounds a table cell, in terminal columns.
const MaxCellWidth = 40

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiDim    = "\x1b[2m"
)

type Renderer struct {
	w     io.Writer
	color bool
}

// New returns a Renderer writing to w. Colour is used only when w is a terminal
// and NO_COLOR is unset.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, color: isTerminal(w) && os.Getenv("NO_COLOR") == ""}
}

// NewPlain returns a Renderer that never emits colour.
func NewPlain(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ====================================================================================
// Building blocks
// ====================================================================================

func (r *Renderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) title(s string) {
	r.printf("%s\n", r.paint(ansiBold, s))
}

func (r *Renderer) loading(what string) {
	r.printf("%s\n", r.paint(ansiDim, "… loading "+what))
}

// errorCard is the inline error with the command that retries it.
func (r *Renderer) errorCard(msg, retry string) {
	r.printf("%s %s\n", r.paint(ansiRed, "✗"), msg)
	if retry != "" {
		r.printf("  %s\n", r.paint(ansiDim, "retry: "+retry))
	}
}

func (r *Renderer) notice(msg string) {
	if msg != "" {
		r.printf("%s %s\n", r.paint(ansiGreen, "✓"), msg)
	}
}

func (r *Renderer) field(label, value string) {
	r.printf("  %s %s\n", r.paint(ansiDim, runewidth.FillRight(label+":", 14)), value)
}

// table writes rows aligned on display width, so accents and emoji line up.
func (r *Renderer) table(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(headers))
		for j := range headers {
			if j < len(row) {
				cells[i][j] = Truncate(row[j], MaxCellWidth)
			}
			if w := runewidth.StringWidth(cells[i][j]); w > widths[j] {
				widths[j] = w
			}
		}
	}

	line := func(values []string, style string) {
		parts := make([]string, len(values))
		for j, v := range values {
			if j == len(values)-1 {
				parts[j] = v
				continue
			}
			parts[j] = runewidth.FillRight(v, widths[j])
		}
		out := strings.TrimRight(strings.Join(parts, "  "), " ")
		if style != "" {
			out = r.paint(style, out)
		}
		r.printf("%s\n", out)
	}

	line(headers, ansiBold)
	for _, row := range cells {
		line(row, "")
	}
}

// Truncate shortens s to at most width terminal columns, marking the cut with "…".
func Truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func deref(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func percent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
