package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"athena/internal/diag"
	"athena/internal/source"
)

var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleCode    = lipgloss.NewStyle().Faint(true)
	styleCaret   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret underline. The caret column is
// computed with rune widths so that wide characters stay aligned.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityStyle(d.Severity).Render(sev)
		code = styleCode.Render(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, start.Line, start.Col, sev, code, d.Message)

	writeSourceLine(w, file, start, d.Primary, opts)

	for _, n := range d.Notes {
		nStart, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, nStart.Line, nStart.Col, n.Msg)
	}
}

func writeSourceLine(w io.Writer, file *source.File, start source.LineCol, sp source.Span, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" && start.Line != 1 {
		return
	}
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, line)

	// Pad the caret with the display width of everything left of the span.
	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "        "))
	underline := 1
	if sp.Len() > 1 {
		underline = int(sp.Len())
		if start.Col-1+uint32(underline) > uint32(len(line)) { //nolint:gosec // span bounded by line
			underline = len(line) - int(start.Col-1)
			if underline < 1 {
				underline = 1
			}
		}
	}

	caret := "^" + strings.Repeat("~", underline-1)
	if opts.Color {
		caret = styleCaret.Render(caret)
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", pad), caret)
}

func severityStyle(s diag.Severity) lipgloss.Style {
	switch s {
	case diag.SevError:
		return styleError
	case diag.SevWarning:
		return styleWarning
	default:
		return styleInfo
	}
}
