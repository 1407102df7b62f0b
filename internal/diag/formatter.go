package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Formatter renders diagnostics in a Rust-style format with source snippets.
type Formatter struct {
	out         io.Writer
	sourceCache map[string]string // Cache of source files by filename

	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
	noteStyle lipgloss.Style
	gutter    lipgloss.Style
}

// NewFormatter creates a formatter writing to out. When color is false all
// styles degrade to plain text.
func NewFormatter(out io.Writer, color bool) *Formatter {
	f := &Formatter{
		out:         out,
		sourceCache: make(map[string]string),
	}
	if color {
		f.errStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C"))
		f.warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F"))
		f.noteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
		f.gutter = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	}
	return f
}

// LoadSource loads source code for a file (cached).
func (f *Formatter) LoadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// Format renders one diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if d.Span.IsValid() {
		if src, err := f.LoadSource(d.Span.Filename); err == nil && src != "" {
			f.printSnippet(src, d)
		} else {
			fmt.Fprintf(f.out, "  --> %s\n", d.Span)
		}
	}

	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  %s %s\n", f.noteStyle.Render("= note:"), note)
	}
	if d.Help != "" {
		fmt.Fprintf(f.out, "%s %s\n", f.noteStyle.Render("help:"), d.Help)
	}
}

// FormatAll renders every diagnostic in the bag, separated by blank lines.
func (f *Formatter) FormatAll(b *Bag) {
	for i, d := range b.Diagnostics() {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		f.Format(d)
	}
}

// printHeader prints the error header (severity[CODE]: message).
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	style := f.errStyle
	switch d.Severity {
	case SeverityWarning:
		style = f.warnStyle
	case SeverityNote:
		style = f.noteStyle
	}

	head := severity
	if d.Code != "" {
		head = fmt.Sprintf("%s[%s]", severity, d.Code)
	}
	fmt.Fprintf(f.out, "%s: %s\n", style.Render(head), d.Message)
}

// printSnippet prints the source line for the primary span with an
// underline, plus two lines of surrounding context.
func (f *Formatter) printSnippet(src string, d Diagnostic) {
	lines := strings.Split(src, "\n")
	line := d.Span.Line
	if line < 1 || line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span)
		return
	}

	contextStart := line - 2
	if contextStart < 1 {
		contextStart = 1
	}
	contextEnd := line + 2
	if contextEnd > len(lines) {
		contextEnd = len(lines)
	}
	width := len(fmt.Sprintf("%d", contextEnd))

	fmt.Fprintf(f.out, "  %s %s\n", f.gutter.Render("-->"), d.Span)
	fmt.Fprintf(f.out, "   %s %s\n", strings.Repeat(" ", width), f.gutter.Render("|"))

	for n := contextStart; n <= contextEnd; n++ {
		num := f.gutter.Render(fmt.Sprintf(" %*d |", width, n))
		fmt.Fprintf(f.out, "%s %s\n", num, lines[n-1])
		if n == line {
			f.printUnderline(width, lines[n-1], d.Span.Column, d.Span.End-d.Span.Start)
		}
	}

	fmt.Fprintf(f.out, "   %s %s\n", strings.Repeat(" ", width), f.gutter.Render("|"))
}

// printUnderline prints carets under the span columns.
func (f *Formatter) printUnderline(width int, lineContent string, column, length int) {
	if column < 1 {
		return
	}
	if length < 1 {
		length = 1
	}
	pad := column - 1
	if pad > len(lineContent) {
		pad = len(lineContent)
	}
	marks := f.errStyle.Render(strings.Repeat("^", length))
	fmt.Fprintf(f.out, "   %s %s %s%s\n", strings.Repeat(" ", width), f.gutter.Render("|"), strings.Repeat(" ", pad), marks)
}
