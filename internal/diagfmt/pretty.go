// Package diagfmt renders diagnostics and token streams for the CLI, in
// both human-readable and JSON forms.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"vhdlsem/internal/diag"
	"vhdlsem/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order,
// so callers sort the bag first. Every diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline and any
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Severity.String(), d.Code.String(), d.Message, opts)
		if opts.ShowPreview {
			writeUnderline(w, fs, d.Primary)
		}
		if opts.ShowNotes {
			for _, note := range d.Notes {
				writeHeading(w, fs, note.Span, "NOTE", "", note.Msg, opts)
				if opts.ShowPreview {
					writeUnderline(w, fs, note.Span)
				}
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, span source.Span, sev, code, msg string, opts PrettyOpts) {
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	location := fmt.Sprintf("%s:%d:%d",
		displayPath(fs, file.Path, opts.PathMode), start.Line, start.Col)

	sevText := sev
	if opts.Color {
		sevText = severityColor(sev).Sprint(sev)
	}
	if code != "" {
		fmt.Fprintf(w, "%s: %s %s: %s\n", location, sevText, code, msg)
	} else {
		fmt.Fprintf(w, "%s: %s: %s\n", location, sevText, msg)
	}
}

func severityColor(sev string) *color.Color {
	switch sev {
	case "ERROR":
		return color.New(color.FgRed, color.Bold)
	case "WARNING":
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

// writeUnderline prints the first source line of the span with a caret
// marker. Multi-line spans underline to the end of the first line only.
func writeUnderline(w io.Writer, fs *source.FileSet, span source.Span) {
	file := fs.Get(span.File)
	if span.Start >= uint32(len(file.Content)) {
		return
	}
	start, _ := fs.Resolve(span)
	lineStart := span.Start
	for lineStart > 0 && file.Content[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := span.Start
	for lineEnd < uint32(len(file.Content)) && file.Content[lineEnd] != '\n' {
		lineEnd++
	}
	line := string(file.Content[lineStart:lineEnd])
	fmt.Fprintf(w, "  %s\n", line)

	markLen := int(span.Len())
	maxLen := int(lineEnd - span.Start)
	if markLen > maxLen {
		markLen = maxLen
	}
	if markLen < 1 {
		markLen = 1
	}
	pad := strings.Repeat(" ", int(start.Col-1))
	marker := "^" + strings.Repeat("~", markLen-1)
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}
