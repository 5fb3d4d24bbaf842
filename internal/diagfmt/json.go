package diagfmt

import (
	"encoding/json"
	"io"

	"vhdlsem/internal/diag"
	"vhdlsem/internal/source"
)

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonSpan struct {
	Path  string        `json:"path"`
	Start uint32        `json:"start"`
	End   uint32        `json:"end"`
	Pos   *jsonPosition `json:"pos,omitempty"`
}

type jsonNote struct {
	Span jsonSpan `json:"span"`
	Msg  string   `json:"msg"`
}

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Span     jsonSpan   `json:"span"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

// JSON writes diagnostics as an indented JSON array.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	output := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		out := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Span:     toJSONSpan(fs, d.Primary, opts),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				out.Notes = append(out.Notes, jsonNote{
					Span: toJSONSpan(fs, note.Span, opts),
					Msg:  note.Msg,
				})
			}
		}
		output = append(output, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func toJSONSpan(fs *source.FileSet, span source.Span, opts JSONOpts) jsonSpan {
	out := jsonSpan{
		Path:  displayPath(fs, fs.Get(span.File).Path, opts.PathMode),
		Start: span.Start,
		End:   span.End,
	}
	if opts.IncludePositions {
		start, _ := fs.Resolve(span)
		out.Pos = &jsonPosition{Line: start.Line, Col: start.Col}
	}
	return out
}
