package diagfmt

import (
	"encoding/json"
	"io"

	"clow/internal/diag"
)

// ErrorJSON представляет одну ошибку в JSON формате.
type ErrorJSON struct {
	Context   string `json:"context"`
	Line      uint32 `json:"line"`
	Col       uint32 `json:"col"`
	LineStart uint32 `json:"line_start"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	LineText  string `json:"line_text,omitempty"`
}

// WriteJSON выводит ошибки в JSON формате.
func WriteJSON(w io.Writer, errs []diag.ParseError, opts JSONOpts) error {
	out := make([]ErrorJSON, 0, len(errs))
	for _, e := range errs {
		entry := ErrorJSON{
			Context:   e.Ctx.Name,
			Line:      e.Loc.Line,
			Col:       e.Loc.Col,
			LineStart: e.Loc.LineStart,
			Code:      e.Code.String(),
			Message:   e.Code.Message(),
		}
		if opts.IncludeLineText {
			entry.LineText = e.Ctx.Line(e.Loc)
		}
		out = append(out, entry)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
