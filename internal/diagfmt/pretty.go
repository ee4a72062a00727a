package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"

	"clow/internal/diag"
)

var (
	headerColor  = color.New(color.FgRed, color.Bold)
	messageColor = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty writes each error in the contract format, one per line block.
// With opts.Color the header and message are colorized; with opts.Caret a
// pointer line is added under the error column. Neither option changes the
// contract bytes themselves.
func Pretty(w io.Writer, errs []diag.ParseError, opts PrettyOpts) error {
	for _, e := range errs {
		line := e.Ctx.Line(e.Loc)
		header := fmt.Sprintf("Error on %s:%d:%d>", e.Ctx.Name, e.Loc.Line, e.Loc.Col)
		msg := e.Code.Message()
		if opts.Color {
			header = headerColor.Sprint(header)
			msg = messageColor.Sprint(msg)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n  %s\n", header, msg, line); err != nil {
			return err
		}
		if opts.Caret {
			caret := "^"
			if opts.Color {
				caret = caretColor.Sprint(caret)
			}
			if _, err := fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", caretPad(line, e.Loc.Col)), caret); err != nil {
				return err
			}
		}
	}
	return nil
}

// caretPad returns the display width of the line prefix before col, so the
// caret lands under the right screen cell even with wide or combining
// characters.
func caretPad(line string, col uint32) int {
	if col <= 1 {
		return 0
	}
	prefixLen, err := safecast.Conv[int](col - 1)
	if err != nil {
		return 0
	}
	if prefixLen > len(line) {
		prefixLen = len(line)
	}
	return runewidth.StringWidth(norm.NFC.String(line[:prefixLen]))
}
