package diagfmt

import (
	"strings"
	"testing"

	"clow/internal/diag"
	"clow/internal/source"
)

func TestPretty_Plain(t *testing.T) {
	ctx := source.NewContext("file.clo", "let x = 1\nbad string\n")
	errs := []diag.ParseError{
		diag.NewParseError(diag.LexUnterminatedString, ctx,
			source.Loc{Line: 2, Col: 5, LineStart: 10}),
	}

	var b strings.Builder
	if err := Pretty(&b, errs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "Error on file.clo:2:5> Unterminated string literal\n  bad string\n"
	if b.String() != want {
		t.Fatalf("Pretty =\n%q\nwant\n%q", b.String(), want)
	}
}

func TestPretty_Caret(t *testing.T) {
	ctx := source.NewContext("file.clo", "bad string")
	errs := []diag.ParseError{
		diag.NewParseError(diag.LexUnterminatedString, ctx,
			source.Loc{Line: 1, Col: 5, LineStart: 0}),
	}

	var b strings.Builder
	if err := Pretty(&b, errs, PrettyOpts{Caret: true}); err != nil {
		t.Fatal(err)
	}
	want := "Error on file.clo:1:5> Unterminated string literal\n" +
		"  bad string\n" +
		"      ^\n"
	if b.String() != want {
		t.Fatalf("Pretty =\n%q\nwant\n%q", b.String(), want)
	}
}

func TestCaretPad_WideRunes(t *testing.T) {
	// Колонки считаются в байтах; ширина каретки — в экранных клетках.
	line := "日x"
	if got := caretPad(line, 4); got != 2 {
		t.Fatalf("caretPad(%q, 4) = %d, want 2", line, got)
	}
	if got := caretPad(line, 1); got != 0 {
		t.Fatalf("caretPad(%q, 1) = %d, want 0", line, got)
	}
	if got := caretPad("ab", 100); got != 2 {
		t.Fatalf("caretPad clamp = %d, want 2", got)
	}
}

func TestWriteJSON(t *testing.T) {
	ctx := source.NewContext("file.clo", "let x = 1\nbad string\n")
	errs := []diag.ParseError{
		diag.NewParseError(diag.LexUnterminatedString, ctx,
			source.Loc{Line: 2, Col: 5, LineStart: 10}),
	}

	var b strings.Builder
	if err := WriteJSON(&b, errs, JSONOpts{IncludeLineText: true}); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, fragment := range []string{
		`"context": "file.clo"`,
		`"line": 2`,
		`"col": 5`,
		`"line_start": 10`,
		`"code": "LEX1001"`,
		`"message": "Unterminated string literal"`,
		`"line_text": "bad string"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("JSON output missing %q:\n%s", fragment, out)
		}
	}
}
