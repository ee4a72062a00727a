// Package diagfmt renders the front end's data shapes for humans and
// machines: parse errors, token streams, and expression trees. The plain
// error rendering delegates to diag.ParseError and stays byte-stable; color
// and caret output are presentation extras layered on top.
package diagfmt

// PrettyOpts configures pretty-printing of parse errors.
type PrettyOpts struct {
	Color bool
	// Caret adds a third line pointing at the error column.
	Caret bool
}

// JSONOpts configures JSON output of parse errors.
type JSONOpts struct {
	IncludeLineText bool // добавить текст строки с ошибкой
}
