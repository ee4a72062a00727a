// Package token defines the lexical vocabulary of the clow front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies); the buffer
//     must outlive every token derived from it.
//   - Token.Loc points at the first character of the lexeme.
//   - Keyword recognition is case-sensitive; only the lowercase spellings
//     listed in keywords.go are keywords. Built-in type names (byte, int,
//     long, float, double) are identifiers here; the types package
//     recognizes them, not the lexer.
//   - Tokens are immutable once produced.
package token
