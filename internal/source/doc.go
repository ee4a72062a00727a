// Package source defines source locations and buffers for the clow front end.
// Invariants:
//   - Loc.LineStart is the byte offset of the first character of Loc.Line in
//     the buffer the location was produced from.
//   - Context.Text is a borrowed view of the full source; it is never copied.
//   - Every token and AST node derived from a buffer must not outlive it.
//     Go string slicing shares the backing array, so the discipline is purely
//     one of lifetime, not of copying.
package source
