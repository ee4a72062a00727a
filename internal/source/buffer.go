package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// Flags encodes metadata about how a buffer was loaded.
type Flags uint8

const (
	// FlagVirtual marks a buffer added from memory (test, stdin, artifact).
	FlagVirtual Flags = 1 << iota
	// FlagHadBOM marks a buffer that carried a UTF-8 BOM before loading.
	FlagHadBOM
	// FlagNormalizedCRLF marks a buffer whose \r\n terminators were rewritten.
	FlagNormalizedCRLF
)

// Buffer is a loaded source text plus the index needed to resolve byte
// offsets into Locs. The text is immutable once loaded; every Loc, Token and
// Expr derived from it stays valid for the buffer's whole lifetime.
type Buffer struct {
	Name    string
	Text    string
	lineIdx []uint32 // offsets of each '\n'
	Flags   Flags
}

// New builds a virtual buffer from in-memory text. No normalization is
// applied; the caller owns the exact bytes.
func New(name, text string) *Buffer {
	return &Buffer{
		Name:    name,
		Text:    text,
		lineIdx: buildLineIndex(text),
		Flags:   FlagVirtual,
	}
}

// Load reads a file from disk, strips a UTF-8 BOM and normalizes CRLF to LF.
func Load(path string) (*Buffer, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, hadBOM := removeBOM(raw)
	raw, hadCRLF := normalizeCRLF(raw)

	var flags Flags
	if hadBOM {
		flags |= FlagHadBOM
	}
	if hadCRLF {
		flags |= FlagNormalizedCRLF
	}
	text := string(raw)
	return &Buffer{
		Name:    path,
		Text:    text,
		lineIdx: buildLineIndex(text),
		Flags:   flags,
	}, nil
}

// Context returns the diagnostic view over this buffer.
func (b *Buffer) Context() Context {
	return Context{Name: b.Name, Text: b.Text}
}

// LocAt resolves a byte offset into a Loc. Offsets past the end of the text
// resolve onto the final line. The column counts bytes, as the rest of the
// front end does.
func (b *Buffer) LocAt(off uint32) Loc {
	lenText, err := safecast.Conv[uint32](len(b.Text))
	if err != nil {
		panic(fmt.Errorf("buffer length overflow: %w", err))
	}
	if off > lenText {
		off = lenText
	}

	// бинпоиск: наибольший lineIdx[i] < off
	lo, hi := 0, len(b.lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if b.lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // 0-based индекс последнего '\n' перед off

	var lineStart uint32
	if line >= 0 {
		lineStart = b.lineIdx[line] + 1
	}
	return Loc{
		Line:      uint32(line + 2), // line == -1 → первая строка
		Col:       off - lineStart + 1,
		LineStart: lineStart,
	}
}

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
func normalizeCRLF(content []byte) ([]byte, bool) {
	n := 0
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			n++
		}
	}
	if n == 0 {
		return content, false
	}

	out := make([]byte, 0, len(content)-n)
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(text string) []uint32 {
	var out []uint32
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}
