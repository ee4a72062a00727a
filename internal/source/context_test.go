package source

import (
	"testing"
)

func TestContext_Line(t *testing.T) {
	ctx := NewContext("file.clo", "let x = 1\nbad string\n")

	tests := []struct {
		name string
		loc  Loc
		want string
	}{
		{
			name: "first line",
			loc:  Loc{Line: 1, Col: 1, LineStart: 0},
			want: "let x = 1",
		},
		{
			name: "second line, column inside",
			loc:  Loc{Line: 2, Col: 5, LineStart: 10},
			want: "bad string",
		},
		{
			name: "line start past end of buffer",
			loc:  Loc{Line: 3, Col: 1, LineStart: 21},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ctx.Line(tt.loc); got != tt.want {
				t.Fatalf("Line(%v) = %q, want %q", tt.loc, got, tt.want)
			}
		})
	}
}

func TestContext_Line_NoTrailingTerminator(t *testing.T) {
	// Последняя строка без '\n' возвращается целиком.
	ctx := NewContext("file.clo", "fn main\nreturn 1")
	got := ctx.Line(Loc{Line: 2, Col: 1, LineStart: 8})
	if got != "return 1" {
		t.Fatalf("Line = %q, want %q", got, "return 1")
	}
}

func TestContext_Line_SingleLineBuffer(t *testing.T) {
	ctx := NewContext("mem", "only line")
	if got := ctx.Line(Loc{Line: 1, Col: 3, LineStart: 0}); got != "only line" {
		t.Fatalf("Line = %q, want %q", got, "only line")
	}
}
