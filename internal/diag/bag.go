package diag

import (
	"sort"
)

// Bag accumulates parse errors up to a limit, so a producer phase can keep
// going after the first failure and still report deterministically.
type Bag struct {
	items []ParseError
	max   uint16
}

// NewBag returns a bag that holds at most max errors.
func NewBag(max int) *Bag {
	return &Bag{
		items: make([]ParseError, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет ошибку, учитывая лимит.
// Возвращает false, если ошибка не добавлена (достигнут лимит).
func (b *Bag) Add(e ParseError) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, e)
	return true
}

// Len returns the number of accumulated errors.
func (b *Bag) Len() int {
	return len(b.items)
}

// HasErrors reports whether anything was accumulated.
func (b *Bag) HasErrors() bool {
	return len(b.items) > 0
}

// Items возвращает read-only slice ошибок.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (b *Bag) Items() []ParseError {
	return b.items
}

// Sort orders errors by (context name, line, col, code) for stable output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		ei, ej := b.items[i], b.items[j]
		if ei.Ctx.Name != ej.Ctx.Name {
			return ei.Ctx.Name < ej.Ctx.Name
		}
		if ei.Loc.Line != ej.Loc.Line {
			return ei.Loc.Line < ej.Loc.Line
		}
		if ei.Loc.Col != ej.Loc.Col {
			return ei.Loc.Col < ej.Loc.Col
		}
		return ei.Code < ej.Code
	})
}
