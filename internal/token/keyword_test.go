package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Keyword{
		"fn":    KwFun,
		"pub":   KwPub,
		"impl":  KwImpl,
		"enum":  KwEnum,
		"const": KwConst,
		"class": KwClass,
		"do":    KwDo,
		"for":   KwFor,
		"if":    KwIf,
		"elif":  KwElif,
		"else":  KwElse,
		"match": KwMatch,
		"while": KwWhile,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "PUB", "Class", // регистр важен
		"byte", "int", "long", "float", "double", // имена типов — Ident
		"function", "identifier", "",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestKeyword_SpellingRoundTrip(t *testing.T) {
	// Рендеринг и распознавание — точные инверсии друг друга.
	for kw := Keyword(0); kw < keywordCount; kw++ {
		spelled := kw.String()
		got, ok := LookupKeyword(spelled)
		if !ok {
			t.Fatalf("spelling %q of %d is not recognized back", spelled, kw)
		}
		if got != kw {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", spelled, got, kw)
		}
	}
	if len(keywords) != int(keywordCount) {
		t.Fatalf("recognition table has %d entries, want %d", len(keywords), keywordCount)
	}
}
