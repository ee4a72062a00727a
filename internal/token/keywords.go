package token

// Keyword enumerates the reserved words of the language.
type Keyword uint8

const (
	// KwFun represents the 'fn' keyword.
	KwFun Keyword = iota // fn
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	keywordCount // всегда последний
)

// keywordSpellings is the canonical rendering of every keyword. It is the exact
// inverse of the recognition table below; diagnostics and source
// reconstruction depend on the two never drifting apart.
var keywordSpellings = [keywordCount]string{
	KwFun:   "fn",
	KwPub:   "pub",
	KwImpl:  "impl",
	KwEnum:  "enum",
	KwConst: "const",
	KwClass: "class",
	KwDo:    "do",
	KwFor:   "for",
	KwIf:    "if",
	KwElif:  "elif",
	KwElse:  "else",
	KwMatch: "match",
	KwWhile: "while",
}

var keywords = map[string]Keyword{
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

// LookupKeyword возвращает ключевое слово и bool, если это оно.
// Регистрозависимо — только lowercase версии распознаются.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywords[ident]
	return k, ok
}

func (k Keyword) String() string {
	if k < keywordCount {
		return keywordSpellings[k]
	}
	return "Keyword(?)"
}
