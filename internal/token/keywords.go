package token

var keywords = map[string]Kind{
	"type":    KwType,
	"data":    KwData,
	"foreign": KwForeign,
	"import":  KwImport,
	"let":     KwLet,
	"var":     KwVar,
	"if":      KwIf,
	"then":    KwThen,
	"else":    KwElse,
	"case":    KwCase,
	"of":      KwOf,
	"while":   KwWhile,
	"do":      KwDo,
	"infix":   KwInfix,
	"infixl":  KwInfixL,
	"infixr":  KwInfixR,
	"prefix":  KwPrefix,
}

// LookupKeyword returns the keyword kind for an identifier, if any.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
