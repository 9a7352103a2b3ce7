package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Integer represents an integer literal token.
	Integer
	// Float represents a floating-point literal token.
	Float
	// Char represents a character literal token.
	Char
	// String represents a string literal token or one chunk of an
	// interpolated string.
	String

	// VarID represents a lower-case identifier.
	VarID
	// ConID represents an upper-case (constructor) identifier.
	ConID
	// VarSym represents a user-defined symbolic operator.
	VarSym

	// Grave represents the backquote used for infix identifiers.
	Grave // `
	// Comma represents the comma separator.
	Comma // ,
	// BraceL represents the left tuple brace.
	BraceL // {
	// BraceR represents the right tuple brace.
	BraceR // }
	// ParenL represents the left parenthesis.
	ParenL // (
	// ParenR represents the right parenthesis.
	ParenR // )

	// OpColon represents the reserved ':' operator.
	OpColon // :
	// OpEquals represents the reserved '=' operator.
	OpEquals // =
	// OpBar represents the reserved '|' operator.
	OpBar // |
	// OpDollar represents the reserved '$' application operator.
	OpDollar // $
	// OpArrowR represents the reserved '->' operator.
	OpArrowR // ->
	// OpDot represents the reserved '.' operator.
	OpDot // .

	// StartOfFormat marks the start of an embedded expression inside an
	// interpolated string.
	StartOfFormat
	// EndOfFormat marks the end of an embedded expression inside an
	// interpolated string.
	EndOfFormat

	// EndOfStmt is synthesized when a newline lands on the current block's
	// indent column.
	EndOfStmt
	// EndOfBlock is synthesized when a newline dedents below the current
	// block's indent column.
	EndOfBlock

	// KwType represents the 'type' keyword.
	KwType // type
	// KwData represents the 'data' keyword.
	KwData // data
	// KwForeign represents the 'foreign' keyword.
	KwForeign // foreign
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwInfix represents the 'infix' keyword.
	KwInfix // infix
	// KwInfixL represents the 'infixl' keyword.
	KwInfixL // infixl
	// KwInfixR represents the 'infixr' keyword.
	KwInfixR // infixr
	// KwPrefix represents the 'prefix' keyword.
	KwPrefix // prefix

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Integer:       "Integer",
	Float:         "Float",
	Char:          "Char",
	String:        "String",
	VarID:         "VarID",
	ConID:         "ConID",
	VarSym:        "VarSym",
	Grave:         "Grave",
	Comma:         "Comma",
	BraceL:        "BraceL",
	BraceR:        "BraceR",
	ParenL:        "ParenL",
	ParenR:        "ParenR",
	OpColon:       "OpColon",
	OpEquals:      "OpEquals",
	OpBar:         "OpBar",
	OpDollar:      "OpDollar",
	OpArrowR:      "OpArrowR",
	OpDot:         "OpDot",
	StartOfFormat: "StartOfFormat",
	EndOfFormat:   "EndOfFormat",
	EndOfStmt:     "EndOfStmt",
	EndOfBlock:    "EndOfBlock",
	KwType:        "KwType",
	KwData:        "KwData",
	KwForeign:     "KwForeign",
	KwImport:      "KwImport",
	KwLet:         "KwLet",
	KwVar:         "KwVar",
	KwIf:          "KwIf",
	KwThen:        "KwThen",
	KwElse:        "KwElse",
	KwCase:        "KwCase",
	KwOf:          "KwOf",
	KwWhile:       "KwWhile",
	KwDo:          "KwDo",
	KwInfix:       "KwInfix",
	KwInfixL:      "KwInfixL",
	KwInfixR:      "KwInfixR",
	KwPrefix:      "KwPrefix",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
