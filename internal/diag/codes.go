package diag

import (
	"fmt"
)

// Code is a compact numeric identifier for a diagnostic. The thousands digit
// selects the phase: 1xxx lexical, 2xxx syntactic, 3xxx declarative, 4xxx
// resolution.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexInvalidEscape      Code = 1004
	LexBadNumber          Code = 1005
	LexInconsistentIndent Code = 1006
	LexUnterminatedFormat Code = 1007

	// Syntactic
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectExpression  Code = 2002
	SynExpectType        Code = 2003
	SynExpectIdentifier  Code = 2004
	SynUnclosedParen     Code = 2005
	SynUnclosedBrace     Code = 2006
	SynExpectEndOfBlock  Code = 2007
	SynExpectThen        Code = 2008
	SynExpectDo          Code = 2009
	SynExpectOf          Code = 2010
	SynExpectArrow       Code = 2011
	SynExpectEndOfFormat Code = 2012

	// Declarative
	DeclInfo              Code = 3000
	DeclExpectEquals      Code = 3001
	DeclExpectConstructor Code = 3002
	DeclExpectTypeName    Code = 3003
	DeclDuplicateFixity   Code = 3004
	DeclExpectOperator    Code = 3005
	DeclExpectImport      Code = 3006
	DeclUnknownConvention Code = 3007
	DeclExpectForeignName Code = 3008
	DeclExpectBody        Code = 3009
	DeclBadPrecedence     Code = 3010

	// Resolution
	ResInfo                Code = 4000
	ResUndefinedGeneric    Code = 4001
	ResNotGeneric          Code = 4002
	ResGenericArity        Code = 4003
	ResBoolConstructor     Code = 4004
	ResUndefinedVariable   Code = 4005
	ResDuplicateDefinition Code = 4006
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown",

	LexInfo:               "lexer note",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexUnterminatedChar:   "unterminated character literal",
	LexInvalidEscape:      "invalid escape sequence",
	LexBadNumber:          "malformed numeric literal",
	LexInconsistentIndent: "inconsistent indentation",
	LexUnterminatedFormat: "unterminated string format",

	SynInfo:              "parser note",
	SynUnexpectedToken:   "unexpected token",
	SynExpectExpression:  "expected an expression",
	SynExpectType:        "expected a type",
	SynExpectIdentifier:  "expected an identifier",
	SynUnclosedParen:     "unmatched parenthesis",
	SynUnclosedBrace:     "unmatched brace",
	SynExpectEndOfBlock:  "expected end of statement block",
	SynExpectThen:        "expected 'then'",
	SynExpectDo:          "expected 'do'",
	SynExpectOf:          "expected 'of'",
	SynExpectArrow:       "expected '->'",
	SynExpectEndOfFormat: "expected end of string format",

	DeclInfo:              "declaration note",
	DeclExpectEquals:      "expected '='",
	DeclExpectConstructor: "expected a constructor",
	DeclExpectTypeName:    "expected a type name",
	DeclDuplicateFixity:   "operator fixity already defined",
	DeclExpectOperator:    "expected an operator",
	DeclExpectImport:      "expected 'import'",
	DeclUnknownConvention: "unknown calling convention",
	DeclExpectForeignName: "expected a foreign name string",
	DeclExpectBody:        "expected a function body expression",
	DeclBadPrecedence:     "precedence out of range",

	ResInfo:                "resolution note",
	ResUndefinedGeneric:    "undefined generic type",
	ResNotGeneric:          "must be a generic type",
	ResGenericArity:        "generic arity mismatch",
	ResBoolConstructor:     "'Bool' used as a constructor",
	ResUndefinedVariable:   "undefined variable",
	ResDuplicateDefinition: "duplicate definition",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DCL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("RES%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
