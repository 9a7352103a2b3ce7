package ast

import (
	"athena/internal/source"
)

// PatKind selects the variant of a case pattern.
type PatKind uint8

const (
	// PatLit matches a literal value.
	PatLit PatKind = iota
	// PatVar binds the scrutinee to a variable.
	PatVar
	// PatCon matches a constructor and binds its fields.
	PatCon
)

// Pat is a case-alternative pattern.
type Pat struct {
	Kind PatKind
	Span source.Span

	Lit  Literal
	Name source.StringID   // PatVar binding, PatCon constructor name
	Args []source.StringID // PatCon field bindings
}

// Pats is the arena of pattern nodes.
type Pats struct {
	Arena *Arena[Pat]
}

func NewPats(capHint uint) *Pats {
	return &Pats{Arena: NewArena[Pat](capHint)}
}

func (p *Pats) New(node Pat) PatID {
	return PatID(p.Arena.Allocate(node))
}

func (p *Pats) Get(id PatID) *Pat {
	return p.Arena.Get(uint32(id))
}
