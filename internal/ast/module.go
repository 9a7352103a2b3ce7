package ast

import (
	"athena/internal/source"
)

// Module is one parsed translation unit: the ordered top-level declarations
// plus the operator fixity table.
type Module struct {
	File         source.FileID
	Declarations []DeclID
	Operators    map[source.StringID]Fixity
}

func NewModule(file source.FileID) *Module {
	return &Module{
		File:      file,
		Operators: make(map[source.StringID]Fixity),
	}
}

// Fixity returns the registered fixity for op, or DefaultFixity.
func (m *Module) Fixity(op source.StringID) Fixity {
	if f, ok := m.Operators[op]; ok {
		return f
	}
	return DefaultFixity
}

// AddFixity registers a fixity for op. Returns false when op already has
// one.
func (m *Module) AddFixity(op source.StringID, f Fixity) bool {
	if _, ok := m.Operators[op]; ok {
		return false
	}
	m.Operators[op] = f
	return true
}
