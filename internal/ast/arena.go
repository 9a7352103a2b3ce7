package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is append-only typed storage. Nodes are addressed by 1-based
// indices; index 0 is the shared "no node" sentinel. Nodes are never freed
// individually: the arena's lifetime is the module's lifetime.
type Arena[T any] struct {
	data []T
}

// NewArena creates an arena whose backing slice has capacity capHint.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return idx
}

// Get returns a pointer to the node, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

// Len returns the number of allocated nodes.
func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data)) //nolint:gosec // checked on Allocate
}
