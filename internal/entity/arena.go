// Package entity models named entities: the arena they live in, their
// designators and kinds, type structure with implicit-declaration slots,
// and the scoped regions that make them visible.
package entity

import (
	"fmt"

	"fortio.org/safecast"

	"vhdlsem/internal/source"
)

// EntityID refers to an entity in an Arena. The zero value is reserved.
type EntityID uint32

const NoEntityID EntityID = 0

// Ent is one named entity. All references between entities are IDs into
// the same arena, so cyclic structure (implicit <-> parent type) is safe.
type Ent struct {
	ID         EntityID
	Designator Designator
	Kind       EntKind
	DeclPos    source.Span
	// Parent links an implicit declaration to the type that spawned it.
	Parent   EntityID
	Implicit bool
}

// Arena owns every entity; index 0 is a sentinel so EntityID zero values
// stay detectable.
type Arena struct {
	ents []Ent
}

func NewArena() *Arena {
	return &Arena{ents: make([]Ent, 1)}
}

func (a *Arena) alloc(ent Ent) EntityID {
	n, err := safecast.Conv[uint32](len(a.ents))
	if err != nil {
		panic(fmt.Errorf("entity arena overflow: %w", err))
	}
	ent.ID = EntityID(n)
	a.ents = append(a.ents, ent)
	return ent.ID
}

// Explicit allocates an entity that appears in source.
func (a *Arena) Explicit(des Designator, kind EntKind, pos source.Span) EntityID {
	return a.alloc(Ent{Designator: des, Kind: kind, DeclPos: pos})
}

// Implicit allocates a language-generated entity linked to the parent
// type that spawned it.
func (a *Arena) Implicit(parent EntityID, des Designator, kind EntKind, pos source.Span) EntityID {
	return a.alloc(Ent{Designator: des, Kind: kind, DeclPos: pos, Parent: parent, Implicit: true})
}

// Get returns the entity record. The record stays valid until the arena
// is dropped.
func (a *Arena) Get(id EntityID) *Ent {
	return &a.ents[id]
}

// Len reports the number of allocated entities, excluding the sentinel.
func (a *Arena) Len() int {
	return len(a.ents) - 1
}

// TypeOf returns the type data of a type entity. Calling it on anything
// else is a programming bug.
func (a *Arena) TypeOf(id EntityID) *TypeData {
	ent := a.Get(id)
	if ent.Kind.Kind != KindType {
		panic(fmt.Sprintf("entity %d is %s, not a type", id, ent.Kind.Kind))
	}
	return ent.Kind.Type
}
