package ast

import (
	"vhdlsem/internal/source"
)

// UnitKey identifies a library unit. Primary units are keyed by their own
// name; secondary units additionally carry the primary unit they belong to.
type UnitKey struct {
	Parent source.StringID // NoStringID for primary units
	Name   source.StringID
}

// PrimaryKey builds the key of a primary unit.
func PrimaryKey(name source.StringID) UnitKey {
	return UnitKey{Name: name}
}

// SecondaryKey builds the key of a secondary unit under a primary unit.
func SecondaryKey(parent, name source.StringID) UnitKey {
	return UnitKey{Parent: parent, Name: name}
}

// IsPrimary reports whether the key names a primary unit.
func (k UnitKey) IsPrimary() bool {
	return k.Parent == source.NoStringID
}
