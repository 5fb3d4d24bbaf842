// Package library tracks design libraries and the units registered in
// them, keyed the way use clauses and completion queries look them up.
package library

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/source"
)

// Library is one design library with its analyzed units.
type Library struct {
	Name  source.StringID
	units map[ast.UnitKey]ast.DesignUnit
	order []ast.UnitKey
}

func newLibrary(name source.StringID) *Library {
	return &Library{
		Name:  name,
		units: make(map[ast.UnitKey]ast.DesignUnit),
	}
}

// AddUnit registers a design unit under its key. A unit with the same
// key replaces the previous one, keeping its original position in the
// enumeration order.
func (l *Library) AddUnit(unit ast.DesignUnit) {
	key := unit.Key()
	if _, ok := l.units[key]; !ok {
		l.order = append(l.order, key)
	}
	l.units[key] = unit
}

// AddFile registers every unit of a parsed design file.
func (l *Library) AddFile(df *ast.DesignFile) {
	for _, unit := range df.Units {
		l.AddUnit(unit)
	}
}

// Unit looks up a design unit by key.
func (l *Library) Unit(key ast.UnitKey) (ast.DesignUnit, bool) {
	u, ok := l.units[key]
	return u, ok
}

// PrimaryUnit looks up a primary unit by name.
func (l *Library) PrimaryUnit(name source.StringID) (ast.DesignUnit, bool) {
	return l.Unit(ast.PrimaryKey(name))
}

// PrimaryUnits enumerates primary units in registration order.
func (l *Library) PrimaryUnits() []ast.DesignUnit {
	var out []ast.DesignUnit
	for _, key := range l.order {
		if key.IsPrimary() {
			out = append(out, l.units[key])
		}
	}
	return out
}

// Len reports the number of registered units.
func (l *Library) Len() int {
	return len(l.units)
}

// Root is the library manager: every known library in creation order.
type Root struct {
	order []source.StringID
	libs  map[source.StringID]*Library
}

func NewRoot() *Root {
	return &Root{libs: make(map[source.StringID]*Library)}
}

// EnsureLibrary returns the library with the given name, creating it on
// first use.
func (r *Root) EnsureLibrary(name source.StringID) *Library {
	if lib, ok := r.libs[name]; ok {
		return lib
	}
	lib := newLibrary(name)
	r.libs[name] = lib
	r.order = append(r.order, name)
	return lib
}

// Library returns a registered library.
func (r *Root) Library(name source.StringID) (*Library, bool) {
	lib, ok := r.libs[name]
	return lib, ok
}

// AvailableLibraries enumerates library names in creation order.
func (r *Root) AvailableLibraries() []source.StringID {
	return r.order
}

// GetLibraryUnits returns the unit map of a library, or false when the
// library is not registered.
func (r *Root) GetLibraryUnits(name source.StringID) (map[ast.UnitKey]ast.DesignUnit, bool) {
	if lib, ok := r.libs[name]; ok {
		return lib.units, true
	}
	return nil, false
}
