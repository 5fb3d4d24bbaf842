package entity

// FormalRegion is the ordered parameter list of a subprogram. Append
// only; the position of each formal carries meaning for positional
// binding at call sites.
type FormalRegion struct {
	params []EntityID
}

func NewParams() *FormalRegion {
	return &FormalRegion{}
}

func (f *FormalRegion) Add(id EntityID) {
	f.params = append(f.params, id)
}

func (f *FormalRegion) Len() int {
	if f == nil {
		return 0
	}
	return len(f.params)
}

// Nth returns the i-th formal in declaration order.
func (f *FormalRegion) Nth(i int) EntityID {
	return f.params[i]
}

// Params returns the formals in declaration order. The slice aliases the
// region's storage; callers must not modify it.
func (f *FormalRegion) Params() []EntityID {
	if f == nil {
		return nil
	}
	return f.params
}

// NamedEntities is what a designator resolves to inside a region: a
// single entity, or an overload set of subprograms.
type NamedEntities struct {
	ents []EntityID
}

func Single(id EntityID) NamedEntities {
	return NamedEntities{ents: []EntityID{id}}
}

func (n NamedEntities) IsOverloaded() bool {
	return len(n.ents) > 1
}

// First returns the first entity added under the designator.
func (n NamedEntities) First() EntityID {
	if len(n.ents) == 0 {
		return NoEntityID
	}
	return n.ents[0]
}

// Solitary returns the entity when the set is not overloaded.
func (n NamedEntities) Solitary() (EntityID, bool) {
	if len(n.ents) == 1 {
		return n.ents[0], true
	}
	return NoEntityID, false
}

func (n NamedEntities) All() []EntityID {
	return n.ents
}

// Region is a lexical scope of named entities in insertion order.
type Region struct {
	order []Designator
	names map[Designator]int
	sets  []NamedEntities
}

func NewRegion() *Region {
	return &Region{names: make(map[Designator]int)}
}

// Add makes the entity visible under its designator. Overloadable kinds
// accumulate into an overload set; anything else replaces the previous
// occupant.
func (r *Region) Add(a *Arena, id EntityID) {
	ent := a.Get(id)
	des := ent.Designator
	if idx, ok := r.names[des]; ok {
		set := &r.sets[idx]
		if ent.Kind.Overloadable() && len(set.ents) > 0 &&
			a.Get(set.ents[0]).Kind.Overloadable() {
			set.ents = append(set.ents, id)
		} else {
			set.ents = []EntityID{id}
		}
		return
	}
	r.names[des] = len(r.sets)
	r.order = append(r.order, des)
	r.sets = append(r.sets, Single(id))
}

// LookupImmediate resolves a designator in this region only.
func (r *Region) LookupImmediate(des Designator) (NamedEntities, bool) {
	if idx, ok := r.names[des]; ok {
		return r.sets[idx], true
	}
	return NamedEntities{}, false
}

// Immediates enumerates the region's named entities in insertion order.
func (r *Region) Immediates() []NamedEntities {
	out := make([]NamedEntities, 0, len(r.order))
	for _, des := range r.order {
		out = append(out, r.sets[r.names[des]])
	}
	return out
}

// Len reports the number of distinct designators in the region.
func (r *Region) Len() int {
	return len(r.order)
}
