package source

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// StringID identifies an interned symbol.
type StringID uint32

// NoStringID marks the absence of a symbol.
const NoStringID StringID = 0

// Interner maps VHDL designators to stable IDs. Basic identifiers compare
// case-insensitively but keep their first-seen spelling; extended
// identifiers (leading backslash) compare verbatim. Interning is safe for
// concurrent use: the enclosing analyzer shares one interner across
// compilation units.
type Interner struct {
	mu    sync.RWMutex
	byID  []string            // byID[0] = "" for NoStringID
	index map[string]StringID // canonical key -> ID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// canonical produces the lookup key for a designator. Extended identifiers
// keep their case; everything else folds to lower case after NFC
// normalization so that Foo, FOO and foo intern to the same symbol.
func canonical(s string) string {
	s = norm.NFC.String(s)
	if strings.HasPrefix(s, `\`) {
		return s
	}
	return strings.ToLower(s)
}

// Intern inserts a designator and returns its ID, reusing the existing ID
// for case-insensitive matches.
func (i *Interner) Intern(s string) StringID {
	key := canonical(s)

	i.mu.RLock()
	id, ok := i.index[key]
	i.mu.RUnlock()
	if ok {
		return id
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if id, ok := i.index[key]; ok {
		return id
	}
	// Copy so the entry does not pin the caller's backing buffer.
	cpy := string([]byte(s))
	id = StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[string([]byte(key))] = id
	return id
}

// InternBytes interns a byte slice designator.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup returns the first-seen spelling for an ID.
func (i *Interner) Lookup(id StringID) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup panics on an invalid ID.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Get returns the ID for a designator without interning it.
func (i *Interner) Get(s string) (StringID, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	id, ok := i.index[canonical(s)]
	return id, ok
}

// Len reports the number of interned symbols including NoStringID.
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byID)
}
