package ast

import (
	"vhdlsem/internal/source"
)

// RegionCategory classifies what kind of code a region holds.
type RegionCategory uint8

const (
	// DeclarativeRegion holds declarations (package, entity header,
	// architecture or subprogram declarative parts).
	DeclarativeRegion RegionCategory = iota
	// SequentialStatements holds sequential statements (process and
	// subprogram bodies).
	SequentialStatements
	// ConcurrentStatements holds concurrent statements (architecture and
	// entity statement parts).
	ConcurrentStatements
)

func (c RegionCategory) String() string {
	switch c {
	case DeclarativeRegion:
		return "declarative"
	case SequentialStatements:
		return "sequential"
	case ConcurrentStatements:
		return "concurrent"
	default:
		return "invalid"
	}
}

// SearchState controls the traversal: NotFinished descends further,
// Finished prunes the current subtree.
type SearchState uint8

const (
	NotFinished SearchState = iota
	Finished
)

// Searcher receives the traversal callbacks. SearchSource is invoked once
// per design file before its regions; returning Finished skips the file.
// SearchRegion is invoked for every region range with its category.
type Searcher interface {
	SearchSource(file source.FileID) SearchState
	SearchRegion(span source.Span, category RegionCategory) SearchState
}

// Search walks every region of the given design files in source order,
// outermost first, feeding the searcher. Files whose SearchSource returns
// Finished are skipped; the walk then resumes with the next file.
func Search(files []*DesignFile, s Searcher) {
	for _, df := range files {
		if s.SearchSource(df.File) == Finished {
			continue
		}
		for _, unit := range df.Units {
			if searchUnit(unit, s) == Finished {
				return
			}
		}
	}
}

func searchUnit(unit DesignUnit, s Searcher) SearchState {
	switch u := unit.(type) {
	case *EntityDecl:
		if s.SearchRegion(u.DeclSpan, DeclarativeRegion) == Finished {
			return Finished
		}
		if st := searchDecls(u.Decls, s); st == Finished {
			return Finished
		}
		if u.HasStmts {
			if s.SearchRegion(u.StmtSpan, ConcurrentStatements) == Finished {
				return Finished
			}
		}

	case *PackageDecl:
		if s.SearchRegion(u.DeclSpan, DeclarativeRegion) == Finished {
			return Finished
		}
		return searchDecls(u.Decls, s)

	case *PackageBody:
		if s.SearchRegion(u.DeclSpan, DeclarativeRegion) == Finished {
			return Finished
		}
		return searchDecls(u.Decls, s)

	case *ArchitectureBody:
		if s.SearchRegion(u.DeclSpan, DeclarativeRegion) == Finished {
			return Finished
		}
		if st := searchDecls(u.Decls, s); st == Finished {
			return Finished
		}
		if s.SearchRegion(u.StmtSpan, ConcurrentStatements) == Finished {
			return Finished
		}
		for _, stmt := range u.Stmts {
			if searchConcurrent(stmt, s) == Finished {
				return Finished
			}
		}
	}
	return NotFinished
}

func searchDecls(decls []Declaration, s Searcher) SearchState {
	for _, decl := range decls {
		switch d := decl.(type) {
		case *SubprogramBody:
			if s.SearchRegion(d.DeclSpan, DeclarativeRegion) == Finished {
				return Finished
			}
			if st := searchDecls(d.Decls, s); st == Finished {
				return Finished
			}
			if s.SearchRegion(d.StmtSpan, SequentialStatements) == Finished {
				return Finished
			}
		case *PackageDecl:
			if s.SearchRegion(d.DeclSpan, DeclarativeRegion) == Finished {
				return Finished
			}
			if st := searchDecls(d.Decls, s); st == Finished {
				return Finished
			}
		}
	}
	return NotFinished
}

func searchConcurrent(stmt ConcurrentStatement, s Searcher) SearchState {
	switch st := stmt.(type) {
	case *ProcessStatement:
		if s.SearchRegion(st.DeclSpan, DeclarativeRegion) == Finished {
			return Finished
		}
		if sr := searchDecls(st.Decls, s); sr == Finished {
			return Finished
		}
		if s.SearchRegion(st.StmtSpan, SequentialStatements) == Finished {
			return Finished
		}
	}
	return NotFinished
}
