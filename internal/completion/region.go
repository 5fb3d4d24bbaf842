// Package completion answers editor queries: locating the region under a
// cursor and proposing identifiers for the grammatical position.
package completion

import (
	"vhdlsem/internal/ast"
	"vhdlsem/internal/source"
)

// regionSearcher keeps the most specific region containing the cursor.
// Regions are visited outermost first, so a hit that lies within the
// current best replaces it.
type regionSearcher struct {
	file   source.FileID
	cursor uint32

	found    bool
	category ast.RegionCategory
	span     source.Span
}

func (rs *regionSearcher) SearchSource(file source.FileID) ast.SearchState {
	if file != rs.file {
		return ast.Finished
	}
	return ast.NotFinished
}

func (rs *regionSearcher) SearchRegion(span source.Span, category ast.RegionCategory) ast.SearchState {
	if !span.ContainsInclusive(rs.cursor) {
		return ast.NotFinished
	}
	if !rs.found || span.Within(rs.span) {
		rs.found = true
		rs.category = category
		rs.span = span
	}
	return ast.NotFinished
}

// RegionAt classifies the region containing the cursor offset in the
// given file. The bool result is false when the cursor lies outside
// every region of that file.
func RegionAt(files []*ast.DesignFile, file source.FileID, cursor uint32) (ast.RegionCategory, source.Span, bool) {
	rs := &regionSearcher{file: file, cursor: cursor}
	ast.Search(files, rs)
	return rs.category, rs.span, rs.found
}
