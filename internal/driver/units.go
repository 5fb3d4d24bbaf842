package driver

import (
	"vhdlsem/internal/diag"
	"vhdlsem/internal/parser"
	"vhdlsem/internal/source"
)

// ListUnits returns the design unit index of one file, served from the
// disk cache when the content hash matches a stored entry. The bool
// result reports a cache hit. A nil cache always parses.
func ListUnits(path string, maxDiagnostics int, cache *DiskCache) (*UnitIndexPayload, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)

	if cache != nil {
		var cached UnitIndexPayload
		hit, err := cache.Get(file.Hash, &cached)
		if err == nil && hit && cached.Schema == unitIndexSchemaVersion {
			return &cached, true, nil
		}
	}

	bag := diag.NewBag(maxDiagnostics)
	symbols := source.NewInterner()
	design := parser.ParseFile(file, symbols, diag.BagReporter{Bag: bag})

	payload := NewUnitIndexPayload(file.Path, design)
	if cache != nil {
		_ = cache.Put(file.Hash, payload)
	}
	return payload, false, nil
}
