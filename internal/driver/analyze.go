package driver

import (
	"context"

	"vhdlsem/internal/ast"
	"vhdlsem/internal/entity"
	"vhdlsem/internal/library"
	"vhdlsem/internal/project"
	"vhdlsem/internal/source"
	"vhdlsem/internal/std"
)

// AnalyzeOptions configures a project analysis run.
type AnalyzeOptions struct {
	// Dir is analyzed as a flat "work" library when Manifest is nil.
	Dir            string
	Manifest       *project.Manifest
	MaxDiagnostics int
	Jobs           int
	Events         chan<- Event
	Cache          *DiskCache
}

// AnalyzeResult aggregates the outcome of analyzing a project.
type AnalyzeResult struct {
	FileSet *source.FileSet
	Symbols *source.Interner
	Root    *library.Root
	Arena   *entity.Arena
	Std     *std.Standard
	Files   []ParseDirResult

	// CacheHits counts files whose unit index was served unchanged
	// from the disk cache.
	CacheHits int
}

// Designs returns the successfully parsed design files.
func (r *AnalyzeResult) Designs() []*ast.DesignFile {
	var designs []*ast.DesignFile
	for _, res := range r.Files {
		if res.Design != nil {
			designs = append(designs, res.Design)
		}
	}
	return designs
}

// HasErrors reports whether any file produced an error diagnostic.
func (r *AnalyzeResult) HasErrors() bool {
	for _, res := range r.Files {
		if res.Bag != nil && res.Bag.HasErrors() {
			return true
		}
	}
	return false
}

// AnalyzeDir parses the project sources, registers every design unit in
// its library and installs the standard package with its implicit
// declarations. With a manifest, each [libraries.<name>] entry feeds the
// library of that name; without one, every file lands in "work".
func AnalyzeDir(ctx context.Context, opts AnalyzeOptions) (*AnalyzeResult, error) {
	if opts.MaxDiagnostics <= 0 {
		opts.MaxDiagnostics = 64
	}

	plan, err := analysisPlan(opts)
	if err != nil {
		return nil, err
	}

	fileSet, symbols, results, err := ParseFiles(
		ctx, plan.baseDir, plan.files, opts.MaxDiagnostics, opts.Jobs, opts.Events)
	if err != nil {
		return nil, err
	}

	root := library.NewRoot()
	root.EnsureLibrary(symbols.Intern("std"))
	root.EnsureLibrary(symbols.Intern("work"))

	hits := 0
	for _, res := range results {
		emit(opts.Events, Event{File: res.Path, Stage: StageAnalyze, Status: StatusWorking})
		if res.Design != nil {
			lib := root.EnsureLibrary(symbols.Intern(plan.libraryOf[res.Path]))
			lib.AddFile(res.Design)
			if opts.Cache != nil {
				if cacheUnitIndex(opts.Cache, fileSet.Get(res.FileID), res.Design) {
					hits++
				}
			}
		}
		status := StatusDone
		if res.Bag != nil && res.Bag.HasErrors() {
			status = StatusError
		}
		emit(opts.Events, Event{File: res.Path, Stage: StageAnalyze, Status: status})
	}

	arena := entity.NewArena()
	standard := std.NewStandard(arena, symbols)
	standard.EndOfPackageImplicits()

	return &AnalyzeResult{
		FileSet:   fileSet,
		Symbols:   symbols,
		Root:      root,
		Arena:     arena,
		Std:       standard,
		Files:     results,
		CacheHits: hits,
	}, nil
}

type plannedSources struct {
	baseDir   string
	files     []string
	libraryOf map[string]string
}

func analysisPlan(opts AnalyzeOptions) (*plannedSources, error) {
	plan := &plannedSources{libraryOf: make(map[string]string)}

	if opts.Manifest == nil {
		files, err := ListVHDLFiles(opts.Dir)
		if err != nil {
			return nil, err
		}
		plan.baseDir = opts.Dir
		plan.files = files
		for _, path := range files {
			plan.libraryOf[path] = "work"
		}
		return plan, nil
	}

	plan.baseDir = opts.Manifest.Dir
	for _, name := range opts.Manifest.LibraryNames() {
		files, err := opts.Manifest.ResolveFiles(name)
		if err != nil {
			return nil, err
		}
		for _, path := range files {
			// A file listed under several libraries belongs to the
			// first one in sorted library order.
			if _, taken := plan.libraryOf[path]; taken {
				continue
			}
			plan.libraryOf[path] = name
			plan.files = append(plan.files, path)
		}
	}
	return plan, nil
}

// cacheUnitIndex stores the unit summary for a parsed file and reports
// whether the cache already held a matching entry for its content hash.
func cacheUnitIndex(cache *DiskCache, file *source.File, design *ast.DesignFile) bool {
	var cached UnitIndexPayload
	hit, err := cache.Get(file.Hash, &cached)
	if err == nil && hit && cached.Schema == unitIndexSchemaVersion {
		return true
	}
	payload := NewUnitIndexPayload(file.Path, design)
	// Best effort: a failed write only costs the next run a reparse.
	_ = cache.Put(file.Hash, payload)
	return false
}
