package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"vhdlsem/internal/ast"
	"vhdlsem/internal/diag"
	"vhdlsem/internal/parser"
	"vhdlsem/internal/source"
)

// ParseDirResult holds the parse outcome for one file of a directory.
type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Design *ast.DesignFile
	Bag    *diag.Bag
}

// ListVHDLFiles returns the sorted list of *.vhd and *.vhdl files under dir.
func ListVHDLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		lower := strings.ToLower(path)
		if strings.HasSuffix(lower, ".vhd") || strings.HasSuffix(lower, ".vhdl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseFiles loads and parses the given files in parallel. The interner
// is shared across workers; results keep the input order. Files that
// fail to load produce an I/O diagnostic instead of aborting the run.
func ParseFiles(
	ctx context.Context,
	baseDir string,
	files []string,
	maxDiagnostics, jobs int,
	events chan<- Event,
) (*source.FileSet, *source.Interner, []ParseDirResult, error) {
	fileSet := source.NewFileSetWithBase(baseDir)
	symbols := source.NewInterner()

	if len(files) == 0 {
		return fileSet, symbols, nil, nil
	}

	for _, path := range files {
		emit(events, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Preload sequentially: the FileSet is not safe for concurrent Add.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(events, Event{File: path, Stage: StageLoad, Status: StatusWorking})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each worker writes its own index; no mutex needed.
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = ParseDirResult{Path: path, Bag: bag}
				emit(events, Event{File: path, Stage: StageLoad, Status: StatusError})
				return nil
			}

			emit(events, Event{File: path, Stage: StageParse, Status: StatusWorking})

			fileID := fileIDs[path]
			design := parser.ParseFile(fileSet.Get(fileID), symbols, diag.BagReporter{Bag: bag})

			results[i] = ParseDirResult{
				Path:   path,
				FileID: fileID,
				Design: design,
				Bag:    bag,
			}

			status := StatusDone
			if bag.HasErrors() {
				status = StatusError
			}
			emit(events, Event{File: path, Stage: StageParse, Status: status})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, symbols, results, err
	}
	return fileSet, symbols, results, nil
}

// ParseDir parses every VHDL file under dir in parallel.
func ParseDir(
	ctx context.Context,
	dir string,
	maxDiagnostics, jobs int,
	events chan<- Event,
) (*source.FileSet, *source.Interner, []ParseDirResult, error) {
	files, err := ListVHDLFiles(dir)
	if err != nil {
		return nil, nil, nil, err
	}
	return ParseFiles(ctx, dir, files, maxDiagnostics, jobs, events)
}
