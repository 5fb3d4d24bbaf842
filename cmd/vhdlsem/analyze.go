package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vhdlsem/internal/diagfmt"
	"vhdlsem/internal/driver"
	"vhdlsem/internal/project"
	"vhdlsem/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [dir]",
	Short: "Parse and analyze a VHDL project",
	Long: `Analyze parses every source of the project in parallel, registers the
design units in their libraries and sets up the standard package. The
libraries come from vhdl.toml when present, otherwise every file under
the directory feeds the work library`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	analyzeCmd.Flags().Bool("progress", false, "show interactive progress")
	analyzeCmd.Flags().Bool("no-cache", false, "skip the unit index cache")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	wantProgress, _ := cmd.Flags().GetBool("progress")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	opts := driver.AnalyzeOptions{
		Dir:            dir,
		MaxDiagnostics: maxDiagnostics(cmd),
		Jobs:           jobs,
	}

	if manifestPath, ok, err := project.FindManifest(dir); err != nil {
		return err
	} else if ok {
		m, err := project.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		opts.Manifest = m
	}

	if !noCache {
		cache, err := driver.OpenDiskCache("vhdlsem")
		if err == nil {
			opts.Cache = cache
		}
	}

	var res *driver.AnalyzeResult
	var runErr error

	if wantProgress && isTerminal(os.Stdout) {
		files, err := plannedFiles(opts)
		if err != nil {
			return err
		}
		events := make(chan driver.Event, 256)
		opts.Events = events

		var g errgroup.Group
		g.Go(func() error {
			defer close(events)
			res, runErr = driver.AnalyzeDir(cmd.Context(), opts)
			return nil
		})
		model := ui.NewProgressModel("analyzing "+dir, files, events)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return err
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		res, runErr = driver.AnalyzeDir(cmd.Context(), opts)
	}
	if runErr != nil {
		return fmt.Errorf("analysis failed: %w", runErr)
	}

	for _, file := range res.Files {
		if file.Bag == nil || file.Bag.Len() == 0 {
			continue
		}
		file.Bag.Sort()
		diagfmt.Pretty(os.Stderr, file.Bag, res.FileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowNotes:   true,
			ShowPreview: true,
		})
	}

	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d files analyzed\n", len(res.Files))
		for _, libName := range res.Root.AvailableLibraries() {
			lib, _ := res.Root.Library(libName)
			fmt.Fprintf(out, "  library %s: %d units\n", res.Symbols.MustLookup(libName), lib.Len())
		}
		if opts.Cache != nil {
			fmt.Fprintf(out, "  unit index cache: %d hits\n", res.CacheHits)
		}
	}

	if res.HasErrors() {
		return fmt.Errorf("analysis produced errors")
	}
	return nil
}

// plannedFiles mirrors the analysis source plan for the progress list.
func plannedFiles(opts driver.AnalyzeOptions) ([]string, error) {
	if opts.Manifest == nil {
		return driver.ListVHDLFiles(opts.Dir)
	}
	var files []string
	seen := make(map[string]bool)
	for _, name := range opts.Manifest.LibraryNames() {
		resolved, err := opts.Manifest.ResolveFiles(name)
		if err != nil {
			return nil, err
		}
		for _, path := range resolved {
			if seen[path] {
				continue
			}
			seen[path] = true
			files = append(files, path)
		}
	}
	return files, nil
}
