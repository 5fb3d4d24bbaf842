package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"vhdlsem/internal/completion"
	"vhdlsem/internal/driver"
	"vhdlsem/internal/project"
)

var completeCmd = &cobra.Command{
	Use:   "complete [flags] file.vhd",
	Short: "Propose identifiers for a cursor position",
	Long: `Complete tokenizes the file up to the cursor and proposes library names,
primary units or package declarations depending on the surrounding clause.
The design libraries come from the vhdl.toml manifest when one is found,
otherwise every VHDL file next to the input feeds the work library`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	addCursorFlags(completeCmd)
	completeCmd.Flags().String("dir", "", "project directory (defaults to the file's directory)")
}

func runComplete(cmd *cobra.Command, args []string) error {
	path := args[0]
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = filepath.Dir(path)
	}

	opts := driver.AnalyzeOptions{
		Dir:            dir,
		MaxDiagnostics: maxDiagnostics(cmd),
	}
	if manifestPath, ok, err := project.FindManifest(dir); err == nil && ok {
		if m, err := project.LoadManifest(manifestPath); err == nil {
			opts.Manifest = m
		}
	}

	res, err := driver.AnalyzeDir(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	// The edited buffer gets its own entry so stale on-disk copies of
	// the same file do not shadow it.
	fileID, err := res.FileSet.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := res.FileSet.Get(fileID)

	cursor, err := cursorOffset(cmd, file)
	if err != nil {
		return err
	}

	options := completion.ListCompletionOptions(file, res.Symbols, res.Root, cursor)
	for _, option := range options {
		fmt.Fprintln(cmd.OutOrStdout(), option)
	}
	return nil
}
