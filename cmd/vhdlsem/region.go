package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vhdlsem/internal/ast"
	"vhdlsem/internal/completion"
	"vhdlsem/internal/driver"
)

var regionCmd = &cobra.Command{
	Use:   "region [flags] file.vhd",
	Short: "Classify the code region under a cursor position",
	Long:  `Region reports whether the cursor sits in a declarative part, a sequential statement part or a concurrent statement part`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRegion,
}

func init() {
	addCursorFlags(regionCmd)
}

func runRegion(cmd *cobra.Command, args []string) error {
	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	cursor, err := cursorOffset(cmd, result.File)
	if err != nil {
		return err
	}

	files := []*ast.DesignFile{result.Design}
	category, span, ok := completion.RegionAt(files, result.File.ID, cursor)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "outside any region")
		return nil
	}

	start, end := result.FileSet.Resolve(span)
	fmt.Fprintf(cmd.OutOrStdout(), "%s region %d:%d-%d:%d\n",
		category, start.Line, start.Col, end.Line, end.Col)
	return nil
}
