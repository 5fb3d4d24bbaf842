package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vhdlsem/internal/diagfmt"
	"vhdlsem/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.vhd",
	Short: "Parse a VHDL source file and list its design units",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	result.Bag.Sort()
	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stderr),
			ShowNotes:   true,
			ShowPreview: true,
		}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	payload := driver.NewUnitIndexPayload(result.File.Path, result.Design)
	for _, unit := range payload.Units {
		if unit.Parent != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s of %s\n", unit.Kind, unit.Name, unit.Parent)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", unit.Kind, unit.Name)
		}
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: parse produced errors", args[0])
	}
	return nil
}
