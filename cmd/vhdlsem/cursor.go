package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vhdlsem/internal/source"
)

// addCursorFlags registers the cursor position flags shared by the
// region and complete commands.
func addCursorFlags(cmd *cobra.Command) {
	cmd.Flags().Int("offset", -1, "cursor position as a byte offset")
	cmd.Flags().Uint32("line", 0, "cursor line (1-based)")
	cmd.Flags().Uint32("column", 1, "cursor column (1-based)")
}

// cursorOffset resolves the cursor flags against the file. Either
// --offset or --line/--column must be given.
func cursorOffset(cmd *cobra.Command, file *source.File) (uint32, error) {
	offset, _ := cmd.Flags().GetInt("offset")
	line, _ := cmd.Flags().GetUint32("line")
	column, _ := cmd.Flags().GetUint32("column")

	if offset >= 0 {
		if offset > len(file.Content) {
			return 0, fmt.Errorf("offset %d past end of %s (%d bytes)", offset, file.Path, len(file.Content))
		}
		return uint32(offset), nil
	}
	if line == 0 {
		return 0, fmt.Errorf("cursor position required: pass --offset or --line/--column")
	}
	return file.Offset(source.LineCol{Line: line, Col: column}), nil
}
