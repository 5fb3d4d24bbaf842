package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vhdlsem/internal/driver"
)

var unitsCmd = &cobra.Command{
	Use:   "units [flags] file.vhd...",
	Short: "List the design units of VHDL files",
	Long:  `Units lists the design units of each file, reusing the on-disk unit index for files whose content has not changed`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUnits,
}

func init() {
	unitsCmd.Flags().Bool("no-cache", false, "always reparse instead of consulting the unit index cache")
	unitsCmd.Flags().Bool("drop-cache", false, "invalidate the unit index cache first")
}

func runUnits(cmd *cobra.Command, args []string) error {
	noCache, _ := cmd.Flags().GetBool("no-cache")
	dropCache, _ := cmd.Flags().GetBool("drop-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var cache *driver.DiskCache
	if !noCache {
		var err error
		cache, err = driver.OpenDiskCache("vhdlsem")
		if err != nil {
			return fmt.Errorf("failed to open unit index cache: %w", err)
		}
		if dropCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to drop unit index cache: %w", err)
			}
		}
	}

	out := cmd.OutOrStdout()
	for _, path := range args {
		payload, fromCache, err := driver.ListUnits(path, maxDiagnostics(cmd), cache)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		origin := ""
		if fromCache && !quiet {
			origin = " (cached)"
		}
		fmt.Fprintf(out, "%s%s\n", path, origin)
		for _, unit := range payload.Units {
			if unit.Parent != "" {
				fmt.Fprintf(out, "  %s %s of %s\n", unit.Kind, unit.Name, unit.Parent)
			} else {
				fmt.Fprintf(out, "  %s %s\n", unit.Kind, unit.Name)
			}
		}
	}
	return nil
}
