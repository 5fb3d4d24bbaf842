package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vhdlsem/internal/entity"
	"vhdlsem/internal/source"
	"vhdlsem/internal/std"
)

var implicitsCmd = &cobra.Command{
	Use:   "implicits [flags] type",
	Short: "List the implicit declarations of a standard type",
	Long: `Implicits prints the operations the language implies for a type of the
standard package, such as the comparison operators of INTEGER or the
logical operators of BIT_VECTOR`,
	Args: cobra.ExactArgs(1),
	RunE: runImplicits,
}

func init() {
	implicitsCmd.Flags().Bool("all", false, "list every standard type instead of one")
}

func runImplicits(cmd *cobra.Command, args []string) error {
	symbols := source.NewInterner()
	arena := entity.NewArena()
	standard := std.NewStandard(arena, symbols)
	standard.EndOfPackageImplicits()

	all, _ := cmd.Flags().GetBool("all")
	out := cmd.OutOrStdout()

	if all {
		for _, named := range standard.Region().Immediates() {
			id, ok := named.Solitary()
			if !ok || arena.Get(id).Kind.Kind != entity.KindType {
				continue
			}
			printTypeImplicits(out, arena, symbols, id)
		}
		return nil
	}

	name := strings.ToLower(args[0])
	named, ok := standard.Region().LookupImmediate(entity.IdentDesignator(symbols.Intern(name)))
	if !ok {
		return fmt.Errorf("no %q in the standard package", args[0])
	}
	id, ok := named.Solitary()
	if !ok || arena.Get(id).Kind.Kind != entity.KindType {
		return fmt.Errorf("%q is not a type", args[0])
	}
	printTypeImplicits(out, arena, symbols, id)
	return nil
}

func printTypeImplicits(out io.Writer, arena *entity.Arena, symbols *source.Interner, typ entity.EntityID) {
	fmt.Fprintf(out, "%s\n", entity.FormatProfile(arena, symbols, typ))
	for _, imp := range arena.TypeOf(typ).Implicits() {
		fmt.Fprintf(out, "  %s\n", entity.FormatProfile(arena, symbols, imp))
	}
}
