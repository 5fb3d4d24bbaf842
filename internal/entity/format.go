package entity

import (
	"strings"

	"vhdlsem/internal/source"
)

// FormatProfile renders an entity the way VHDL declares it, for
// diagnostics and CLI listings. Subprograms show their full parameter
// profile; other kinds show their kind and designator.
func FormatProfile(a *Arena, symbols *source.Interner, id EntityID) string {
	ent := a.Get(id)
	name := ent.Designator.Display(symbols)

	switch ent.Kind.Kind {
	case KindFunction, KindProcedure:
		var b strings.Builder
		b.WriteString(ent.Kind.Kind.String())
		b.WriteString(" ")
		b.WriteString(name)
		sig := ent.Kind.Signature
		if n := sig.Formals.Len(); n > 0 {
			b.WriteString("(")
			for i := 0; i < n; i++ {
				if i > 0 {
					b.WriteString("; ")
				}
				b.WriteString(formatFormal(a, symbols, sig.Formals.Nth(i)))
			}
			b.WriteString(")")
		}
		if sig.Return != NoEntityID {
			b.WriteString(" return ")
			b.WriteString(a.Get(sig.Return).Designator.Display(symbols))
		}
		return b.String()

	case KindType:
		return "type " + name

	default:
		return ent.Kind.Kind.String() + " " + name
	}
}

func formatFormal(a *Arena, symbols *source.Interner, id EntityID) string {
	formal := a.Get(id)
	name := formal.Designator.Display(symbols)

	if formal.Kind.Kind == KindInterfaceFile {
		return "file " + name + " : " + a.Get(formal.Kind.FileType).Designator.Display(symbols)
	}

	obj := formal.Kind.Object
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" : ")
	if mode := obj.Mode.String(); mode != "" && obj.Mode != ModeIn {
		b.WriteString(mode)
		b.WriteString(" ")
	}
	b.WriteString(a.Get(obj.Subtype.Base).Designator.Display(symbols))
	if obj.HasDefault {
		b.WriteString(" := <default>")
	}
	return b.String()
}
