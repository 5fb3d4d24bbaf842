package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"vhdlsem/internal/entity"
	"vhdlsem/internal/project"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "pkg.vhd", "package p is end package;")

	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	// package p is end package ; EOF
	if len(res.Tokens) != 7 {
		t.Fatalf("token count = %d, want 7", len(res.Tokens))
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeReportsLexError(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.vhd", "signal s : string := \"unterminated")

	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("lex error not reported")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "ent.vhd", `
entity counter is
end entity;

architecture rtl of counter is
  signal q : integer;
begin
end architecture;
`)

	res, err := Parse(path, 16)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", res.Bag.Items())
	}
	if len(res.Design.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(res.Design.Units))
	}
}

func TestParseDirOrdersAndRecovers(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.vhd", "package late is end;")
	writeSource(t, dir, "a.vhd", "package early is end;")
	writeSource(t, dir, "sub/c.vhdl", "entity nested is end;")
	writeSource(t, dir, "notes.txt", "not a source file")

	fset, symbols, results, err := ParseDir(context.Background(), dir, 16, 2, nil)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if symbols == nil || fset.Len() != 3 {
		t.Fatalf("loaded %d files, want 3", fset.Len())
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	// Walk order is sorted, so a.vhd precedes b.vhd precedes sub/c.vhdl.
	if filepath.Base(results[0].Path) != "a.vhd" || filepath.Base(results[2].Path) != "c.vhdl" {
		t.Fatalf("result order: %s, %s, %s", results[0].Path, results[1].Path, results[2].Path)
	}
	for _, res := range results {
		if res.Design == nil || res.Bag.HasErrors() {
			t.Fatalf("%s: design=%v errors=%v", res.Path, res.Design != nil, res.Bag.Items())
		}
	}
}

func TestParseDirEmpty(t *testing.T) {
	_, _, results, err := ParseDir(context.Background(), t.TempDir(), 16, 0, nil)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}
}

func TestParseDirCancellation(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.vhd", "b.vhd", "c.vhd"} {
		writeSource(t, dir, name, "package p is end;")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := ParseDir(ctx, dir, 16, 1, nil)
	if err == nil {
		t.Fatalf("cancelled parse returned no error")
	}
}

func TestAnalyzeDirFlat(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "pkg.vhd", `
package util is
  type word is array (natural range <>) of bit;
end package;
`)
	writeSource(t, dir, "top.vhd", "entity top is end entity;")

	res, err := AnalyzeDir(context.Background(), AnalyzeOptions{Dir: dir})
	if err != nil {
		t.Fatalf("AnalyzeDir: %v", err)
	}
	if res.HasErrors() {
		for _, f := range res.Files {
			t.Logf("%s: %v", f.Path, f.Bag.Items())
		}
		t.Fatalf("unexpected diagnostics")
	}

	work, ok := res.Root.Library(res.Symbols.Intern("work"))
	if !ok {
		t.Fatalf("work library missing")
	}
	if work.Len() != 2 {
		t.Fatalf("work units = %d, want 2", work.Len())
	}
	if _, ok := work.PrimaryUnit(res.Symbols.Intern("util")); !ok {
		t.Fatalf("package util not registered")
	}

	// The standard package came up with its implicit declarations.
	integer, ok := res.Std.Region().LookupImmediate(
		entity.IdentDesignator(res.Symbols.Intern("integer")))
	if !ok {
		t.Fatalf("INTEGER missing from standard region")
	}
	typ, _ := integer.Solitary()
	if got := len(res.Arena.TypeOf(typ).Implicits()); got == 0 {
		t.Fatalf("INTEGER has no implicit declarations")
	}
}

func TestAnalyzeDirManifestLibraries(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "rtl/top.vhd", "entity top is end;")
	writeSource(t, dir, "vendor/pkg.vhd", "package vendor_pkg is end;")
	manifest := writeSource(t, dir, "vhdl.toml", `
[libraries.work]
files = ["rtl/*.vhd"]

[libraries.vendor]
files = ["vendor/*.vhd"]
`)

	m, err := project.LoadManifest(manifest)
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	res, err := AnalyzeDir(context.Background(), AnalyzeOptions{Manifest: m})
	if err != nil {
		t.Fatalf("AnalyzeDir: %v", err)
	}

	vendor, ok := res.Root.Library(res.Symbols.Intern("vendor"))
	if !ok || vendor.Len() != 1 {
		t.Fatalf("vendor library not populated")
	}
	work, ok := res.Root.Library(res.Symbols.Intern("work"))
	if !ok || work.Len() != 1 {
		t.Fatalf("work library not populated")
	}
}

func TestAnalyzeDirCacheHits(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "pkg.vhd", "package cached is end;")
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	cache, err := OpenDiskCache("vhdlsem-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	first, err := AnalyzeDir(context.Background(), AnalyzeOptions{Dir: dir, Cache: cache})
	if err != nil {
		t.Fatalf("first AnalyzeDir: %v", err)
	}
	if first.CacheHits != 0 {
		t.Fatalf("first run hits = %d, want 0", first.CacheHits)
	}

	second, err := AnalyzeDir(context.Background(), AnalyzeOptions{Dir: dir, Cache: cache})
	if err != nil {
		t.Fatalf("second AnalyzeDir: %v", err)
	}
	if second.CacheHits != 1 {
		t.Fatalf("second run hits = %d, want 1", second.CacheHits)
	}
}

func TestAnalyzeDirEmitsEvents(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "pkg.vhd", "package p is end;")

	events := make(chan Event, 64)
	if _, err := AnalyzeDir(context.Background(), AnalyzeOptions{Dir: dir, Events: events}); err != nil {
		t.Fatalf("AnalyzeDir: %v", err)
	}
	close(events)

	sawParse, sawAnalyzeDone := false, false
	for ev := range events {
		if ev.Stage == StageParse {
			sawParse = true
		}
		if ev.Stage == StageAnalyze && ev.Status == StatusDone {
			sawAnalyzeDone = true
		}
	}
	if !sawParse || !sawAnalyzeDone {
		t.Fatalf("event stream incomplete: parse=%v analyzeDone=%v", sawParse, sawAnalyzeDone)
	}
}

func TestUnitIndexPayload(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "mix.vhd", `
entity e is end;
architecture rtl of e is begin end;
package p is end;
`)

	res, err := Parse(path, 16)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	payload := NewUnitIndexPayload(path, res.Design)
	if len(payload.Units) != 3 {
		t.Fatalf("units = %d, want 3", len(payload.Units))
	}
	arch := payload.Units[1]
	if arch.Kind != UnitArchitecture || arch.Name != "rtl" || arch.Parent != "e" {
		t.Fatalf("architecture summary = %+v", arch)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenDiskCache("vhdlsem-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	key := [32]byte{1, 2, 3}
	in := &UnitIndexPayload{
		Schema: unitIndexSchemaVersion,
		Path:   "a.vhd",
		Units:  []UnitSummary{{Kind: UnitEntity, Name: "top"}},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out UnitIndexPayload
	hit, err := cache.Get(key, &out)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if out.Path != in.Path || len(out.Units) != 1 || out.Units[0].Name != "top" {
		t.Fatalf("payload mismatch: %+v", out)
	}

	var missing UnitIndexPayload
	if hit, err := cache.Get([32]byte{9}, &missing); err != nil || hit {
		t.Fatalf("missing key: hit=%v err=%v", hit, err)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if hit, _ := cache.Get(key, &out); hit {
		t.Fatalf("entry survived DropAll")
	}
}
