package diagfmt

import (
	"path/filepath"

	"vhdlsem/internal/source"
)

func displayPath(fs *source.FileSet, path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative, PathModeAuto:
		base := fs.BaseDir()
		if base == "" {
			return path
		}
		rel, err := filepath.Rel(base, path)
		if err != nil || !filepath.IsLocal(rel) {
			return path
		}
		return rel
	default:
		return path
	}
}
