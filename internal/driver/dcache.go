package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"vhdlsem/internal/ast"
)

// Bump when the payload format changes; stale entries are then misses.
const unitIndexSchemaVersion uint16 = 1

// UnitKind is the stored discriminator of a design unit summary.
type UnitKind uint8

const (
	UnitEntity UnitKind = iota
	UnitPackage
	UnitConfiguration
	UnitContext
	UnitArchitecture
	UnitPackageBody
)

func (k UnitKind) String() string {
	switch k {
	case UnitEntity:
		return "entity"
	case UnitPackage:
		return "package"
	case UnitConfiguration:
		return "configuration"
	case UnitContext:
		return "context"
	case UnitArchitecture:
		return "architecture"
	case UnitPackageBody:
		return "package body"
	default:
		return "unknown"
	}
}

// UnitSummary is one design unit of a cached file.
type UnitSummary struct {
	Kind   UnitKind
	Name   string
	Parent string // entity or package the secondary unit belongs to
}

// UnitIndexPayload is the cached per-file unit index, keyed by the
// content hash of the source file.
type UnitIndexPayload struct {
	Schema uint16
	Path   string
	Units  []UnitSummary
}

// NewUnitIndexPayload summarizes the design units of a parsed file.
func NewUnitIndexPayload(path string, design *ast.DesignFile) *UnitIndexPayload {
	payload := &UnitIndexPayload{
		Schema: unitIndexSchemaVersion,
		Path:   path,
	}
	for _, unit := range design.Units {
		switch u := unit.(type) {
		case *ast.EntityDecl:
			payload.Units = append(payload.Units, UnitSummary{Kind: UnitEntity, Name: u.Name.Text})
		case *ast.PackageDecl:
			payload.Units = append(payload.Units, UnitSummary{Kind: UnitPackage, Name: u.Name.Text})
		case *ast.ConfigurationDecl:
			payload.Units = append(payload.Units, UnitSummary{Kind: UnitConfiguration, Name: u.Name.Text})
		case *ast.ContextDecl:
			payload.Units = append(payload.Units, UnitSummary{Kind: UnitContext, Name: u.Name.Text})
		case *ast.ArchitectureBody:
			payload.Units = append(payload.Units, UnitSummary{
				Kind: UnitArchitecture, Name: u.Name.Text, Parent: u.Entity.Text,
			})
		case *ast.PackageBody:
			payload.Units = append(payload.Units, UnitSummary{
				Kind: UnitPackageBody, Name: u.Name.Text, Parent: u.Name.Text,
			})
		}
	}
	return payload
}

// DiskCache persists unit indexes keyed by source content hash.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache under XDG_CACHE_HOME (or
// ~/.cache) for the given application name.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	// "units" keeps the entries grepable and easy to wipe by hand.
	return filepath.Join(c.dir, "units", hex.EncodeToString(key[:])+".mp")
}

// Put serializes a payload under the given content hash. The write goes
// through a temp file and a rename so readers never see a torn entry.
func (c *DiskCache) Put(key [32]byte, payload *UnitIndexPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the payload stored under the given content hash. A missing
// entry is (false, nil).
func (c *DiskCache) Get(key [32]byte, out *UnitIndexPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
