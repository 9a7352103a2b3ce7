package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"athena/internal/diag"
)

// Current schema version; bump when CachedCheck changes shape.
const cacheSchemaVersion uint16 = 1

// CacheDirName is the on-disk cache location relative to the working tree.
const CacheDirName = ".athena-cache"

// CachedCheck is the msgpack payload stored per source file, keyed by the
// sha256 of its contents. It carries just enough to skip a clean re-check.
type CachedCheck struct {
	Schema    uint16
	Path      string
	Errors    int
	Warnings  int
	Functions []string
}

// DiskCache stores check results on disk. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// NewDiskCache creates the cache directory if needed.
func NewDiskCache(root string) (*DiskCache, error) {
	dir := filepath.Join(root, CacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) entryPath(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".check")
}

// Load returns the cached result for a content hash, if present and
// schema-compatible.
func (c *DiskCache) Load(hash [32]byte) (*CachedCheck, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		return nil, false
	}
	var payload CachedCheck
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, false
	}
	return &payload, true
}

// Store writes a result under its content hash. Writes go through a temp
// file so readers never see a torn entry.
func (c *DiskCache) Store(hash [32]byte, payload CachedCheck) error {
	payload.Schema = cacheSchemaVersion

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	tmp, err := os.CreateTemp(c.dir, "entry-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, c.entryPath(hash))
}

// Summarize condenses a check result into its cache payload.
func Summarize(res *CheckResult) CachedCheck {
	payload := CachedCheck{
		Path: res.File.Path,
	}
	for _, d := range res.Bag.Items() {
		switch d.Severity {
		case diag.SevError:
			payload.Errors++
		case diag.SevWarning:
			payload.Warnings++
		}
	}
	for _, f := range res.Resolved.Functions {
		payload.Functions = append(payload.Functions, res.Interner.MustLookup(f.Name))
	}
	return payload
}

// ErrCacheMiss reports an absent entry to callers that want an error value.
var ErrCacheMiss = errors.New("driver: cache miss")
