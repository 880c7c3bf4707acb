// Package catalog discovers quiz documents in a directory and orders them
// naturally for display.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Ext is the file suffix that marks a quiz document.
const Ext = ".json"

// ErrCatalogUnavailable indicates the catalog directory does not exist.
var ErrCatalogUnavailable = errors.New("quiz catalog unavailable")

// Catalog lists quiz documents stored in a single directory.
type Catalog struct {
	dir string
}

// New creates a Catalog rooted at dir.
func New(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the catalog directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// List returns the quiz identifiers (file names) in natural order.
// A directory without quiz documents yields an empty slice and no error.
func (c *Catalog) List() ([]string, error) {
	info, err := os.Stat(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogUnavailable, c.dir)
		}
		return nil, fmt.Errorf("stat catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrCatalogUnavailable, c.dir)
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	ids := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		ids = append(ids, e.Name())
	}

	slices.SortStableFunc(ids, NaturalCompare)
	return ids, nil
}

// Path returns the filesystem path of a quiz identifier.
func (c *Catalog) Path(id string) string {
	return filepath.Join(c.dir, id)
}

// Name strips the quiz document suffix from an identifier.
func Name(id string) string {
	return strings.TrimSuffix(filepath.Base(id), Ext)
}
