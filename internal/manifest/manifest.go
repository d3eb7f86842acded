// Package manifest reads a block's block.json manifest. A missing, unreadable
// or malformed manifest yields an unnamed result rather than an error: the
// block is excluded from name-indexed operations but its directory may still
// be handed to the host, which decides whether it can register it.
package manifest

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wrd/blockkit/internal/ctxlog"
)

// FileName is the manifest file a directory must contain to count as a block.
const FileName = "block.json"

// Manifest is one block's declared identity and metadata. Values are
// transient: read fresh on every scan, never cached.
type Manifest struct {
	// Dir is the absolute path of the block's root directory.
	Dir string
	// Name is the block's unique namespace/slug identifier, empty when the
	// manifest is absent or malformed.
	Name string
	// Title and Description are display metadata, empty when undeclared.
	Title       string
	Description string
}

// Named reports whether the manifest declared a usable name.
func (m Manifest) Named() bool {
	return m.Name != ""
}

type manifestFile struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Read loads the manifest for the block rooted at dir. It never fails:
// any problem reading or parsing the file produces an unnamed Manifest.
func Read(ctx context.Context, dir string) Manifest {
	m := Manifest{Dir: dir}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		ctxlog.FromContext(ctx).Debug("Block manifest unreadable, treating block as unnamed.", "dir", dir, "error", err)
		return m
	}

	var parsed manifestFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		ctxlog.FromContext(ctx).Debug("Block manifest is not valid JSON, treating block as unnamed.", "dir", dir, "error", err)
		return m
	}

	m.Name = parsed.Name
	m.Title = parsed.Title
	m.Description = parsed.Description
	return m
}
