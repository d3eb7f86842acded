// Package config holds the format-agnostic project configuration model and
// the loader interface a format-specific implementation satisfies. The
// pipeline depends only on this package; the HCL binding lives in
// internal/hclconfig.
package config

import (
	"context"
	"path/filepath"
)

// DefaultBlocksDir is the conventional blocks subdirectory of a theme, used
// when the project file does not override the root.
const DefaultBlocksDir = "blocks"

// Model is the unified project configuration.
type Model struct {
	// ThemeDir is the theme root the tool operates in.
	ThemeDir string
	// BlocksRoot is the directory scanned for block definitions.
	BlocksRoot string
	// Namespace is the default block namespace used by the scaffolder.
	Namespace string
	// Scaffold holds scaffolding defaults.
	Scaffold ScaffoldDefaults
}

// ScaffoldDefaults configures what the scaffolder generates alongside the
// manifest and field-group export.
type ScaffoldDefaults struct {
	// RenderTemplate is the file name of the generated render template.
	RenderTemplate string
	// Stylesheet controls whether a stylesheet stub is generated.
	Stylesheet bool
}

// Loader is the interface for a format-specific configuration loader. Load
// resolves the project file for the given theme directory; a missing file is
// not an error and yields Default(themeDir).
type Loader interface {
	Load(ctx context.Context, themeDir string) (*Model, error)
}

// Default returns the configuration used when no project file exists.
func Default(themeDir string) *Model {
	return &Model{
		ThemeDir:   themeDir,
		BlocksRoot: filepath.Join(themeDir, DefaultBlocksDir),
		Namespace:  "theme",
		Scaffold: ScaffoldDefaults{
			RenderTemplate: "render.tmpl",
			Stylesheet:     true,
		},
	}
}
