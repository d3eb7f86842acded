// Package hclconfig is the HCL implementation of the config.Loader
// interface. It parses the project file blockkit.hcl at the theme root and
// translates it into the format-agnostic config model.
package hclconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/wrd/blockkit/internal/config"
	"github.com/wrd/blockkit/internal/ctxlog"
)

// FileName is the project configuration file, relative to the theme root.
const FileName = "blockkit.hcl"

// Loader loads blockkit.hcl project files.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a project file.
type fileRoot struct {
	Theme    *themeBlock    `hcl:"theme,block"`
	Scaffold *scaffoldBlock `hcl:"scaffold,block"`
}

type themeBlock struct {
	BlocksRoot *string `hcl:"blocks_root,optional"`
	Namespace  *string `hcl:"namespace,optional"`
}

type scaffoldBlock struct {
	RenderTemplate *string `hcl:"render_template,optional"`
	Stylesheet     *bool   `hcl:"stylesheet,optional"`
}

// Load reads the project file under themeDir. A missing file yields the
// defaults; a present but invalid file is a startup error.
func (l *Loader) Load(ctx context.Context, themeDir string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.Default(themeDir)

	path := filepath.Join(themeDir, FileName)
	if _, err := os.Stat(path); err != nil {
		logger.Debug("No project file found, using defaults.", "path", path)
		return model, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, diags)
	}

	// Expressions in the file may reference the theme directory, so
	// blocks_root can be written as "${theme_dir}/blocks".
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"theme_dir": cty.StringVal(themeDir),
		},
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode project file %s: %w", path, diags)
	}

	if root.Theme != nil {
		if root.Theme.BlocksRoot != nil {
			model.BlocksRoot = *root.Theme.BlocksRoot
			if !filepath.IsAbs(model.BlocksRoot) {
				model.BlocksRoot = filepath.Join(themeDir, model.BlocksRoot)
			}
		}
		if root.Theme.Namespace != nil {
			model.Namespace = *root.Theme.Namespace
		}
	}
	if root.Scaffold != nil {
		if root.Scaffold.RenderTemplate != nil {
			model.Scaffold.RenderTemplate = *root.Scaffold.RenderTemplate
		}
		if root.Scaffold.Stylesheet != nil {
			model.Scaffold.Stylesheet = *root.Scaffold.Stylesheet
		}
	}

	logger.Debug("Project file loaded.", "path", path, "blocks_root", model.BlocksRoot)
	return model, nil
}
