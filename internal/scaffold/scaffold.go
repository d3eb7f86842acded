// Package scaffold generates the boilerplate files for a new block: the
// block.json manifest, a field-group export whose location rule targets
// exactly the new block, a render template stub and optionally a stylesheet
// stub.
package scaffold

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/wrd/blockkit/internal/config"
	"github.com/wrd/blockkit/internal/ctxlog"
	"github.com/wrd/blockkit/internal/fieldgroup"
	"github.com/wrd/blockkit/internal/manifest"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// Block names are namespace/slug, lowercase alphanumerics and dashes,
// mirroring what the block editor accepts.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*/[a-z][a-z0-9-]*$`)

// Generator scaffolds block directories under one blocks root.
type Generator struct {
	blocksRoot string
	defaults   config.ScaffoldDefaults
}

// New creates a Generator writing under blocksRoot with the given defaults.
func New(blocksRoot string, defaults config.ScaffoldDefaults) *Generator {
	return &Generator{blocksRoot: blocksRoot, defaults: defaults}
}

// templateData is the value rendered into every scaffold template.
type templateData struct {
	Name           string
	Slug           string
	Title          string
	Key            string
	ClassName      string
	RenderTemplate string
	Stylesheet     bool
}

// Generate scaffolds a new block named name (namespace/slug form) and
// returns the paths of the files it created. The target directory must not
// already exist; scaffolding never overwrites a block.
func (g *Generator) Generate(ctx context.Context, name string) ([]string, error) {
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("invalid block name %q: expected namespace/slug in lowercase", name)
	}

	slug := name[strings.Index(name, "/")+1:]
	dir := filepath.Join(g.blocksRoot, slug)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("block directory %s already exists", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating block directory: %w", err)
	}

	renderTemplate := g.defaults.RenderTemplate
	if renderTemplate == "" {
		renderTemplate = "render.tmpl"
	}

	data := templateData{
		Name:           name,
		Slug:           slug,
		Title:          titleFromSlug(slug),
		Key:            "group_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ClassName:      "block-" + slug,
		RenderTemplate: renderTemplate,
		Stylesheet:     g.defaults.Stylesheet,
	}

	files := []struct{ name, tmpl string }{
		{manifest.FileName, "block.json.tmpl"},
		{fieldgroup.FileName, "acf.json.tmpl"},
		{renderTemplate, "render.tmpl.tmpl"},
	}
	if data.Stylesheet {
		files = append(files, struct{ name, tmpl string }{"style.css", "style.css.tmpl"})
	}

	var created []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := renderToFile(path, f.tmpl, data); err != nil {
			return created, err
		}
		created = append(created, path)
	}

	ctxlog.FromContext(ctx).Info("Block scaffolded.", "name", name, "dir", dir, "files", len(created))
	return created, nil
}

func renderToFile(path, tmplName string, data templateData) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return fmt.Errorf("rendering %s: %w", tmplName, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// titleFromSlug turns "hero-banner" into "Hero Banner".
func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
