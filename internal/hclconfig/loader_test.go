package hclconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/wrd/blockkit/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	themeDir := t.TempDir()

	model, err := NewLoader().Load(context.Background(), themeDir)
	require.NoError(t, err)

	want := config.Default(themeDir)
	if diff := cmp.Diff(want, model); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ThemeDirInterpolation(t *testing.T) {
	themeDir := t.TempDir()
	project := `
theme {
  blocks_root = "${theme_dir}/src/blocks"
  namespace   = "wrd"
}

scaffold {
  render_template = "view.tmpl"
  stylesheet      = false
}
`
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, FileName), []byte(project), 0o644))

	model, err := NewLoader().Load(context.Background(), themeDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(themeDir, "src", "blocks"), model.BlocksRoot)
	require.Equal(t, "wrd", model.Namespace)
	require.Equal(t, "view.tmpl", model.Scaffold.RenderTemplate)
	require.False(t, model.Scaffold.Stylesheet)
}

func TestLoad_RelativeBlocksRootJoinsThemeDir(t *testing.T) {
	themeDir := t.TempDir()
	project := `
theme {
  blocks_root = "parts/blocks"
}
`
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, FileName), []byte(project), 0o644))

	model, err := NewLoader().Load(context.Background(), themeDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(themeDir, "parts", "blocks"), model.BlocksRoot)
	// Unset values keep their defaults.
	require.Equal(t, "theme", model.Namespace)
	require.True(t, model.Scaffold.Stylesheet)
}

func TestLoad_InvalidHCLIsAnError(t *testing.T) {
	themeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, FileName), []byte(`theme {`), 0o644))

	_, err := NewLoader().Load(context.Background(), themeDir)
	require.Error(t, err)
}

func TestLoad_UnknownAttributeIsAnError(t *testing.T) {
	themeDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, FileName), []byte("theme {\n  bogus = true\n}\n"), 0o644))

	_, err := NewLoader().Load(context.Background(), themeDir)
	require.Error(t, err)
}
