package registrar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrd/blockkit/internal/fieldgroup"
	"github.com/wrd/blockkit/internal/hooks"
	"github.com/wrd/blockkit/internal/hostmem"
	"github.com/wrd/blockkit/internal/testutil"
)

const heroManifest = `{"name": "wrd/hero", "title": "Hero"}`

const heroFieldGroup = `{
	"key": "group_hero",
	"title": "Hero",
	"fields": [],
	"location": [[{"param": "block", "operator": "==", "value": "wrd/hero"}]]
}`

func TestRegisterAll_DefersUntilInitFires(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json":   heroManifest,
		"blocks/footer/block.json": `{"name": "wrd/footer"}`,
	})

	f.Registrar.RegisterAll(f.Ctx)
	require.Empty(t, f.Host.BlockTypes(), "registration must wait for the init point")
	require.Equal(t, 2, f.Lifecycle.Pending(hooks.Init))

	f.FireAll()
	require.Equal(t, []string{
		filepath.Join(f.BlocksRoot, "footer"),
		filepath.Join(f.BlocksRoot, "hero"),
	}, f.Host.BlockTypes())
}

func TestRegisterAll_ImmediateWhenInitAlreadyFired(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
	})

	f.FireAll()
	f.Registrar.RegisterAll(f.Ctx)
	require.Equal(t, []string{filepath.Join(f.BlocksRoot, "hero")}, f.Host.BlockTypes())
}

func TestRegisterAll_PublishesFieldGroupsAtTheirOwnPoint(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
		"blocks/hero/acf.json":   heroFieldGroup,
	})

	f.Registrar.RegisterAll(f.Ctx)
	require.Empty(t, f.Host.FieldGroups())
	require.Equal(t, 1, f.Lifecycle.Pending(hooks.FieldGroups))

	f.Lifecycle.Fire(f.Ctx, hooks.FieldGroups)
	groups := f.Host.FieldGroups()
	require.Len(t, groups, 1)
	require.Equal(t, "group_hero", groups[0].Key)

	// Block type is still waiting on init.
	require.Empty(t, f.Host.BlockTypes())
}

func TestImport_ArrayShapePublishesEachGroup(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
		"blocks/hero/acf.json": `[
			{"key": "group_a", "title": "A"},
			{"key": "group_b", "title": "B"}
		]`,
	})

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	groups := f.Host.FieldGroups()
	require.Len(t, groups, 2)
	require.Equal(t, "group_a", groups[0].Key)
	require.Equal(t, "group_b", groups[1].Key)
}

func TestImport_MalformedExportIsANoOp(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
		"blocks/hero/acf.json":   `{"key": "group_hero"`,
	})

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	require.Empty(t, f.Host.FieldGroups())
	// The directory is still wired into persistence and still registers.
	require.Equal(t, []string{filepath.Join(f.BlocksRoot, "hero")}, f.Host.LoadPaths())
	require.Len(t, f.Host.BlockTypes(), 1)
}

func TestImport_CompanionScriptFallback(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
		"blocks/hero/acf.sh":     "#!/bin/sh\n",
	})

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	require.Empty(t, f.Host.FieldGroups(), "script fallback publishes nothing itself")
	require.Equal(t, []string{filepath.Join(f.BlocksRoot, "hero", "acf.sh")}, f.Host.ScriptRuns())
}

func TestImport_ScriptIgnoredWhenJSONExists(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
		"blocks/hero/acf.json":   heroFieldGroup,
		"blocks/hero/acf.sh":     "#!/bin/sh\n",
	})

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	require.Len(t, f.Host.FieldGroups(), 1)
	require.Empty(t, f.Host.ScriptRuns())
}

func TestImport_NothingToImportIsANoOp(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
	})

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	require.Empty(t, f.Host.FieldGroups())
	require.Empty(t, f.Host.ScriptRuns())
	require.Len(t, f.Host.BlockTypes(), 1)
}

func TestRegisterAll_UnnamedBlockStillRegisters(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/broken/block.json": `not json at all`,
		"blocks/hero/block.json":   heroManifest,
	})

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	// The host decides what to do with an unnamed block; the pipeline
	// passes it through and the sibling is unaffected.
	require.Len(t, f.Host.BlockTypes(), 2)
	require.Equal(t, []string{"wrd/hero"}, f.Registrar.AllBlockNames(f.Ctx))
}

func TestAllBlockNames_ScanBasedAndDeduplicated(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json":   heroManifest,
		"blocks/hero2/block.json":  heroManifest, // duplicate name, counted once
		"blocks/footer/block.json": `{"name": "wrd/footer"}`,
	})

	before := f.Registrar.AllBlockNames(f.Ctx)
	require.Equal(t, []string{"wrd/footer", "wrd/hero"}, before)

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	after := f.Registrar.AllBlockNames(f.Ctx)
	require.Equal(t, before, after, "read-only, not cumulative")
}

func TestSavePaths_OwnedDescriptorRedirectsToBlockDir(t *testing.T) {
	defaultDir := "/shared/acf-json"
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
		"blocks/hero/acf.json":   heroFieldGroup,
	}, hostmem.WithDefaultSavePaths(defaultDir))

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	owned := &fieldgroup.Descriptor{
		Key:      "group_hero",
		Location: fieldgroup.Location{{{Param: "block", Operator: "==", Value: "wrd/hero"}}},
	}
	require.Equal(t, []string{filepath.Join(f.BlocksRoot, "hero")}, f.Host.SavePaths(f.Ctx, owned))
}

func TestSavePaths_CompoundRuleFallsThroughToDefaults(t *testing.T) {
	defaultDir := "/shared/acf-json"
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
	}, hostmem.WithDefaultSavePaths(defaultDir))

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	compound := &fieldgroup.Descriptor{
		Key: "group_shared",
		Location: fieldgroup.Location{{
			{Param: "block", Operator: "==", Value: "wrd/hero"},
			{Param: "post_type", Operator: "==", Value: "page"},
		}},
	}
	require.Equal(t, []string{defaultDir}, f.Host.SavePaths(f.Ctx, compound))
}

func TestSavePaths_UnnamedBlockNeverClaims(t *testing.T) {
	defaultDir := "/shared/acf-json"
	f := testutil.NewFixture(t, map[string]string{
		"blocks/broken/block.json": `{}`,
	}, hostmem.WithDefaultSavePaths(defaultDir))

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	desc := &fieldgroup.Descriptor{
		Key:      "group_x",
		Location: fieldgroup.Location{{{Param: "block", Operator: "==", Value: "wrd/hero"}}},
	}
	require.Equal(t, []string{defaultDir}, f.Host.SavePaths(f.Ctx, desc))
}

func TestSavePaths_RenamedBlockReleasesOwnership(t *testing.T) {
	f := testutil.NewFixture(t, map[string]string{
		"blocks/hero/block.json": heroManifest,
	}, hostmem.WithDefaultSavePaths("/shared/acf-json"))

	f.Registrar.RegisterAll(f.Ctx)
	f.FireAll()

	desc := &fieldgroup.Descriptor{
		Key:      "group_hero",
		Location: fieldgroup.Location{{{Param: "block", Operator: "==", Value: "wrd/hero"}}},
	}
	require.Equal(t, []string{filepath.Join(f.BlocksRoot, "hero")}, f.Host.SavePaths(f.Ctx, desc))

	// Rename the block on disk; the filter re-reads the manifest at save time.
	path := filepath.Join(f.BlocksRoot, "hero", "block.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "wrd/banner"}`), 0o644))
	require.Equal(t, []string{"/shared/acf-json"}, f.Host.SavePaths(f.Ctx, desc))
}
