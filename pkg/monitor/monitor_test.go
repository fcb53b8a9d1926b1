package monitor

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-maldridge/brwatch/pkg/types"
)

func testPkgs() map[string]*types.PkgInfo {
	return map[string]*types.PkgInfo{
		"libfoo": {Name: "libfoo", Type: types.PkgTarget, Version: "1.0"},
		"app": {
			Name:          "app",
			Type:          types.PkgTarget,
			Version:       "2.0",
			Depends:       []string{"libfoo"},
			InstallTarget: true,
		},
	}
}

func stamp(t *testing.T, dir, token string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ".stamp_"+token), nil, 0644))
}

func TestSetPackagesResetsStages(t *testing.T) {
	root := t.TempDir()
	m := New(WithBuildRoot(root))
	m.SetPackages(testPkgs())

	stamp(t, filepath.Join(root, "app-2.0"), "built")
	require.NoError(t, m.Refresh())
	assert.Equal(t, types.StageBuilt, m.Stage(m.Builds()["app"]))

	// Replacing the set drops every cached stage back to unknown.
	m.SetPackages(testPkgs())
	assert.Equal(t, types.StageUnknown, m.Stage(m.Builds()["app"]))
	assert.Equal(t, 0, m.BuiltCount())
}

func TestRefreshAndCounts(t *testing.T) {
	root := t.TempDir()
	m := New(WithBuildRoot(root))
	m.SetPackages(testPkgs())

	for _, b := range m.Builds() {
		assert.Equal(t, types.StageUnknown, m.Stage(b))
	}
	assert.Equal(t, 0, m.BuiltCount())
	assert.Equal(t, 0, m.InstalledCount())

	stamp(t, filepath.Join(root, "app-2.0"), "built")
	require.NoError(t, m.Refresh())

	assert.Equal(t, types.StageBuilt, m.Stage(m.Builds()["app"]))
	assert.Equal(t, types.StageUnknown, m.Stage(m.Builds()["libfoo"]))
	assert.Equal(t, 1, m.BuiltCount())
	assert.Equal(t, 0, m.InstalledCount())

	stamp(t, filepath.Join(root, "app-2.0"), "target_installed")
	stamp(t, filepath.Join(root, "libfoo-1.0"), "configured")
	require.NoError(t, m.Refresh())

	assert.Equal(t, types.StageInstalled, m.Stage(m.Builds()["app"]))
	assert.Equal(t, types.StageConfigured, m.Stage(m.Builds()["libfoo"]))
	assert.Equal(t, 1, m.BuiltCount())
	assert.Equal(t, 1, m.InstalledCount())

	// Counts always match a recomputation from the cache.
	naive := 0
	for _, b := range m.Builds() {
		if s := m.Stage(b); s == types.StageBuilt || s == types.StageInstalled {
			naive++
		}
	}
	assert.Equal(t, naive, m.BuiltCount())
}

func TestRefreshKeepsCacheOnError(t *testing.T) {
	root := t.TempDir()
	m := New(WithBuildRoot(root))
	m.SetPackages(testPkgs())

	stamp(t, filepath.Join(root, "app-2.0"), "built")
	require.NoError(t, m.Refresh())
	assert.Equal(t, 1, m.BuiltCount())

	// Break one probe: a file where libfoo's build directory
	// should be makes the directory listing fail.
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "libfoo-1.0"), nil, 0644))
	require.NoError(t, os.RemoveAll(filepath.Join(root, "app-2.0")))

	require.Error(t, m.Refresh())

	// The failed refresh is invisible: the cache still holds the
	// stages from the last good pass.
	assert.Equal(t, types.StageBuilt, m.Stage(m.Builds()["app"]))
	assert.Equal(t, 1, m.BuiltCount())
}
