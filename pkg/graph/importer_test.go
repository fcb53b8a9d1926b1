package graph

import (
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-maldridge/brwatch/pkg/types"
)

func decodeReport(t *testing.T, report string) map[string]map[string]interface{} {
	t.Helper()
	raw := make(map[string]map[string]interface{})
	require.NoError(t, json.Unmarshal([]byte(report), &raw))
	return raw
}

func TestFromShowInfo(t *testing.T) {
	report := `{
		"libfoo": {"type": "target", "version": "1.0", "dependencies": []},
		"app": {"type": "target", "version": "2.0", "install_target": true, "dependencies": ["libfoo", "toolchain"]},
		"host-tool": {"type": "host", "version": "0.3", "dependencies": ["libfoo"]},
		"skeleton-init-common": {"type": "target"},
		"host-skeleton": {"type": "host"},
		"rootfs-ext2": {"type": "rootfs"}
	}`

	pkgs, err := FromShowInfo(hclog.NewNullLogger(), decodeReport(t, report))
	require.NoError(t, err)

	require.Len(t, pkgs, 3)
	for name, p := range pkgs {
		assert.Equal(t, name, p.Name)
	}

	assert.NotContains(t, pkgs, "skeleton-init-common")
	assert.NotContains(t, pkgs, "host-skeleton")
	assert.NotContains(t, pkgs, "rootfs-ext2")

	// "toolchain" isn't in the report, so the edge is dropped.
	assert.Equal(t, []string{"libfoo"}, pkgs["app"].Depends)
	assert.Empty(t, pkgs["libfoo"].Depends)
	assert.Equal(t, []string{"libfoo"}, pkgs["host-tool"].Depends)

	assert.Equal(t, types.PkgTarget, pkgs["app"].Type)
	assert.True(t, pkgs["app"].InstallTarget)
	assert.True(t, pkgs["app"].Installable())
	assert.False(t, pkgs["libfoo"].Installable())

	assert.Equal(t, types.PkgHost, pkgs["host-tool"].Type)
	assert.True(t, pkgs["host-tool"].Installable())
	assert.Equal(t, "host", pkgs["host-tool"].TypeName())
}

func TestFromShowInfoIdempotent(t *testing.T) {
	report := `{
		"a": {"type": "target", "dependencies": ["b", "c"]},
		"b": {"type": "target", "dependencies": ["c"]},
		"c": {"type": "host"}
	}`

	first, err := FromShowInfo(hclog.NewNullLogger(), decodeReport(t, report))
	require.NoError(t, err)
	second, err := FromShowInfo(hclog.NewNullLogger(), decodeReport(t, report))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFromShowInfoErrors(t *testing.T) {
	tests := []struct {
		name    string
		report  string
		wantErr string
	}{
		{
			name:    "unknown type value",
			report:  `{"badpkg": {"type": "weird"}}`,
			wantErr: "badpkg",
		},
		{
			name:    "missing type",
			report:  `{"badpkg": {"version": "1.0"}}`,
			wantErr: "missing `type` entry",
		},
		{
			name:    "mistyped version",
			report:  `{"badpkg": {"type": "target", "version": 42}}`,
			wantErr: "wrong `version` entry type",
		},
		{
			name:    "mistyped install flag",
			report:  `{"badpkg": {"type": "target", "install_target": "yes"}}`,
			wantErr: "wrong `install_target` entry type",
		},
		{
			name:    "mistyped dependencies",
			report:  `{"badpkg": {"type": "target", "dependencies": "libfoo"}}`,
			wantErr: "wrong `dependencies` entry type",
		},
		{
			name:    "mistyped dependency element",
			report:  `{"badpkg": {"type": "target", "dependencies": [1]}}`,
			wantErr: "wrong `dependencies` entry element type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromShowInfo(hclog.NewNullLogger(), decodeReport(t, tt.report))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "`badpkg` package:")
		})
	}
}

func TestFromShowInfoDefaults(t *testing.T) {
	report := `{"libfoo": {"type": "target", "version": ""}}`

	pkgs, err := FromShowInfo(hclog.NewNullLogger(), decodeReport(t, report))
	require.NoError(t, err)

	p := pkgs["libfoo"]
	require.NotNil(t, p)
	assert.Empty(t, p.Version)
	assert.False(t, p.Virtual)
	assert.Empty(t, p.Licenses)
	assert.Empty(t, p.DlDir)
	assert.Empty(t, p.Depends)
	assert.False(t, p.InstallTarget)
	assert.False(t, p.InstallStaging)
	assert.False(t, p.InstallImages)
}
