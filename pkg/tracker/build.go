package tracker

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/the-maldridge/brwatch/pkg/types"
)

// stampPrefix is the marker file prefix Buildroot writes into a
// package build directory as each build action completes.
const stampPrefix = ".stamp_"

// A Build binds one package record to its on-disk build directory and
// infers the current build stage from the stamp files present there.
// It has no mutable state of its own; every query re-probes the
// filesystem.
type Build struct {
	Info *types.PkgInfo

	BuildDir string
}

// New returns a Build for the given record.  The build directory is
// derived from the build root as <name> or <name>-<version> when the
// record carries a version.
func New(info *types.PkgInfo, buildRoot string) *Build {
	dir := info.Name
	if info.Version != "" {
		dir += "-" + info.Version
	}
	return &Build{
		Info:     info,
		BuildDir: filepath.Join(buildRoot, dir),
	}
}

// Stamps returns the set of stamp tokens currently present in the
// build directory, stripped of their prefix.  A missing directory
// means no stamps, not an error; anything else the filesystem throws
// propagates to the caller.
func (b *Build) Stamps() (map[string]struct{}, error) {
	stamps := make(map[string]struct{})

	files, err := ioutil.ReadDir(b.BuildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return stamps, nil
		}
		return nil, err
	}

	for _, f := range files {
		if strings.HasPrefix(f.Name(), stampPrefix) {
			stamps[strings.TrimPrefix(f.Name(), stampPrefix)] = struct{}{}
		}
	}
	return stamps, nil
}

// Stage resolves the current build stage from the stamp set, checking
// the most advanced stage first and falling through to StageUnknown
// when nothing matches.  Checks are independent: a later stamp is
// never assumed to imply an earlier one.
func (b *Build) Stage() (types.Stage, error) {
	stamps, err := b.Stamps()
	if err != nil {
		return types.StageUnknown, err
	}

	if b.installed(stamps) {
		return types.StageInstalled, nil
	}

	order := []struct {
		token string
		stage types.Stage
	}{
		{"built", types.StageBuilt},
		{"configured", types.StageConfigured},
		{"patched", types.StagePatched},
		{"extracted", types.StageExtracted},
		{"downloaded", types.StageDownloaded},
	}
	for _, c := range order {
		if _, ok := stamps[c.token]; ok {
			return c.stage, nil
		}
	}
	return types.StageUnknown, nil
}

// installed is special-cased by package class: a target package is
// installed when any of its configured install destinations has its
// matching stamp, a host package when the host install stamp exists.
func (b *Build) installed(stamps map[string]struct{}) bool {
	has := func(token string) bool {
		_, ok := stamps[token]
		return ok
	}

	if b.Info.Type == types.PkgHost {
		return has("host_installed")
	}

	if b.Info.InstallTarget && has("target_installed") {
		return true
	}
	if b.Info.InstallStaging && has("staging_installed") {
		return true
	}
	if b.Info.InstallImages && has("images_installed") {
		return true
	}
	return false
}
