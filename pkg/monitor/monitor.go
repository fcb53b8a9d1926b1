package monitor

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/the-maldridge/brwatch/pkg/tracker"
	"github.com/the-maldridge/brwatch/pkg/types"
)

// New returns a monitor with no packages tracked.
func New(opts ...Option) *Monitor {
	m := Monitor{
		l:         hclog.NewNullLogger(),
		Mu:        new(sync.Mutex),
		buildRoot: "output/build",
		builds:    make(map[string]*tracker.Build),
		stages:    make(map[string]types.Stage),
	}
	for _, o := range opts {
		o(&m)
	}
	return &m
}

// SetPackages replaces the tracked package set.  Every cached stage
// resets to StageUnknown until the next Refresh.
func (m *Monitor) SetPackages(pkgs map[string]*types.PkgInfo) {
	m.builds = make(map[string]*tracker.Build, len(pkgs))
	m.stages = make(map[string]types.Stage, len(pkgs))
	for name, info := range pkgs {
		m.builds[name] = tracker.New(info, m.buildRoot)
		m.stages[name] = types.StageUnknown
	}
	m.l.Debug("Tracking packages", "count", len(pkgs))
}

// Builds returns the tracked builds keyed by package name.
func (m *Monitor) Builds() map[string]*tracker.Build {
	return m.builds
}

// Stage returns the cached stage for a tracked build.  Untracked
// builds report StageUnknown.
func (m *Monitor) Stage(b *tracker.Build) types.Stage {
	return m.stages[b.Info.Name]
}

// Refresh recomputes the stage of every tracked package from disk.
// The new stages are built into a fresh map and swapped in only once
// every probe succeeded, so a failed refresh leaves the cache exactly
// as it was.
func (m *Monitor) Refresh() error {
	stages := make(map[string]types.Stage, len(m.builds))
	for name, b := range m.builds {
		s, err := b.Stage()
		if err != nil {
			m.l.Error("Error probing build", "package", name, "error", err)
			return err
		}
		stages[name] = s
	}
	m.stages = stages
	return nil
}

// BuiltCount returns how many tracked packages have at least been
// built, per the cached stages.
func (m *Monitor) BuiltCount() int {
	count := 0
	for _, s := range m.stages {
		if s == types.StageBuilt || s == types.StageInstalled {
			count++
		}
	}
	return count
}

// InstalledCount returns how many tracked packages are installed, per
// the cached stages.
func (m *Monitor) InstalledCount() int {
	count := 0
	for _, s := range m.stages {
		if s == types.StageInstalled {
			count++
		}
	}
	return count
}
