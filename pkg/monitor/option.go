package monitor

import (
	"github.com/hashicorp/go-hclog"
)

// WithLogger sets up the logging instance for the monitor.
func WithLogger(l hclog.Logger) Option {
	return func(m *Monitor) {
		m.l = l.Named("monitor")
	}
}

// WithBuildRoot points the monitor at the Buildroot output build
// directory that every package build directory lives under.
func WithBuildRoot(d string) Option {
	return func(m *Monitor) {
		m.buildRoot = d
	}
}
