package config

// Config represents the complete application configuration that
// brwatch supports.
type Config struct {
	// BuildrootDir is the Buildroot tree that show-info runs in.
	BuildrootDir string

	// BuildDir is where the per-package build directories live.
	BuildDir string

	// Bind is the address:port the status API serves on.
	Bind string

	// RefreshIntervalMS is how often the cached stages get
	// recomputed from disk, in milliseconds.
	RefreshIntervalMS int

	// Store names the storage factory used to persist graph
	// snapshots.  Empty disables persistence.
	Store string
}
