package types

import (
	"fmt"
)

// A Stage is one point in a package's build progress.  Stages are
// ordered: a larger value means the build is further along.
type Stage int

// The stages a package build moves through, least advanced first.
const (
	StageUnknown Stage = iota
	StageDownloaded
	StageExtracted
	StagePatched
	StageConfigured
	StageBuilt
	StageInstalled
)

var stageNames = map[Stage]string{
	StageUnknown:    "unknown",
	StageDownloaded: "downloaded",
	StageExtracted:  "extracted",
	StagePatched:    "patched",
	StageConfigured: "configured",
	StageBuilt:      "built",
	StageInstalled:  "installed",
}

func (s Stage) String() string {
	n, ok := stageNames[s]
	if !ok {
		return "unknown"
	}
	return n
}

// MarshalText encodes the stage by name so that JSON dumps stay
// readable for the consumers of the status API.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (s *Stage) UnmarshalText(b []byte) error {
	for stage, name := range stageNames {
		if name == string(b) {
			*s = stage
			return nil
		}
	}
	return fmt.Errorf("unknown stage: %q", string(b))
}
