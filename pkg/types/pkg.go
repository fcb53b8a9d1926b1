package types

// A PkgType discriminates between the two package classes Buildroot
// knows about.
type PkgType string

// The package classes.  Target packages may ship to the produced
// image, host packages only ever run on the build machine.
const (
	PkgTarget PkgType = "target"
	PkgHost   PkgType = "host"
)

// A PkgInfo describes the static configuration of a single package as
// reported by show-info.  The package name is the natural key; the
// dependency list holds names which index back into the graph map.
type PkgInfo struct {
	Name     string
	Type     PkgType
	Virtual  bool
	Version  string
	Licenses string
	DlDir    string
	Depends  []string

	// Install destinations, meaningful for target packages only.
	InstallTarget  bool
	InstallStaging bool
	InstallImages  bool
}

// Installable returns whether this package installs anything anywhere
// once built.  Host packages are always considered installable.
func (p *PkgInfo) Installable() bool {
	if p.Type == PkgHost {
		return true
	}
	return p.InstallTarget || p.InstallStaging || p.InstallImages
}

// TypeName returns the show-info name for the package class.
func (p *PkgInfo) TypeName() string {
	return string(p.Type)
}
