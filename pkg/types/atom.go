package types

// An Atom is a complete graph snapshot: every tracked package plus
// the revision of the Buildroot checkout it was imported from.  Atoms
// round-trip through the storage layer so a restart doesn't need to
// re-run show-info.
type Atom struct {
	Pkgs map[string]*PkgInfo
	Rev  string
}
