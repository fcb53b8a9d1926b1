package graph

import (
	"github.com/the-maldridge/brwatch/pkg/types"
)

// Pkgs returns the tracked package set keyed by name.
func (g *Graph) Pkgs() map[string]*types.PkgInfo {
	return g.atom.Pkgs
}

// Rev returns the checkout revision the current atom was imported
// from, if one was recorded.
func (g *Graph) Rev() string {
	return g.atom.Rev
}

// SetRev records the checkout revision the atom was imported from.
func (g *Graph) SetRev(rev string) {
	g.atom.Rev = rev
}
