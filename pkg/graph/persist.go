package graph

import (
	"encoding/json"

	"github.com/klauspost/compress/zstd"

	"github.com/the-maldridge/brwatch/pkg/types"
)

var atomKey = []byte("graph/atom")

// Load restores the last persisted atom from storage.  With no
// storage configured, or nothing persisted yet, the graph is left
// empty and no error is returned.
func (g *Graph) Load() error {
	if g.storage == nil {
		g.l.Warn("Storage is unavailable, graph will not be loaded")
		return nil
	}

	b, err := g.storage.Get(atomKey)
	if err != nil {
		g.l.Warn("Error loading graph", "error", err)
		return err
	}
	if b == nil {
		return nil
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(b, nil)
	if err != nil {
		g.l.Warn("Error decompressing graph", "error", err)
		return err
	}

	atom := types.Atom{}
	if err := json.Unmarshal(raw, &atom); err != nil {
		g.l.Warn("Error unmarshalling graph", "error", err)
		return err
	}
	if atom.Pkgs == nil {
		atom.Pkgs = make(map[string]*types.PkgInfo)
	}
	g.atom = atom
	g.l.Debug("Loaded graph", "count", len(atom.Pkgs), "rev", atom.Rev)
	return nil
}

// Persist writes the current atom to storage, zstd compressed.  With
// no storage configured this is a no-op.
func (g *Graph) Persist() error {
	if g.storage == nil {
		return nil
	}

	raw, err := json.Marshal(g.atom)
	if err != nil {
		g.l.Warn("Error serializing graph", "error", err)
		return err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	b := enc.EncodeAll(raw, nil)
	enc.Close()

	if err := g.storage.Put(atomKey, b); err != nil {
		g.l.Warn("Error writing graph", "error", err)
		return err
	}
	return nil
}
