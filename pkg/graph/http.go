package graph

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HTTPEntry provides the mountpoint for this service into the shared
// webserver routing tree.
func (g *Graph) HTTPEntry() chi.Router {
	r := chi.NewRouter()

	r.Get("/atom", g.httpDumpAtom)
	r.Get("/pkgs/{pkg}", g.httpDumpPkg)

	return r
}

func (g *Graph) httpDumpAtom(w http.ResponseWriter, r *http.Request) {
	enc := json.NewEncoder(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc.Encode(g.atom)
}

func (g *Graph) httpDumpPkg(w http.ResponseWriter, r *http.Request) {
	pkg, ok := g.atom.Pkgs[chi.URLParam(r, "pkg")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	enc := json.NewEncoder(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc.Encode(pkg)
}
