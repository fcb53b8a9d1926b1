package graph

import (
	"github.com/hashicorp/go-hclog"

	"github.com/the-maldridge/brwatch/pkg/storage"
)

// WithLogger sets up the logging instance for the graph.
func WithLogger(l hclog.Logger) Option {
	return func(g *Graph) {
		g.l = l.Named("graph")
	}
}

// WithRootDir points the graph at the Buildroot tree that show-info
// will be run in.
func WithRootDir(d string) Option {
	return func(g *Graph) {
		g.rootDir = d
	}
}

// WithStorage enables persistence of the graph atom to a durable
// datastore.  If not set, atoms are neither persisted nor loaded.
func WithStorage(s storage.Storage) Option {
	return func(g *Graph) {
		g.storage = s
	}
}
