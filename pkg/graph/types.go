package graph

import (
	"github.com/hashicorp/go-hclog"

	"github.com/the-maldridge/brwatch/pkg/storage"
	"github.com/the-maldridge/brwatch/pkg/types"
)

// Graph owns the validated package graph imported from the Buildroot
// show-info report.  It is populated once by an import (or a load
// from storage) during startup and is read-only afterwards, so
// handlers and the monitor read it without locking.
type Graph struct {
	l hclog.Logger

	rootDir string

	atom types.Atom

	storage storage.Storage
}

// An Option configures a Graph during construction.
type Option func(*Graph)
