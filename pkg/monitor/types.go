package monitor

import (
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/the-maldridge/brwatch/pkg/tracker"
	"github.com/the-maldridge/brwatch/pkg/types"
)

// Monitor owns one Build per tracked package and caches the last
// stage computed for each.  Reads are cheap map lookups; only Refresh
// touches the filesystem, so the caller decides how often disk gets
// probed independently of how often status gets read.
//
// The monitor takes no locks of its own.  Mu is carried for callers
// that drive it from more than one goroutine (the HTTP handlers and
// the refresh loop); a single threaded caller can ignore it.
type Monitor struct {
	l hclog.Logger

	Mu *sync.Mutex

	buildRoot string

	builds map[string]*tracker.Build
	stages map[string]types.Stage
}

// An Option configures a Monitor during construction.
type Option func(*Monitor)
