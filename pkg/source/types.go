package source

import (
	git "github.com/go-git/go-git/v5"
	"github.com/hashicorp/go-hclog"
)

// A RepoMngr reports on the git checkout a Buildroot tree lives in.
// The checkout is never written to, only inspected.
type RepoMngr struct {
	l    hclog.Logger
	Path string
	repo *git.Repository
}
