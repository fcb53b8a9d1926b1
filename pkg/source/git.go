package source

import (
	git "github.com/go-git/go-git/v5"
	"github.com/hashicorp/go-hclog"
)

// New creates a new instance of RepoMngr
func New(l hclog.Logger) *RepoMngr {
	x := RepoMngr{
		l: l.Named("git"),
	}
	return &x
}

// Open attaches to the existing checkout at Path.
func (r *RepoMngr) Open() error {
	var err error
	if r.Path == "" {
		r.l.Warn("Error in repo manager, path must be set to open")
	}
	r.l.Debug("Opening repository", "path", r.Path)
	r.repo, err = git.PlainOpen(r.Path)
	if err != nil {
		r.l.Trace("Error running PlainOpen")
		return err
	}
	return nil
}

// At returns the current HEAD hash.
func (r *RepoMngr) At() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		r.l.Trace("Error getting HEAD")
		return "", err
	}
	return head.Hash().String(), nil
}
