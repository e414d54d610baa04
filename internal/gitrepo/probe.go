// Package gitrepo implements the native adapter's is_repo /
// has_tracking_marker operations on top of go-git, grounded on the
// teacher's internal/git package. Both probes are benign-default: a
// missing or corrupt repository makes both report false, and a commit-less
// one makes HasTrackingMarker report false, rather than surfacing an error,
// matching the adapter contract (spec §4.1).
package gitrepo

import (
	"github.com/go-git/go-git/v5"
)

// IsRepo reports whether root is the working tree of a Git repository.
func IsRepo(root string) bool {
	_, err := git.PlainOpen(root)
	return err == nil
}

// HasTrackingMarker reports whether root's repository HEAD resolves to a
// commit. A repository that exists but has no commits yet (a bare `git
// init` with nothing committed) is not considered "tracked".
func HasTrackingMarker(root string) bool {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return false
	}
	ref, err := repo.Head()
	if err != nil {
		return false
	}
	return !ref.Hash().IsZero()
}
