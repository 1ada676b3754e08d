package cli

import (
	"github.com/msgtrail/msgtrail/internal/crumb"
	"github.com/msgtrail/msgtrail/internal/store"
)

// newStore constructs the store for the resolved options without
// touching the disk.
func newStore(opts *RootOptions) *store.Store {
	j := crumb.New(opts.CrumbDir, opts.Log)
	return store.New(opts.Snapshot, j, opts.Log)
}

// openStore constructs the store and loads it, recovering any crumbs
// left behind by an unclean shutdown. This is the shared entry point
// for every command that works on the collection.
func openStore(opts *RootOptions) (*store.Store, error) {
	s := newStore(opts)
	if err := s.Load(); err != nil {
		return nil, mapLoadError(err)
	}
	return s, nil
}

// mapLoadError classifies a Load failure. Corrupt data means the files
// need manual attention; anything else is an I/O level failure that a
// retry might clear.
func mapLoadError(err error) error {
	if store.IsCorrupt(err) {
		return WrapExitError(ExitCommandError, ErrCodeCorrupt, "store data is corrupt", err)
	}
	return WrapExitError(ExitFailure, ErrCodeIO, "failed to load store", err)
}
