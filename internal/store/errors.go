package store

import (
	"errors"
	"fmt"
)

// ErrEmpty reports rotation on an empty collection. It is a distinct
// condition so hosts can show "nothing to browse" rather than treat it
// as a failure.
var ErrEmpty = errors.New("collection is empty")

// CorruptError reports a snapshot or crumb that exists but cannot be
// decoded. Load aborts on it; the caller decides whether to start empty
// or stop.
type CorruptError struct {
	Path string // file that failed to decode
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt data in %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// IsCorrupt reports whether err is a CorruptError.
// Uses errors.As to handle wrapped errors.
func IsCorrupt(err error) bool {
	var ce *CorruptError
	return errors.As(err, &ce)
}
