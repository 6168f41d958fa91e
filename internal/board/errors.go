package board

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange    = errors.New("reorder index out of range")
	ErrInvalidView        = errors.New("invalid view")
	ErrInvalidStatsFilter = errors.New("invalid stats filter")
)

// LoadErrorKind says which step of restoring a snapshot failed.
type LoadErrorKind string

const (
	LoadErrorRead    LoadErrorKind = "read"
	LoadErrorDecode  LoadErrorKind = "decode"
	LoadErrorVersion LoadErrorKind = "version"
)

// LoadError describes a snapshot the board could not restore. The board recovers with an
// empty list; the error is only kept for diagnostics.
type LoadError struct {
	Kind LoadErrorKind
	Key  string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Key, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
