// Package schedule derives screening slots from a template record.  This
// file defines the error values shared across the package.  These sentinel
// values allow callers to distinguish between failure scenarios with
// errors.Is instead of matching message text.  For example, ErrNilRecord
// signals that a duplication had no source to copy, while ErrNoMovie
// signals that a record cannot be rendered yet.
package schedule

import "errors"

// ErrNilRecord is returned by Clone when the source record does not exist.
// Callers receive this error instead of a null-like record so a failed
// duplication cannot be mistaken for a usable result.
var ErrNilRecord = errors.New("cannot clone a nil schedule record")

// ErrNoMovie is returned by Render when no movie has been assigned to the
// record.  Rendering never substitutes a placeholder title; callers should
// assign a movie via SetMovie and render again.
var ErrNoMovie = errors.New("schedule record has no movie set")
