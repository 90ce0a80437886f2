package schedule

import (
    "fmt" // fmt renders the textual form of a record

    "github.com/iliyamo/cinema-kit/internal/content" // catalogue items referenced by schedules
)

// Record is a screening slot: a movie reference plus a display time.  The
// first-created record acts as a template and Clone derives further records
// from it (a derived record can itself be cloned again).  The movie pointer
// is shared, never owned: a record does not manage the catalogue item's
// lifetime.
//
// Fields:
//  movie – shared reference into the catalogue; nil until set.
//  time  – display time label such as "18:00".
type Record struct {
    movie *content.Item // shared catalogue reference
    time  string        // display time label
}

// New returns an empty template record.
func New() *Record {
    return &Record{}
}

// SetMovie points the record at a catalogue item.  The item stays shared
// with whoever else holds it.
func (r *Record) SetMovie(m *content.Item) {
    r.movie = m
}

// Movie returns the referenced catalogue item, nil when unset.
func (r *Record) Movie() *content.Item {
    return r.movie
}

// SetTime stores the display time label.
func (r *Record) SetTime(t string) {
    r.time = t
}

// Time returns the display time label.
func (r *Record) Time() string {
    return r.time
}

// Clone derives a new record from r as a shallow copy: the time label is
// duplicated while the movie reference is shared.  After Clone the two
// records never alias each other's scalar state, but both point at the
// same catalogue item until one side reassigns its movie.  Cloning a
// record that does not exist is the one way duplication can fail; the
// error is returned to the caller instead of a null-like record.
func (r *Record) Clone() (*Record, error) {
    if r == nil {
        return nil, ErrNilRecord
    }
    dup := *r // time duplicated, movie pointer shared
    return &dup, nil
}

// Render returns the record's textual form, "Movie: {title}, Time: {time}".
// A record without a movie cannot be rendered; Render reports ErrNoMovie
// rather than dereferencing the absent reference or inventing a
// placeholder title.
func (r *Record) Render() (string, error) {
    if r.movie == nil {
        return "", ErrNoMovie
    }
    return fmt.Sprintf("Movie: %s, Time: %s", r.movie.Title(), r.time), nil
}
