// Package booking assembles immutable booking records step by step.  The
// builder accepts its fields in any order and any subset; whatever was set
// when Build is called becomes a frozen Record snapshot.
package booking

import "fmt"

// Record is a finished booking.  Every field is optional at construction
// time and absent fields render as the empty string.  A Record never
// changes after Build returns it.
//
// Fields:
//  movieTitle – title of the booked movie.
//  seatNumber – seat label such as "A1".
//  snackCombo – concession combo, free text.
type Record struct {
    movieTitle string // booked movie title
    seatNumber string // seat label
    snackCombo string // concession combo
}

// MovieTitle returns the booked movie title, empty when it was never set.
func (r Record) MovieTitle() string {
    return r.movieTitle
}

// SeatNumber returns the seat label, empty when it was never set.
func (r Record) SeatNumber() string {
    return r.seatNumber
}

// SnackCombo returns the concession combo, empty when it was never set.
func (r Record) SnackCombo() string {
    return r.snackCombo
}

// String renders the record in its canonical textual form.
func (r Record) String() string {
    return fmt.Sprintf("Movie: %s, Seat: %s, Snacks: %s", r.movieTitle, r.seatNumber, r.snackCombo)
}

// Builder collects booking fields incrementally.  Every setter returns the
// builder itself so calls chain in any order or subset.  Build may be
// called any number of times; each call snapshots the current field values
// into an independent Record, so records produced earlier are unaffected
// by later setter calls.  No field is required and no cross-field
// validation happens.
type Builder struct {
    movieTitle string
    seatNumber string
    snackCombo string
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
    return &Builder{}
}

// SetMovieTitle stores the movie title and returns the builder.
func (b *Builder) SetMovieTitle(s string) *Builder {
    b.movieTitle = s
    return b
}

// SetSeatNumber stores the seat label and returns the builder.
func (b *Builder) SetSeatNumber(s string) *Builder {
    b.seatNumber = s
    return b
}

// SetSnackCombo stores the concession combo and returns the builder.
func (b *Builder) SetSnackCombo(s string) *Builder {
    b.snackCombo = s
    return b
}

// Build materializes a Record from whatever fields were set so far.
func (b *Builder) Build() Record {
    return Record{
        movieTitle: b.movieTitle,
        seatNumber: b.seatNumber,
        snackCombo: b.snackCombo,
    }
}
