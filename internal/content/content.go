// Package content creates the variants of the movie catalogue. An Item is
// immutable once a factory has produced it, so schedules and bookings can
// share references to the same entry without coordinating writes.
package content

// Kind labels distinguish the catalogue item variants.  The label is part
// of the public contract: callers branch on the exact string.
const (
    KindStandard = "Standard"      // regular screening format
    KindPremium  = "PremiumFormat" // large-format premium screening
)

// Item is one entry of the movie catalogue.  Both fields are assigned by a
// Factory and only exposed through accessors; an Item never changes after
// creation.
//
// Fields:
//  title – movie title, stored verbatim.
//  kind  – variant label, one of the Kind constants above.
type Item struct {
    title string // movie title exactly as given
    kind  string // variant label
}

// Title returns the movie title exactly as it was given to the factory,
// including the empty string.
func (i Item) Title() string {
    return i.title
}

// Kind returns the variant label of the item.
func (i Item) Kind() string {
    return i.kind
}

// Factory creates catalogue items of one fixed variant.  Each concrete
// factory is hard-bound to a single Kind; adding a new variant means adding
// a new factory type while the existing ones stay untouched.  CreateItem
// has no error conditions, any title is accepted verbatim.
type Factory interface {
    CreateItem(title string) Item
}

// StandardFactory creates Standard catalogue items.
type StandardFactory struct{}

// CreateItem returns a Standard item carrying the given title.
func (StandardFactory) CreateItem(title string) Item {
    return Item{title: title, kind: KindStandard}
}

// PremiumFactory creates PremiumFormat catalogue items.
type PremiumFactory struct{}

// CreateItem returns a PremiumFormat item carrying the given title.
func (PremiumFactory) CreateItem(title string) Item {
    return Item{title: title, kind: KindPremium}
}
