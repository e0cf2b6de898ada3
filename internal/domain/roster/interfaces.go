package roster

import "iter"

// RegisterProvider defines read-only access to a register of names.
// This interface lets the presentation layer render a register without
// being able to mutate it, and allows fakes to be substituted in tests.
type RegisterProvider interface {
	// Capacity returns the maximum number of entries.
	Capacity() int

	// Size returns the current number of entries.
	Size() int

	// IsEmpty reports whether the register holds no entries.
	IsEmpty() bool

	// GetName returns the entry at index.
	// Returns ErrIndexOutOfRange if index is not a valid position.
	GetName(index int) (Name, error)

	// All iterates over (index, name) pairs in current order.
	All() iter.Seq2[int, Name]

	// Names iterates over the names in current order.
	Names() iter.Seq[Name]

	// Snapshot returns a copy of the current entries.
	Snapshot() []Name
}

// Compile-time check that Register implements RegisterProvider.
var _ RegisterProvider = (*Register)(nil)
