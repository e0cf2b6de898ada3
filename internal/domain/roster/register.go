package roster

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultCapacity is the capacity of a register created without one.
const DefaultCapacity = 20

// Register errors
var (
	ErrIndexOutOfRange = errors.New("register index out of range")
)

// Register is a capacity-bounded, ordered collection of names.
type Register struct {
	capacity int
	names    []Name
}

// NewRegister creates an empty register holding at most capacity names.
// A non-positive capacity is accepted and admits no names.
func NewRegister(capacity int) *Register {
	return &Register{
		capacity: capacity,
		names:    make([]Name, 0),
	}
}

// NewDefaultRegister creates an empty register with DefaultCapacity.
func NewDefaultRegister() *Register {
	return NewRegister(DefaultCapacity)
}

// Capacity returns the room capacity of the register
func (r *Register) Capacity() int {
	return r.capacity
}

// AddName appends n if there is room left. A full register drops n silently.
func (r *Register) AddName(n Name) {
	if len(r.names) < r.capacity {
		r.names = append(r.names, n)
	}
}

// AddNames appends the whole batch if it fits, otherwise nothing is added.
func (r *Register) AddNames(ns ...Name) {
	if len(r.names)+len(ns) <= r.capacity {
		r.names = append(r.names, ns...)
	}
}

// RemoveName removes and returns the name at index, shifting later names left.
func (r *Register) RemoveName(index int) (Name, error) {
	if err := r.checkIndex(index); err != nil {
		return Name{}, err
	}
	removed := r.names[index]
	r.names = slices.Delete(r.names, index, index+1)
	return removed, nil
}

// GetName returns the name at index
func (r *Register) GetName(index int) (Name, error) {
	if err := r.checkIndex(index); err != nil {
		return Name{}, err
	}
	return r.names[index], nil
}

func (r *Register) checkIndex(index int) error {
	if index < 0 || index >= len(r.names) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, len(r.names))
	}
	return nil
}

// Size returns the number of names in the register
func (r *Register) Size() int {
	return len(r.names)
}

// Clear removes all names. The capacity is unchanged.
func (r *Register) Clear() {
	r.names = r.names[:0]
}

// IsEmpty reports whether the register holds no names
func (r *Register) IsEmpty() bool {
	return len(r.names) == 0
}

// SearchByFirstNameInitial reports whether any first name starts with c.
// The comparison is case-sensitive; callers normalize c themselves.
func (r *Register) SearchByFirstNameInitial(c rune) bool {
	for _, n := range r.names {
		first, size := utf8.DecodeRuneInString(n.FirstName())
		if size > 0 && first == c {
			return true
		}
	}
	return false
}

// CountFirstNameOccurrences counts the names whose first name equals target, ignoring case.
func (r *Register) CountFirstNameOccurrences(target string) int {
	count := 0
	for _, n := range r.names {
		if strings.EqualFold(n.FirstName(), target) {
			count++
		}
	}
	return count
}

// Sort orders the names by Name.Compare. Names that compare equal keep their relative order.
func (r *Register) Sort() {
	slices.SortStableFunc(r.names, Name.Compare)
}

// All iterates over (index, name) pairs in current order.
// Mutating the register during iteration is undefined.
func (r *Register) All() iter.Seq2[int, Name] {
	return func(yield func(int, Name) bool) {
		for i, n := range r.names {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Names iterates over the names in current order.
func (r *Register) Names() iter.Seq[Name] {
	return func(yield func(Name) bool) {
		for _, n := range r.names {
			if !yield(n) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the current names
func (r *Register) Snapshot() []Name {
	return slices.Clone(r.names)
}

// String renders the capacity and the names for debugging.
func (r *Register) String() string {
	parts := make([]string, len(r.names))
	for i, n := range r.names {
		parts[i] = n.String()
	}
	return fmt.Sprintf("Register:[Room capacity=%d, Names=[%s]]", r.capacity, strings.Join(parts, ", "))
}
