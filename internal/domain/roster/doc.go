// Package roster implements the domain layer for the name register.
//
// This package follows the same rules as the rest of the domain layer:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines value types (Name, Player) and the Register collection
//   - Has no knowledge of infrastructure concerns (file I/O, YAML parsing, output formatting)
//
// # Register
//
// Register is a capacity-bounded, ordered collection of Name values. It provides:
//   - AddName/AddNames with silent saturation: inserts past capacity are dropped, and a
//     batch that does not fit is rejected as a whole
//   - GetName/RemoveName positional access that fails with ErrIndexOutOfRange
//   - SearchByFirstNameInitial (case-sensitive) and CountFirstNameOccurrences (case-insensitive)
//   - Sort, a stable sort by the natural ordering of Name
//   - All/Names iterators over the current entries
//
// A Register is not safe for concurrent use. Callers serialize access themselves.
//
// RegisterProvider is the read-only view of a Register used by the presentation layer
// and by tests substituting a fake.
package roster
