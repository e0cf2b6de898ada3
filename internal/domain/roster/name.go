package roster

import "strings"

// Name is a person's first and family name.
type Name struct {
	firstName  string
	familyName string
}

// NewName creates a name value.
func NewName(firstName, familyName string) Name {
	return Name{
		firstName:  firstName,
		familyName: familyName,
	}
}

// FirstName returns the first name
func (n Name) FirstName() string {
	return n.firstName
}

// FamilyName returns the family name
func (n Name) FamilyName() string {
	return n.familyName
}

// Compare orders names by family name, then by first name.
// Both fields are compared case-sensitively.
func (n Name) Compare(other Name) int {
	if c := strings.Compare(n.familyName, other.familyName); c != 0 {
		return c
	}
	return strings.Compare(n.firstName, other.firstName)
}

// String renders the name as "First Family".
func (n Name) String() string {
	return n.firstName + " " + n.familyName
}
