package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/roster/internal/domain/roster"
	"github.com/zjrosen/roster/internal/log"
)

// EmailDomain is the domain appended to every generated address.
const EmailDomain = "email.com"

// replacedIndex is the register position swapped out for the incoming name.
const replacedIndex = 1

// familyPrefixLen is the number of family name characters used in an address.
const familyPrefixLen = 3

// ErrFamilyNameTooShort is returned when a family name has fewer runes than an address needs.
var ErrFamilyNameTooShort = errors.New("family name too short for email")

// GenerateEmails replaces the second entry of reg with name and returns one
// email address per entry whose first name contains an 'a' or an 'e'.
//
// The register is mutated before any address is built: removing index 1 fails
// with roster.ErrIndexOutOfRange when reg holds fewer than two names, and adding
// name is a silent no-op when reg is full. No partial output is returned on error.
func GenerateEmails(name roster.Name, reg *roster.Register) (string, error) {
	removed, err := reg.RemoveName(replacedIndex)
	if err != nil {
		return "", fmt.Errorf("replace entry %d: %w", replacedIndex, err)
	}
	reg.AddName(name)
	log.Debug(log.CatRoster, "Replaced register entry", "removed", removed, "added", name, "size", reg.Size())

	var b strings.Builder
	for i, n := range reg.All() {
		if !hasEmailVowel(n) {
			continue
		}
		email, err := FormatEmail(n)
		if err != nil {
			return "", fmt.Errorf("entry %d: %w", i, err)
		}
		b.WriteString(email)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func hasEmailVowel(n roster.Name) bool {
	return strings.ContainsAny(lower(n.FirstName()), "ae")
}

// FormatEmail builds "<first initial>.<first three letters of family name>@email.com", lowercased.
func FormatEmail(n roster.Name) (string, error) {
	first := []rune(lower(n.FirstName()))
	if len(first) == 0 {
		return "", fmt.Errorf("%w: %q", ErrEmptyFirstName, n.String())
	}
	family := []rune(n.FamilyName())
	if len(family) < familyPrefixLen {
		return "", fmt.Errorf("%w: %q has %d characters, need %d",
			ErrFamilyNameTooShort, n.FamilyName(), len(family), familyPrefixLen)
	}
	return fmt.Sprintf("%c.%s@%s", first[0], lower(string(family[:familyPrefixLen])), EmailDomain), nil
}
