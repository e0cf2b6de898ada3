package roster

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers carry per-call state, so a fresh one is built for every conversion.

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
