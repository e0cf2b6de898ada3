package roster

import (
	"strconv"
	"strings"

	"github.com/zjrosen/roster/internal/domain/roster"
)

// FormatValidPlayers returns one "FIRST, family" line per valid player, in input order.
// Each line ends with a newline; an empty string means no player qualified.
func FormatValidPlayers(players []*roster.Player, number int) string {
	var b strings.Builder
	for _, p := range players {
		if p == nil || !IsValidPlayer(p, number) {
			continue
		}
		b.WriteString(FormatPlayerName(p))
		b.WriteString("\n")
	}
	return b.String()
}

// IsValidPlayer reports whether the gamer tag contains the family name and ends with number.
// Both checks ignore case.
func IsValidPlayer(p *roster.Player, number int) bool {
	familyName := lower(p.Name().FamilyName())
	gamerTag := lower(p.GamerTag())
	return strings.Contains(gamerTag, familyName) && strings.HasSuffix(gamerTag, strconv.Itoa(number))
}

// FormatPlayerName renders the player as "<FIRST NAME>, <family name>".
func FormatPlayerName(p *roster.Player) string {
	return upper(p.Name().FirstName()) + ", " + lower(p.Name().FamilyName())
}
