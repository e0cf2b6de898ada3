package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/roster/internal/domain/roster"
)

func mkPlayer(first, family, tag string) *roster.Player {
	return roster.NewPlayer(roster.NewName(first, family), tag)
}

func TestFormatValidPlayers(t *testing.T) {
	players := []*roster.Player{
		mkPlayer("John", "Smith", "smith7"),
		mkPlayer("Amy", "Lee", "lee9"),
	}

	got := FormatValidPlayers(players, 7)

	require.Equal(t, "JOHN, smith\n", got)
}

func TestFormatValidPlayers_KeepsInputOrder(t *testing.T) {
	players := []*roster.Player{
		mkPlayer("zoe", "Young", "TheYoungOne42"),
		mkPlayer("Amy", "Lee", "xXLEEXx42"),
		mkPlayer("Bob", "Brown", "brown41"),
	}

	got := FormatValidPlayers(players, 42)

	require.Equal(t, "ZOE, young\nAMY, lee\n", got)
}

func TestFormatValidPlayers_Empty(t *testing.T) {
	require.Equal(t, "", FormatValidPlayers(nil, 7))
	require.Equal(t, "", FormatValidPlayers([]*roster.Player{nil}, 7))
}

func TestIsValidPlayer(t *testing.T) {
	tests := []struct {
		name   string
		player *roster.Player
		number int
		want   bool
	}{
		{"tag contains family and ends with number", mkPlayer("John", "Smith", "smith7"), 7, true},
		{"case-insensitive family match", mkPlayer("John", "SMITH", "xSmItHx7"), 7, true},
		{"family missing from tag", mkPlayer("John", "Smith", "jones7"), 7, false},
		{"wrong trailing number", mkPlayer("John", "Smith", "smith8"), 7, false},
		{"number not at end", mkPlayer("John", "Smith", "7smith"), 7, false},
		{"multi-digit number", mkPlayer("Amy", "Lee", "lee2024"), 2024, true},
		{"suffix of longer number", mkPlayer("Amy", "Lee", "lee17"), 7, true},
		{"negative number", mkPlayer("Amy", "Lee", "lee-3"), -3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsValidPlayer(tt.player, tt.number))
		})
	}
}

func TestFormatPlayerName(t *testing.T) {
	require.Equal(t, "JOHN, smith", FormatPlayerName(mkPlayer("John", "Smith", "")))
	require.Equal(t, "ÉMILE, zola", FormatPlayerName(mkPlayer("Émile", "ZOLA", "")))
}
