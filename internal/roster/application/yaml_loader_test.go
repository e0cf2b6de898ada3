package roster

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/roster/internal/domain/roster"
)

const sampleRoster = `
capacity: 3
names:
  - first_name: Bob
    family_name: Brown
  - first_name: Eve
    family_name: Adams
players:
  - first_name: John
    family_name: Smith
    gamer_tag: smith7
  - first_name: Amy
    family_name: Lee
    gamer_tag: lee9
`

func TestParseRoster(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantNames   int
		wantPlayers int
		wantErr     error
		errContains string
	}{
		{
			name:        "valid roster",
			yamlContent: sampleRoster,
			wantNames:   2,
			wantPlayers: 2,
		},
		{
			name:        "empty document",
			yamlContent: "",
		},
		{
			name: "name without first name",
			yamlContent: `
names:
  - family_name: Brown
`,
			wantErr:     ErrEmptyFirstName,
			errContains: "names[0]",
		},
		{
			name: "player without first name",
			yamlContent: `
players:
  - first_name: John
    family_name: Smith
  - family_name: Lee
    gamer_tag: lee9
`,
			wantErr:     ErrEmptyFirstName,
			errContains: "players[1]",
		},
		{
			name:        "invalid yaml",
			yamlContent: "names: [",
			errContains: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := ParseRoster([]byte(tt.yamlContent))
			if tt.errContains != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.errContains)
				if tt.wantErr != nil {
					require.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			require.Len(t, file.Names, tt.wantNames)
			require.Len(t, file.Players, tt.wantPlayers)
		})
	}
}

func TestRosterFile_BuildRegister(t *testing.T) {
	file, err := ParseRoster([]byte(sampleRoster))
	require.NoError(t, err)

	reg := file.BuildRegister(20)

	require.Equal(t, 3, reg.Capacity(), "file capacity wins over default")
	require.Equal(t, []roster.Name{
		roster.NewName("Bob", "Brown"),
		roster.NewName("Eve", "Adams"),
	}, reg.Snapshot())
}

func TestRosterFile_BuildRegister_DefaultCapacity(t *testing.T) {
	file, err := ParseRoster([]byte(`
names:
  - first_name: Bob
    family_name: Brown
  - first_name: Eve
    family_name: Adams
  - first_name: Ana
    family_name: Evans
`))
	require.NoError(t, err)

	reg := file.BuildRegister(2)

	require.Equal(t, 2, reg.Capacity())
	require.Equal(t, 2, reg.Size(), "names past capacity are dropped")
}

func TestRosterFile_BuildRegister_ZeroCapacityInFile(t *testing.T) {
	file, err := ParseRoster([]byte("capacity: 0\nnames:\n  - first_name: Bob\n    family_name: Brown\n"))
	require.NoError(t, err)

	reg := file.BuildRegister(20)

	require.Equal(t, 0, reg.Capacity())
	require.True(t, reg.IsEmpty())
}

func TestRosterFile_BuildPlayers(t *testing.T) {
	file, err := ParseRoster([]byte(sampleRoster))
	require.NoError(t, err)

	players := file.BuildPlayers()

	require.Len(t, players, 2)
	require.Equal(t, roster.NewName("John", "Smith"), players[0].Name())
	require.Equal(t, "smith7", players[0].GamerTag())
	require.Equal(t, "JOHN, smith\n", FormatValidPlayers(players, 7))
}

func TestLoadRosterFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"rosters/team.yaml": &fstest.MapFile{Data: []byte(sampleRoster)},
	}

	file, err := LoadRosterFromFS(fsys, "rosters/team.yaml")
	require.NoError(t, err)
	require.Len(t, file.Names, 2)

	_, err = LoadRosterFromFS(fsys, "rosters/missing.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "read rosters/missing.yaml")
}

func TestLoadRosterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRoster), 0o600))

	file, err := LoadRosterFile(path)
	require.NoError(t, err)
	require.NotNil(t, file.Capacity)
	require.Equal(t, 3, *file.Capacity)

	_, err = LoadRosterFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
