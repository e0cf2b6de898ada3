package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/roster/internal/domain/roster"
	"github.com/zjrosen/roster/internal/log"
)

// ErrEmptyFirstName is returned for a roster entry or name without a first name.
var ErrEmptyFirstName = errors.New("first name cannot be empty")

// RosterFile is the root structure of a roster YAML file
type RosterFile struct {
	Capacity *int        `yaml:"capacity"` // Optional; the configured default is used when absent
	Names    []NameDef   `yaml:"names"`    // Entries for the register
	Players  []PlayerDef `yaml:"players"`  // Entries for the player filter
}

// NameDef defines a single name in YAML
type NameDef struct {
	FirstName  string `yaml:"first_name"`
	FamilyName string `yaml:"family_name"`
}

// PlayerDef defines a single player in YAML
type PlayerDef struct {
	FirstName  string `yaml:"first_name"`
	FamilyName string `yaml:"family_name"`
	GamerTag   string `yaml:"gamer_tag"`
}

// LoadRosterFile reads and parses the roster file at path.
func LoadRosterFile(path string) (*RosterFile, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is the user-selected roster file
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file, err := ParseRoster(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	log.Debug(log.CatLoader, "Loaded roster file", "path", path, "names", len(file.Names), "players", len(file.Players))
	return file, nil
}

// LoadRosterFromFS reads and parses a roster file from fsys.
func LoadRosterFromFS(fsys fs.FS, path string) (*RosterFile, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file, err := ParseRoster(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file, nil
}

// ParseRoster decodes roster YAML and validates every entry.
func ParseRoster(content []byte) (*RosterFile, error) {
	var file RosterFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}
	for i, def := range file.Names {
		if def.FirstName == "" {
			return nil, fmt.Errorf("names[%d]: %w", i, ErrEmptyFirstName)
		}
	}
	for i, def := range file.Players {
		if def.FirstName == "" {
			return nil, fmt.Errorf("players[%d]: %w", i, ErrEmptyFirstName)
		}
	}
	return &file, nil
}

// BuildRegister creates a register from the file's names.
// The file's capacity wins over defaultCapacity. Names past capacity are
// dropped by the register and reported at warn level.
func (f *RosterFile) BuildRegister(defaultCapacity int) *roster.Register {
	capacity := defaultCapacity
	if f.Capacity != nil {
		capacity = *f.Capacity
	}

	reg := roster.NewRegister(capacity)
	for _, def := range f.Names {
		reg.AddName(roster.NewName(def.FirstName, def.FamilyName))
	}

	if dropped := len(f.Names) - reg.Size(); dropped > 0 {
		log.Warn(log.CatLoader, "Register full, names dropped", "capacity", capacity, "dropped", dropped)
	}
	return reg
}

// BuildPlayers converts the file's player definitions to domain players.
func (f *RosterFile) BuildPlayers() []*roster.Player {
	players := make([]*roster.Player, 0, len(f.Players))
	for _, def := range f.Players {
		players = append(players, roster.NewPlayer(roster.NewName(def.FirstName, def.FamilyName), def.GamerTag))
	}
	return players
}
