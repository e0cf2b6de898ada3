package roster

// Player is a named participant with a gamer tag.
type Player struct {
	name     Name
	gamerTag string
}

// NewPlayer creates a player
func NewPlayer(name Name, gamerTag string) *Player {
	return &Player{
		name:     name,
		gamerTag: gamerTag,
	}
}

// Name returns the player's name
func (p *Player) Name() Name {
	return p.name
}

// GamerTag returns the free-text gamer tag
func (p *Player) GamerTag() string {
	return p.gamerTag
}
