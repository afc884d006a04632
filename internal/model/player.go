package model

// Player is the human owner of a game.
type Player struct {
	ID   string
	Side Side
}

type ClientPlayer struct {
	ID    string `json:"name"`
	Color string `json:"color"`
}

func (p Player) Client() ClientPlayer {
	return ClientPlayer{ID: p.ID, Color: p.Side.String()}
}
