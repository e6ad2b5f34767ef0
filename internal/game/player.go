package game

// PlayerID indexes the two fixed player slots.
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

// Other returns the opposing player's ID.
func (id PlayerID) Other() PlayerID {
	return 1 - id
}

// Player is one duelist: a continuously moving point with a persistent trail.
type Player struct {
	ID    PlayerID
	Pos   Vec2
	Dir   Vec2 // unit heading
	Color RGB
	Trail []Vec2

	Alive bool

	// WillDie defers the kill by one frame so the current frame's collision
	// checks still see a consistent snapshot of this player.
	WillDie bool

	// HasMoved flips on the first nonzero steering input. Until then the
	// player is invincible to trail and hazard collision (walls still kill).
	HasMoved bool
}

// NewPlayer places a player at its fixed mirrored start: player one on the
// left heading right, player two on the right heading left, both on the
// horizontal midline.
func NewPlayer(id PlayerID) *Player {
	p := &Player{
		ID:    id,
		Pos:   Vec2{X: PlayerStartInset, Y: FieldHeight / 2},
		Dir:   Vec2{X: 1, Y: 0},
		Color: ColorP1,
		Alive: true,
	}
	if id == PlayerTwo {
		p.Pos.X = FieldWidth - PlayerStartInset
		p.Dir.X = -1
		p.Color = ColorP2
	}
	return p
}

// Steer rotates the heading by turn (normalized [-1,1]) at TurnRate. The
// invincibility window is lifted by the session when input arrives, not
// here: pressing both triggers steers nowhere but still counts as moving.
func (p *Player) Steer(turn, dt float64) {
	if !p.Alive || turn == 0 {
		return
	}
	p.Dir = unitVec(p.Dir.Angle() + turn*TurnRate*dt)
}

// ProposedPos is where the player would move this frame if nothing kills it.
func (p *Player) ProposedPos(dt float64) Vec2 {
	return p.Pos.Add(p.Dir.Scale(PlayerSpeed * dt))
}
