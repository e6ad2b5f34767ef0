package game

// Phase is the round lifecycle state.
type Phase int

const (
	PhasePlaying   Phase = iota
	PhaseEnding          // a death was detected this tick; bonus applied
	PhaseCountdown       // game-over hold before automatic reset
)

// SteerInput is one player's steering for a frame: a normalized [-1,1] turn
// contribution and whether the device produced any input at all.
type SteerInput struct {
	Turn   float64
	Active bool
}

// Session owns the entire simulation: both players, the hazards, the
// collectible, the scores, and the round phase. Render and input adapters
// only ever read it.
type Session struct {
	Players     [2]*Player
	Hazards     *HazardSystem
	Collectible Collectible

	Scores [2]int // collectible points + survivor bonuses, never reset
	Phase  Phase

	// Clock is accumulated simulation time; PhaseStart is the Clock value
	// when the current phase was entered. The countdown runs on these, not
	// on wall time.
	Clock      float64
	PhaseStart float64

	// FirstFrame requests the one-time score display at round start.
	FirstFrame bool

	rand *Rand
}

// NewSession creates the session in its round-start configuration with both
// scores at zero.
func NewSession(seed uint64) *Session {
	s := &Session{rand: NewRand(seed)}
	s.resetRound()
	return s
}

// resetRound reinstantiates everything except the scores: fresh mirrored
// players with empty trails, exactly one hazard with a rearmed spawn clock,
// and a new collectible.
func (s *Session) resetRound() {
	s.Players[PlayerOne] = NewPlayer(PlayerOne)
	s.Players[PlayerTwo] = NewPlayer(PlayerTwo)
	s.Hazards = NewHazardSystem(s.rand)
	s.Collectible = SpawnCollectible(s.rand)
	s.Phase = PhasePlaying
	s.PhaseStart = s.Clock
	s.FirstFrame = true
}

// Update advances the simulation by dt seconds under the given steering.
// One call is one tick of the frame loop.
func (s *Session) Update(dt float64, inputs [2]SteerInput) {
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	s.Clock += dt

	switch s.Phase {
	case PhasePlaying:
		s.tickPlaying(dt, inputs)
	case PhaseEnding:
		// One-tick transition state; the bonus was applied on entry.
		s.Phase = PhaseCountdown
	case PhaseCountdown:
		if s.Clock-s.PhaseStart > ResetCountdown {
			s.resetRound()
		}
	}
}

func (s *Session) tickPlaying(dt float64, inputs [2]SteerInput) {
	// Steering first: heading updates apply before the move is proposed.
	// Any active input lifts the invincibility window, turn or no turn.
	for i, p := range s.Players {
		if inputs[i].Active && p.Alive {
			p.HasMoved = true
			p.Steer(inputs[i].Turn, dt)
		}
	}

	for i, p := range s.Players {
		if !p.Alive {
			continue
		}

		nextPos := p.ProposedPos(dt)
		if p.WillDie {
			// The deferred kill lands: position and trail stayed frozen at
			// the last safe frame.
			p.Alive = false
			continue
		}
		if Lethal(nextPos, p, s.Players[p.ID.Other()], s.Hazards.Hazards) {
			// Flag now, die next tick; the lethal position is never
			// committed, so a dead player's position is always in bounds.
			p.WillDie = true
			continue
		}

		p.Pos = nextPos
		p.appendTrail(p.Pos)

		// Pickup is allowed while invincible.
		if s.Collectible.Hit(p.Pos) {
			s.Scores[i]++
			s.Collectible = SpawnCollectible(s.rand)
		}
	}

	s.Hazards.Update(dt, s.Players[:], s.rand)

	s.checkRoundEnd()
}

// checkRoundEnd detects deaths, awards the survivor bonus, and enters the
// ending phase. Exactly one death pays the opponent SurvivorBonus; a double
// death pays nobody.
func (s *Session) checkRoundEnd() {
	p1, p2 := s.Players[PlayerOne], s.Players[PlayerTwo]
	if p1.Alive && p2.Alive {
		return
	}
	if !p1.Alive && p2.Alive {
		s.Scores[PlayerTwo] += SurvivorBonus
	} else if !p2.Alive && p1.Alive {
		s.Scores[PlayerOne] += SurvivorBonus
	}
	s.Phase = PhaseEnding
	s.PhaseStart = s.Clock
}

// CountdownRemaining returns the whole seconds left before reset, for the
// game-over display. Zero when not counting down.
func (s *Session) CountdownRemaining() int {
	if s.Phase != PhaseEnding && s.Phase != PhaseCountdown {
		return 0
	}
	rem := int(ResetCountdown) - int(s.Clock-s.PhaseStart)
	if rem < 0 {
		rem = 0
	}
	return rem
}
