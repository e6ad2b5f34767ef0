package game

import "math"

// Hazard is an independently moving circle. Touching one is lethal, and its
// passage erases trail points, opening gaps in otherwise closed lines.
type Hazard struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
}

// HazardSystem owns the moving circles and their spawn clock.
type HazardSystem struct {
	Hazards    []Hazard
	SpawnTimer float64 // seconds since the last spawn, simulation time
}

// NewHazardSystem starts a round with exactly one hazard and a fresh clock.
func NewHazardSystem(r *Rand) *HazardSystem {
	hs := &HazardSystem{}
	hs.Hazards = append(hs.Hazards, spawnHazard(r))
	return hs
}

// spawnHazard picks a uniform in-bounds position and a random heading at
// constant speed.
func spawnHazard(r *Rand) Hazard {
	ang := r.RangeF(0, 2*math.Pi)
	return Hazard{
		Pos:    Vec2{X: r.RangeF(HazardSpawnInset, FieldWidth-HazardSpawnInset), Y: r.RangeF(HazardSpawnInset, FieldHeight-HazardSpawnInset)},
		Vel:    unitVec(ang).Scale(HazardSpeed),
		Radius: HazardRadius,
	}
}

// Update integrates hazard motion with boundary reflection, prunes both
// players' trails under each hazard, and spawns a new hazard once the clock
// passes HazardSpawnInterval.
func (hs *HazardSystem) Update(dt float64, players []*Player, r *Rand) {
	for i := range hs.Hazards {
		h := &hs.Hazards[i]
		h.Pos = h.Pos.Add(h.Vel.Scale(dt))

		// Reflect: negate the penetrating axis and clamp back in bounds.
		// Speed magnitude is untouched.
		if h.Pos.X-h.Radius < 0 || h.Pos.X+h.Radius > FieldWidth {
			h.Vel.X = -h.Vel.X
			h.Pos.X = clampF(h.Pos.X, h.Radius, FieldWidth-h.Radius)
		}
		if h.Pos.Y-h.Radius < 0 || h.Pos.Y+h.Radius > FieldHeight {
			h.Vel.Y = -h.Vel.Y
			h.Pos.Y = clampF(h.Pos.Y, h.Radius, FieldHeight-h.Radius)
		}

		for _, p := range players {
			p.Trail = pruneTrail(p.Trail, h.Pos, h.Radius)
		}
	}

	hs.SpawnTimer += dt
	if hs.SpawnTimer > HazardSpawnInterval {
		hs.Hazards = append(hs.Hazards, spawnHazard(r))
		hs.SpawnTimer = 0
	}
}
