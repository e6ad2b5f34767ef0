package game

import (
	"math"
	"testing"
)

func hazardSpeed(h Hazard) float64 {
	return math.Hypot(h.Vel.X, h.Vel.Y)
}

func TestHazardReflectionKeepsSpeed(t *testing.T) {
	r := NewRand(7)
	players := []*Player{NewPlayer(PlayerOne), NewPlayer(PlayerTwo)}

	hs := &HazardSystem{Hazards: []Hazard{{
		Pos:    Vec2{X: HazardRadius + 2, Y: 400},
		Vel:    Vec2{X: -HazardSpeed, Y: 0},
		Radius: HazardRadius,
	}}}

	before := hazardSpeed(hs.Hazards[0])
	hs.Update(0.05, players, r)
	h := hs.Hazards[0]

	if h.Vel.X <= 0 {
		t.Errorf("x velocity not reflected: %f", h.Vel.X)
	}
	if got := hazardSpeed(h); math.Abs(got-before) > 1e-9 {
		t.Errorf("speed changed across reflection: %f -> %f", before, got)
	}
	if h.Pos.X < h.Radius || h.Pos.X > FieldWidth-h.Radius {
		t.Errorf("position not clamped back in bounds: %f", h.Pos.X)
	}
}

func TestHazardReflectionBothAxes(t *testing.T) {
	r := NewRand(7)
	players := []*Player{NewPlayer(PlayerOne), NewPlayer(PlayerTwo)}

	hs := &HazardSystem{Hazards: []Hazard{{
		Pos:    Vec2{X: FieldWidth - HazardRadius - 1, Y: FieldHeight - HazardRadius - 1},
		Vel:    unitVec(math.Pi / 4).Scale(HazardSpeed),
		Radius: HazardRadius,
	}}}
	before := hazardSpeed(hs.Hazards[0])

	hs.Update(0.05, players, r)
	h := hs.Hazards[0]
	if h.Vel.X >= 0 || h.Vel.Y >= 0 {
		t.Errorf("corner hit should reflect both axes: vel %+v", h.Vel)
	}
	if got := hazardSpeed(h); math.Abs(got-before) > 1e-9 {
		t.Errorf("speed changed across corner reflection: %f -> %f", before, got)
	}
}

func TestSpawnTimerAddsHazardAndRearms(t *testing.T) {
	r := NewRand(11)
	players := []*Player{NewPlayer(PlayerOne), NewPlayer(PlayerTwo)}

	hs := NewHazardSystem(r)
	hs.Hazards = append(hs.Hazards, spawnHazard(r)) // two circles in play
	hs.SpawnTimer = HazardSpawnInterval

	hs.Update(0.05, players, r)

	if got := len(hs.Hazards); got != 3 {
		t.Fatalf("hazards after spawn tick = %d, want 3", got)
	}
	if hs.SpawnTimer != 0 {
		t.Errorf("spawn timer not rearmed: %f", hs.SpawnTimer)
	}
	spawned := hs.Hazards[2]
	if spawned.Pos.X < HazardSpawnInset || spawned.Pos.X > FieldWidth-HazardSpawnInset ||
		spawned.Pos.Y < HazardSpawnInset || spawned.Pos.Y > FieldHeight-HazardSpawnInset {
		t.Errorf("spawned hazard out of bounds: %+v", spawned.Pos)
	}
	if got := hazardSpeed(spawned); math.Abs(got-HazardSpeed) > 1e-9 {
		t.Errorf("spawned hazard speed = %f, want %f", got, HazardSpeed)
	}
	if spawned.Radius != HazardRadius {
		t.Errorf("spawned hazard radius = %f, want %d", spawned.Radius, HazardRadius)
	}
}

func TestHazardEatsTrailOnArrival(t *testing.T) {
	r := NewRand(3)
	p1, p2 := NewPlayer(PlayerOne), NewPlayer(PlayerTwo)
	players := []*Player{p1, p2}

	// Vertical trail in the hazard's path, just outside its radius.
	for y := 200.0; y <= 800; y += 5 {
		p2.Trail = append(p2.Trail, Vec2{X: 600, Y: y})
	}
	n := len(p2.Trail)

	hs := &HazardSystem{Hazards: []Hazard{{
		Pos:    Vec2{X: 600 - HazardRadius - 10, Y: 500},
		Vel:    Vec2{X: HazardSpeed, Y: 0},
		Radius: HazardRadius,
	}}}

	// One tick carries the hazard 15 px forward, onto the trail.
	hs.Update(0.05, players, r)

	if len(p2.Trail) >= n {
		t.Fatalf("trail not pruned when the hazard reached it: %d >= %d", len(p2.Trail), n)
	}

	// The opened gap is no longer lethal for the other player.
	p1.HasMoved = true
	if Lethal(hs.Hazards[0].Pos, p1, p2, nil) {
		t.Errorf("pruned gap still reported as a trail hit")
	}
}
