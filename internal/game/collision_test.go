package game

import "testing"

func testPlayers() (*Player, *Player) {
	p := NewPlayer(PlayerOne)
	o := NewPlayer(PlayerTwo)
	return p, o
}

func TestWallIsLethalRegardlessOfInvincibility(t *testing.T) {
	p, o := testPlayers()
	if p.HasMoved {
		t.Fatalf("fresh player should still be invincible")
	}
	cases := []Vec2{
		{X: -1, Y: 100},
		{X: FieldWidth + 1, Y: 100},
		{X: 100, Y: -1},
		{X: 100, Y: FieldHeight + 1},
	}
	for _, pos := range cases {
		if !Lethal(pos, p, o, nil) {
			t.Errorf("wall position %+v not lethal", pos)
		}
	}
}

func TestInvincibilitySkipsTrailAndHazard(t *testing.T) {
	p, o := testPlayers()
	pos := Vec2{X: 500, Y: 500}
	o.Trail = []Vec2{{X: 495, Y: 500}, {X: 505, Y: 500}}
	hazards := []Hazard{{Pos: pos, Radius: HazardRadius}}

	if Lethal(pos, p, o, hazards) {
		t.Errorf("pre-movement player died to trail/hazard")
	}
	p.HasMoved = true
	if !Lethal(pos, p, o, hazards) {
		t.Errorf("moved player survived a trail and a hazard on top of it")
	}
}

func TestOpponentTrailSegmentIsLethal(t *testing.T) {
	p, o := testPlayers()
	p.HasMoved = true
	o.Trail = []Vec2{{X: 490, Y: 500}, {X: 500, Y: 500}, {X: 510, Y: 500}}

	// 2 px above the middle of a segment: inside CollisionRadius.
	if !Lethal(Vec2{X: 495, Y: 502}, p, o, nil) {
		t.Errorf("candidate near the segment interior not lethal")
	}
	// Well clear of the trail.
	if Lethal(Vec2{X: 495, Y: 520}, p, o, nil) {
		t.Errorf("candidate far from the trail reported lethal")
	}
}

func TestProjectionOutsideSegmentIsSkipped(t *testing.T) {
	p, o := testPlayers()
	p.HasMoved = true
	// Single segment; candidate sits past endpoint b, within CollisionRadius
	// of b but with projection t > 1, which the resolver must skip.
	o.Trail = []Vec2{{X: 100, Y: 100}, {X: 110, Y: 100}}

	if Lethal(Vec2{X: 113, Y: 100}, p, o, nil) {
		t.Errorf("projection past the segment end was not skipped")
	}
	if Lethal(Vec2{X: 97, Y: 100}, p, o, nil) {
		t.Errorf("projection before the segment start was not skipped")
	}
	if !Lethal(Vec2{X: 105, Y: 101}, p, o, nil) {
		t.Errorf("interior of the same segment not lethal")
	}
}

func TestOwnTrailSuffixIsExcluded(t *testing.T) {
	p, o := testPlayers()
	p.HasMoved = true

	// Straight trail toward the head; the candidate rides right on top of
	// the freshest points.
	p.Trail = nil
	for i := 0; i < 10; i++ {
		p.Trail = append(p.Trail, Vec2{X: 500 + float64(i)*3, Y: 500})
	}
	head := Vec2{X: 530, Y: 500}

	if Lethal(head, p, o, nil) {
		t.Fatalf("head collided with its own freshly laid suffix")
	}

	// An older stretch of the same trail still kills.
	if !Lethal(Vec2{X: 503, Y: 501}, p, o, nil) {
		t.Errorf("old own-trail segment not lethal")
	}
}

func TestHazardDistanceCheck(t *testing.T) {
	p, o := testPlayers()
	p.HasMoved = true
	h := []Hazard{{Pos: Vec2{X: 800, Y: 400}, Radius: HazardRadius}}
	kill := HazardRadius + float64(CollisionProbe)/2

	if !Lethal(Vec2{X: 800 + kill - 1, Y: 400}, p, o, h) {
		t.Errorf("candidate inside hazard kill radius not lethal")
	}
	if Lethal(Vec2{X: 800 + kill + 1, Y: 400}, p, o, h) {
		t.Errorf("candidate outside hazard kill radius reported lethal")
	}
}

func TestPrunedGapIsNotLethal(t *testing.T) {
	p, o := testPlayers()
	p.HasMoved = true

	// Long straight trail, then a hazard eats the middle out of it.
	for x := 100.0; x <= 700; x += 5 {
		o.Trail = append(o.Trail, Vec2{X: x, Y: 300})
	}
	center := Vec2{X: 400, Y: 300}
	o.Trail = pruneTrail(o.Trail, center, HazardRadius)

	// The survivors flanking the gap sit HazardRadius away on either side,
	// far beyond TrailSegmentMaxLen, so the gap must be passable.
	if Lethal(center, p, o, nil) {
		t.Errorf("resolver reports a segment through the pruned gap")
	}
	// The remaining trail on each side is still a wall.
	if !Lethal(Vec2{X: 150, Y: 301}, p, o, nil) {
		t.Errorf("trail left of the gap no longer lethal")
	}
	if !Lethal(Vec2{X: 650, Y: 301}, p, o, nil) {
		t.Errorf("trail right of the gap no longer lethal")
	}
}

func TestSegDistSq(t *testing.T) {
	a := Vec2{X: 0, Y: 0}
	b := Vec2{X: 10, Y: 0}

	d2, ok := segDistSq(Vec2{X: 5, Y: 3}, a, b)
	if !ok || d2 != 9 {
		t.Errorf("interior projection: d2=%f ok=%v, want 9 true", d2, ok)
	}
	if _, ok := segDistSq(Vec2{X: 12, Y: 0}, a, b); ok {
		t.Errorf("t>1 should not report a distance")
	}
	if _, ok := segDistSq(Vec2{X: -2, Y: 0}, a, b); ok {
		t.Errorf("t<0 should not report a distance")
	}
	// Degenerate segment collapses to a point test.
	d2, ok = segDistSq(Vec2{X: 3, Y: 4}, a, a)
	if !ok || d2 != 25 {
		t.Errorf("degenerate segment: d2=%f ok=%v, want 25 true", d2, ok)
	}
}
