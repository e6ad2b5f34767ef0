package game

// Lethal reports whether moving p to nextPos kills it this frame.
//
// Wall collision is checked first and applies unconditionally, invincibility
// window included. Trail and hazard collision are analytic: distance from
// the candidate to every live trail segment and hazard circle, against radii
// sized to match the original readback probe (see CollisionRadius).
func Lethal(nextPos Vec2, p *Player, other *Player, hazards []Hazard) bool {
	if nextPos.X < 0 || nextPos.X > FieldWidth || nextPos.Y < 0 || nextPos.Y > FieldHeight {
		return true
	}

	// Before the first steering input the player only dies to walls.
	if !p.HasMoved {
		return false
	}

	// Own trail, minus the suffix laid down just behind the head.
	if trailHit(nextPos, trimSuffix(p.Trail, SelfTrailSkip)) {
		return true
	}

	// Opponent's full trail. A player already flagged to die is no longer an
	// obstacle this tick; its frozen trail still is.
	if trailHit(nextPos, other.Trail) {
		return true
	}

	for i := range hazards {
		h := &hazards[i]
		kill := h.Radius + float64(CollisionProbe)/2
		if distSq(nextPos, h.Pos) < kill*kill {
			return true
		}
	}
	return false
}

// trimSuffix drops the last n points of a trail.
func trimSuffix(trail []Vec2, n int) []Vec2 {
	if n >= len(trail) {
		return nil
	}
	return trail[:len(trail)-n]
}

// trailHit tests pos against every segment between consecutive trail points.
// Projections falling outside a segment are skipped rather than clamped; the
// neighboring segment covers the shared endpoint. Pairs further apart than
// TrailSegmentMaxLen are gaps eaten by a hazard, not walls.
func trailHit(pos Vec2, trail []Vec2) bool {
	if len(trail) == 0 {
		return false
	}
	const r2 = CollisionRadius * CollisionRadius
	if len(trail) == 1 {
		return distSq(pos, trail[0]) < r2
	}
	const maxLen2 = TrailSegmentMaxLen * TrailSegmentMaxLen
	for i := 0; i+1 < len(trail); i++ {
		a, b := trail[i], trail[i+1]
		if distSq(a, b) > maxLen2 {
			continue
		}
		if d2, ok := segDistSq(pos, a, b); ok && d2 < r2 {
			return true
		}
	}
	return false
}
