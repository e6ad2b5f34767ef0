package game

// appendTrail records a newly committed position. Once the cap is reached
// new points are dropped rather than evicting old ones: the old trail must
// stay lethal, and a round rarely lives long enough to hit the cap anyway.
func (p *Player) appendTrail(pos Vec2) {
	if len(p.Trail) >= TrailMaxPoints {
		return
	}
	p.Trail = append(p.Trail, pos)
}

// pruneTrail removes every trail point within radius of center, compacting
// in place so the surviving points keep their relative order. The resolver
// rebuilds segments from the compacted slice each tick and drops any pair
// further apart than TrailSegmentMaxLen, so the survivors on either side of
// a pruned stretch do not get spliced into a phantom wall across the gap.
func pruneTrail(trail []Vec2, center Vec2, radius float64) []Vec2 {
	r2 := radius * radius
	kept := trail[:0]
	for _, pt := range trail {
		if distSq(pt, center) < r2 {
			continue
		}
		kept = append(kept, pt)
	}
	return kept
}
