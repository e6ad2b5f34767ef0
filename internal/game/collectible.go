package game

// Collectible is the scoring target: a small green pickup square framed by a
// larger black ring over a larger black backing square. Only the pickup
// square can be collected; the framing is decoration that keeps the pickup
// visible against trails.
type Collectible struct {
	Pos         Vec2
	Size        float64 // pickup square side
	RingRadius  float64 // decorative circle radius
	BackingSize float64 // decorative square side
}

// SpawnCollectible samples a uniform position that keeps the full backing
// square inside the field.
func SpawnCollectible(r *Rand) Collectible {
	half := float64(PickupBackingSize) / 2
	return Collectible{
		Pos:         Vec2{X: r.RangeF(half, FieldWidth-half), Y: r.RangeF(half, FieldHeight-half)},
		Size:        PickupSize,
		RingRadius:  PickupRingRadius,
		BackingSize: PickupBackingSize,
	}
}

// Hit reports whether pos is inside the pickup square. The ring and backing
// extents never score.
func (c Collectible) Hit(pos Vec2) bool {
	half := c.Size / 2
	return pos.X >= c.Pos.X-half && pos.X <= c.Pos.X+half &&
		pos.Y >= c.Pos.Y-half && pos.Y <= c.Pos.Y+half
}
