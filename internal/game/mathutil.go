package game

import "math"

// Vec2 is a 2D position or direction.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Angle returns the heading angle of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// unitVec returns the unit vector for the given angle.
func unitVec(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// distSq returns the squared distance between two points.
func distSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// segDistSq returns the squared distance from p to segment ab, restricted to
// the segment interior: when the projection parameter t falls outside [0,1]
// the segment is reported as not applicable (ok=false) rather than clamped to
// the nearest endpoint. Adjacent segments cover the endpoint cases.
func segDistSq(p, a, b Vec2) (d2 float64, ok bool) {
	abx := b.X - a.X
	aby := b.Y - a.Y
	den := abx*abx + aby*aby
	if den <= 1e-12 {
		// Degenerate segment: treat as its single point.
		return distSq(p, a), true
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / den
	if t < 0 || t > 1 {
		return 0, false
	}
	c := Vec2{X: a.X + abx*t, Y: a.Y + aby*t}
	return distSq(p, c), true
}

// Rand is a tiny deterministic RNG (xorshift64*).
type Rand struct {
	s uint64
}

func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 1
	}
	return &Rand{s: seed}
}

func (r *Rand) NextU64() uint64 {
	x := r.s
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.s = x
	return x * 2685821657736338717
}

func (r *Rand) Float64() float64 {
	return float64(r.NextU64()>>11) * (1.0 / (1 << 53))
}

func (r *Rand) RangeF(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + (max-min)*r.Float64()
}
