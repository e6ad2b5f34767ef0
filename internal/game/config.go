package game

import "math"

// Field dimensions (in pixels). The window is created at the same size so
// field coordinates are screen coordinates.
const (
	FieldWidth  = 1920
	FieldHeight = 1080
)

// Movement rates, applied per second of frame delta time.
const (
	PlayerSpeed = 200.0       // px/s along the heading
	HazardSpeed = 300.0       // px/s, constant magnitude for a hazard's lifetime
	TurnRate    = 2 * math.Pi // rad/s at full steering deflection
)

// MaxFrameDelta caps frame delta time so a stalled frame cannot teleport
// entities across the field.
const MaxFrameDelta = 0.1

// Entity sizes (in pixels).
const (
	PlayerSize   = 4  // head quad side
	TrailSize    = 2  // trail quad side
	HazardRadius = 45 // moving circle radius
)

// Collectible extents. Only PickupSize participates in scoring collision;
// the ring and backing square are visual framing around it.
const (
	PickupSize        = HazardRadius * 2 // green square side
	PickupRingRadius  = PickupSize       // black circle radius
	PickupBackingSize = PickupSize * 5   // black square side, bounds the spawn area
)

// Collision tuning.
const (
	// CollisionProbe is the side of the square neighborhood the original
	// readback probe sampled around a candidate position. The analytic
	// resolver keeps it as the player's effective diameter.
	CollisionProbe = 5

	// SelfTrailSkip is how many of a player's own most recent trail points
	// are ignored when checking self-collision, so the segment laid down
	// this instant can't kill its author.
	SelfTrailSkip = 5

	// CollisionRadius is the lethal distance from a candidate position to a
	// trail segment: probe half-extent plus trail quad half-thickness.
	CollisionRadius = float64(CollisionProbe)/2 + float64(TrailSize)/2
)

// Trail memory bound. Appending stops once a trail reaches the cap; at
// 200 px/s and 60 fps a round needs several minutes to get near it.
const TrailMaxPoints = 100000

// TrailSegmentMaxLen separates consecutive trail points that are genuinely
// adjacent from survivors left standing on opposite sides of a pruned gap.
// One frame's travel is at most PlayerSpeed * MaxFrameDelta = 20 px, while a
// hazard eating through a trail leaves gaps an order of magnitude wider.
const TrailSegmentMaxLen = 25.0

// Round timing (seconds of simulation time).
const (
	HazardSpawnInterval = 5.0 // new hazard cadence while playing
	ResetCountdown      = 5.0 // game-over hold before the next round
)

// SurvivorBonus is awarded to the sole living player when a round ends.
const SurvivorBonus = 3

// Player starting placement: mirrored on the horizontal midline, headed at
// each other.
const PlayerStartInset = 200

// Hazard spawn placement keeps centers this far from every wall.
const HazardSpawnInset = 50

// Window defaults.
const WindowTitle = "Line Duel"

// Score/countdown text layout (5x5 bitmap font, see font.go).
const (
	ScoreCellSize = 10.0 // side of one font pixel quad
	FontGrid      = 5    // glyphs are FontGrid x FontGrid cells
)
