package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Fixed game palette, matching the entity identities: blue player one, red
// player two, yellow hazards, green pickup on black framing, white text on a
// black field.
var (
	ColorP1         = RGB{R: 0, G: 0, B: 255}
	ColorP2         = RGB{R: 255, G: 0, B: 0}
	ColorHazard     = RGB{R: 255, G: 255, B: 0}
	ColorPickup     = RGB{R: 0, G: 255, B: 0}
	ColorBackground = RGB{R: 0, G: 0, B: 0}
	ColorText       = RGB{R: 255, G: 255, B: 255}
)
