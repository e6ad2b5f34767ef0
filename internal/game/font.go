package game

import "fmt"

// font5x5 holds the score display glyphs as 5x5 bit rows, top to bottom.
var font5x5 = map[byte][FontGrid * FontGrid]uint8{
	'0': {1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	'1': {0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0},
	'2': {1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1},
	'3': {1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	'4': {1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	'5': {1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	'6': {1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	'7': {1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	'8': {1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	'9': {1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1},
	'-': {0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	' ': {},
}

// textWidth returns the rendered width of text at the given cell size. Each
// glyph advances six cells: five for the grid plus one of spacing.
func textWidth(text string, cellSize float64) float64 {
	return float64(len(text)) * cellSize * (FontGrid + 1)
}

// DrawText batches text as one filled quad per lit font cell; x,y is the
// top-left of the first glyph. Unknown characters are skipped.
func (r *Renderer) DrawText(text string, x, y, cellSize float64, c RGB) {
	advance := cellSize * (FontGrid + 1)
	for i := 0; i < len(text); i++ {
		pattern, ok := font5x5[text[i]]
		if !ok {
			continue
		}
		gx := x + float64(i)*advance
		for row := 0; row < FontGrid; row++ {
			for col := 0; col < FontGrid; col++ {
				if pattern[row*FontGrid+col] != 0 {
					r.FillRect(gx+float64(col)*cellSize, y+float64(row)*cellSize, cellSize, cellSize, c)
				}
			}
		}
	}
}

// drawScoreLine centers "S1-S2" on the field.
func (r *Renderer) drawScoreLine(s *Session) {
	text := fmt.Sprintf("%d-%d", s.Scores[PlayerOne], s.Scores[PlayerTwo])
	w := textWidth(text, ScoreCellSize)
	r.DrawText(text, (FieldWidth-w)/2, FieldHeight/2-25, ScoreCellSize, ColorText)
}

// drawCountdown centers the whole-seconds reset countdown below the score.
func (r *Renderer) drawCountdown(rem int) {
	text := fmt.Sprintf("%d", rem)
	w := textWidth(text, ScoreCellSize)
	r.DrawText(text, (FieldWidth-w)/2, FieldHeight/2+25, ScoreCellSize, ColorText)
}
