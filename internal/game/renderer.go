package game

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// circleSegments is the fan resolution for filled circles.
const circleSegments = 64

// floatsPerVertex: x, y, r, g, b.
const floatsPerVertex = 5

// Renderer batches flat-colored triangles into one streamed VBO and draws
// the whole frame with a single program. All positions are field pixels.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32

	// Vertex accumulator, reused across frames to avoid per-frame heap
	// allocations.
	buf []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, err
	}

	r := &Renderer{prog: prog}
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 2*4)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.prog)
}

// BeginFrame clears the field to the background color and resets the batch.
func (r *Renderer) BeginFrame() {
	gl.ClearColor(
		float32(ColorBackground.R)/255,
		float32(ColorBackground.G)/255,
		float32(ColorBackground.B)/255,
		1,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.buf = r.buf[:0]
}

func (r *Renderer) vertex(x, y float64, c RGB) {
	r.buf = append(r.buf,
		float32(x), float32(y),
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255,
	)
}

// FillRect batches an axis-aligned filled rectangle; x,y is the top-left.
func (r *Renderer) FillRect(x, y, w, h float64, c RGB) {
	r.vertex(x, y, c)
	r.vertex(x+w, y, c)
	r.vertex(x+w, y+h, c)
	r.vertex(x, y, c)
	r.vertex(x+w, y+h, c)
	r.vertex(x, y+h, c)
}

// FillSquareCentered batches a filled square around a center point, the
// shape of every player head and trail point.
func (r *Renderer) FillSquareCentered(center Vec2, size float64, c RGB) {
	r.FillRect(center.X-size/2, center.Y-size/2, size, size, c)
}

// FillCircle batches a filled circle as a triangle fan around the center.
func (r *Renderer) FillCircle(center Vec2, radius float64, c RGB) {
	for i := 0; i < circleSegments; i++ {
		a0 := float64(i) / circleSegments * 2 * math.Pi
		a1 := float64(i+1) / circleSegments * 2 * math.Pi
		r.vertex(center.X, center.Y, c)
		r.vertex(center.X+math.Cos(a0)*radius, center.Y+math.Sin(a0)*radius, c)
		r.vertex(center.X+math.Cos(a1)*radius, center.Y+math.Sin(a1)*radius, c)
	}
}

// Flush uploads the batch and draws it.
func (r *Renderer) Flush() {
	if len(r.buf) == 0 {
		return
	}
	gl.UseProgram(r.prog)
	gl.Uniform2f(r.uResolution, FieldWidth, FieldHeight)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.buf)/floatsPerVertex))
	gl.BindVertexArray(0)
}

// DrawSession batches one frame of the whole game. During the game-over
// phases only the score and countdown are shown, otherwise the full scene
// (and the score once, on the first frame of a round).
func (r *Renderer) DrawSession(s *Session, showScore bool) {
	if s.Phase != PhasePlaying {
		r.drawScoreLine(s)
		if rem := s.CountdownRemaining(); rem >= 1 {
			r.drawCountdown(rem)
		}
		return
	}

	// Collectible framing first so trails draw over it.
	col := s.Collectible
	r.FillSquareCentered(col.Pos, col.BackingSize, ColorBackground)
	r.FillCircle(col.Pos, col.RingRadius, ColorBackground)
	r.FillSquareCentered(col.Pos, col.Size, ColorPickup)

	for i := range s.Hazards.Hazards {
		h := &s.Hazards.Hazards[i]
		r.FillCircle(h.Pos, h.Radius, ColorHazard)
	}

	for _, p := range s.Players {
		for _, pt := range p.Trail {
			r.FillSquareCentered(pt, TrailSize, p.Color)
		}
	}
	for _, p := range s.Players {
		r.FillSquareCentered(p.Pos, PlayerSize, p.Color)
	}

	if showScore {
		r.drawScoreLine(s)
	}
}
