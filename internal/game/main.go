package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens the window and drives the frame loop until the window
// closes: poll input, advance the simulation, draw, swap.
func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("DUEL_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	session := NewSession(seed)
	input := NewInput()

	// Previous-frame observations, used only to fire sounds on changes.
	prevScores := session.Scores
	prevPhase := session.Phase
	prevHazards := len(session.Hazards.Hazards)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		session.Update(dt, input.Read(window))

		if session.Scores != prevScores && session.Phase == PhasePlaying {
			PlaySound(SoundPickup)
		}
		if session.Phase != prevPhase {
			switch session.Phase {
			case PhaseEnding:
				PlaySound(SoundDeath)
			case PhasePlaying:
				PlaySound(SoundRoundStart)
			}
		}
		if n := len(session.Hazards.Hazards); n > prevHazards {
			PlaySound(SoundHazardSpawn)
		}
		prevScores = session.Scores
		prevPhase = session.Phase
		prevHazards = len(session.Hazards.Hazards)

		// The one-time round-start score display is consumed here; the
		// renderer never mutates the session.
		showScore := session.FirstFrame
		session.FirstFrame = false

		fbW, fbH := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbW), int32(fbH))
		rend.BeginFrame()
		rend.DrawSession(session, showScore)
		rend.Flush()

		window.SwapBuffers()
	}
}
