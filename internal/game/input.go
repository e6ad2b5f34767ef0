package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input reads steering for both players: analog triggers on the first two
// connected gamepads, keyboard fallback for empty slots. A slot with neither
// device yields an inactive SteerInput and that player never turns.
type Input struct {
	pads [2]glfw.Joystick
}

// NewInput assigns the first two connected gamepads to the player slots in
// discovery order. Slots left without a pad fall back to the keyboard.
func NewInput() *Input {
	in := &Input{pads: [2]glfw.Joystick{-1, -1}}
	slot := 0
	for jid := glfw.Joystick1; jid <= glfw.JoystickLast && slot < 2; jid++ {
		if jid.Present() && jid.IsGamepad() {
			in.pads[slot] = jid
			slot++
		}
	}
	return in
}

// Read polls both players' steering for this frame. Gamepads steer by
// trigger difference (right minus left, each normalized to 0..1); the
// keyboard steers at full deflection: A/D for player one, Left/Right arrows
// for player two.
func (in *Input) Read(window *glfw.Window) [2]SteerInput {
	var out [2]SteerInput
	for slot := 0; slot < 2; slot++ {
		if in.pads[slot] >= 0 {
			out[slot] = readPad(in.pads[slot])
		} else {
			out[slot] = readKeys(window, slot)
		}
	}
	return out
}

func readPad(jid glfw.Joystick) SteerInput {
	state := jid.GetGamepadState()
	if state == nil {
		return SteerInput{}
	}
	// GLFW trigger axes rest at -1 and reach +1 fully pressed.
	lt := float64(state.Axes[glfw.AxisLeftTrigger]+1) / 2
	rt := float64(state.Axes[glfw.AxisRightTrigger]+1) / 2
	return SteerInput{
		Turn:   rt - lt,
		Active: lt > 0 || rt > 0,
	}
}

func readKeys(window *glfw.Window, slot int) SteerInput {
	left, right := glfw.KeyA, glfw.KeyD
	if slot == 1 {
		left, right = glfw.KeyLeft, glfw.KeyRight
	}
	var turn float64
	active := false
	if window.GetKey(left) == glfw.Press {
		turn -= 1
		active = true
	}
	if window.GetKey(right) == glfw.Press {
		turn += 1
		active = true
	}
	return SteerInput{Turn: turn, Active: active}
}
