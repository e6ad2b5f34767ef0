package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the game's procedural sound effects.
type SoundKind int

const (
	SoundPickup SoundKind = iota
	SoundDeath
	SoundRoundStart
	SoundHazardSpawn
)

// AudioSystem plays short generated effects. Nil-safe: if InitAudio failed
// or was never called, PlaySound is a no-op and the game runs silent.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// InitAudio initializes the audio device.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound fires one effect asynchronously.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := globalAudio.ctx.NewPlayer(&soundReader{data: samples})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes one sample to both channels at frame index i.
func putStereoF32(buf []byte, i int, sample float64) {
	bits := math.Float32bits(float32(sample))
	off := i * 8
	for ch := 0; ch < 2; ch++ {
		buf[off] = byte(bits)
		buf[off+1] = byte(bits >> 8)
		buf[off+2] = byte(bits >> 16)
		buf[off+3] = byte(bits >> 24)
		off += 4
	}
}

// adsr is a linear attack-decay-sustain-release envelope over progress 0..1.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1 - (1-sustain)*(progress-attack)/decay
	case progress < 1-release:
		return sustain
	default:
		return sustain * (1 - progress) / release
	}
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundPickup:
		return genPickup()
	case SoundDeath:
		return genDeath()
	case SoundRoundStart:
		return genRoundStart()
	case SoundHazardSpawn:
		return genHazardSpawn()
	}
	return nil
}

// genPickup: quick two-note rising chirp.
func genPickup() []byte {
	n := SampleRate / 8
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := float64(i) / float64(n)
		freq := 700.0
		if progress > 0.5 {
			freq = 1050.0
		}
		env := adsr(progress, 0.05, 0.1, 0.7, 0.3)
		putStereoF32(buf, i, 0.25*env*math.Sin(2*math.Pi*freq*t))
	}
	return buf
}

// genDeath: falling saw burst.
func genDeath() []byte {
	n := SampleRate / 3
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := float64(i) / float64(n)
		freq := 220 - 160*progress
		phase := math.Mod(freq*t, 1)
		env := adsr(progress, 0.01, 0.2, 0.5, 0.4)
		putStereoF32(buf, i, 0.3*env*(2*phase-1))
	}
	return buf
}

// genRoundStart: short middle tone marking the new round.
func genRoundStart() []byte {
	n := SampleRate / 6
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := float64(i) / float64(n)
		env := adsr(progress, 0.1, 0.2, 0.6, 0.3)
		putStereoF32(buf, i, 0.2*env*math.Sin(2*math.Pi*440*t))
	}
	return buf
}

// genHazardSpawn: low blip warning of a new circle.
func genHazardSpawn() []byte {
	n := SampleRate / 10
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := float64(i) / float64(n)
		env := adsr(progress, 0.05, 0.15, 0.5, 0.4)
		putStereoF32(buf, i, 0.22*env*math.Sin(2*math.Pi*160*t))
	}
	return buf
}
