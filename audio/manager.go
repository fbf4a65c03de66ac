package audio

import (
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate is the playback rate. The jsfxr envelope constants assume
// 44100 Hz, so the synthesizer and the context must agree.
const SampleRate = 44100

// Manager pre-renders every effect once and plays them fire-and-forget
// through a shared ebiten audio context.
type Manager struct {
	ctx     *eaudio.Context
	samples [effectCount][]byte

	// Muted drops Play calls without touching the context.
	Muted bool
}

// NewManager creates the audio context and renders all effects.
func NewManager() *Manager {
	m := &Manager{ctx: eaudio.NewContext(SampleRate)}
	for e := Effect(0); e < effectCount; e++ {
		m.samples[e] = toStereoPCM(RenderEffect(e))
	}
	return m
}

// Play starts one playback of the effect. Overlapping playbacks of the
// same effect are fine; each call gets its own player.
func (m *Manager) Play(e Effect) {
	if m.Muted || e < 0 || e >= effectCount {
		return
	}
	p := m.ctx.NewPlayerFromBytes(m.samples[e])
	p.Play()
}

// toStereoPCM converts mono samples to the 16-bit little-endian
// interleaved stereo stream ebiten players consume.
func toStereoPCM(mono []int16) []byte {
	out := make([]byte, len(mono)*4)
	for i, s := range mono {
		lo, hi := byte(s), byte(s>>8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
