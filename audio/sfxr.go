// Package audio synthesizes the game's sound effects from jsfxr
// parameter strings and plays them through ebiten's audio layer. No
// sample assets are shipped; every effect is rendered at startup.
package audio

import (
	"math"
	"strconv"
	"strings"
)

// Wave is the oscillator waveform type.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSawtooth
	WaveSine
	WaveNoise
)

// Params holds the jsfxr synthesis parameters. Values come from
// comma-separated preset strings in the original jsfxr order.
type Params struct {
	WaveType Wave

	AttackTime   float64
	SustainTime  float64
	SustainPunch float64
	DecayTime    float64

	StartFrequency float64
	MinFrequency   float64
	Slide          float64
	DeltaSlide     float64

	VibratoDepth float64
	VibratoSpeed float64

	ChangeAmount float64
	ChangeSpeed  float64

	SquareDuty float64
	DutySweep  float64

	RepeatSpeed  float64
	PhaserOffset float64
	PhaserSweep  float64

	LpFilterCutoff      float64
	LpFilterCutoffSweep float64
	LpFilterResonance   float64
	HpFilterCutoff      float64
	HpFilterCutoffSweep float64

	MasterVolume float64
}

// ParseParams parses a comma-separated jsfxr settings string. Empty
// fields parse as zero.
func ParseParams(s string) Params {
	values := strings.Split(s, ",")

	f := func(idx int) float64 {
		if idx >= len(values) || values[idx] == "" {
			return 0
		}
		v, _ := strconv.ParseFloat(values[idx], 64)
		return v
	}
	n := func(idx int) int {
		if idx >= len(values) || values[idx] == "" {
			return 0
		}
		v, _ := strconv.Atoi(values[idx])
		return v
	}

	p := Params{
		WaveType:            Wave(n(0)),
		AttackTime:          f(1),
		SustainTime:         f(2),
		SustainPunch:        f(3),
		DecayTime:           f(4),
		StartFrequency:      f(5),
		MinFrequency:        f(6),
		Slide:               f(7),
		DeltaSlide:          f(8),
		VibratoDepth:        f(9),
		VibratoSpeed:        f(10),
		ChangeAmount:        f(11),
		ChangeSpeed:         f(12),
		SquareDuty:          f(13),
		DutySweep:           f(14),
		RepeatSpeed:         f(15),
		PhaserOffset:        f(16),
		PhaserSweep:         f(17),
		LpFilterCutoff:      f(18),
		LpFilterCutoffSweep: f(19),
		LpFilterResonance:   f(20),
		HpFilterCutoff:      f(21),
		HpFilterCutoffSweep: f(22),
		MasterVolume:        f(23),
	}

	if p.SustainTime < 0.01 {
		p.SustainTime = 0.01
	}

	// Stretch very short envelopes to avoid clicks.
	total := p.AttackTime + p.SustainTime + p.DecayTime
	if total < 0.18 {
		mult := 0.18 / total
		p.AttackTime *= mult
		p.SustainTime *= mult
		p.DecayTime *= mult
	}

	return p
}

// Synth renders a Params definition to 16-bit mono PCM.
type Synth struct {
	Params Params

	envelopeLength0 float64
	envelopeLength1 float64
	envelopeLength2 float64

	period       float64
	maxPeriod    float64
	slide        float64
	deltaSlide   float64
	changeAmount float64
	changeTime   float64
	changeLimit  float64
	squareDuty   float64
	dutySweep    float64

	phaserBuffer []float64
	noiseBuffer  []float64
}

// NewSynth creates a synthesizer for the given parameters.
func NewSynth(p Params) *Synth {
	return &Synth{
		Params:       p,
		phaserBuffer: make([]float64, 1024),
		noiseBuffer:  make([]float64, 32),
	}
}

// reset recomputes oscillator state. Also invoked mid-render by the
// repeat effect.
func (s *Synth) reset() {
	p := &s.Params

	s.period = 100 / (p.StartFrequency*p.StartFrequency + 0.001)
	s.maxPeriod = 100 / (p.MinFrequency*p.MinFrequency + 0.001)

	s.slide = 1 - p.Slide*p.Slide*p.Slide*0.01
	s.deltaSlide = -p.DeltaSlide * p.DeltaSlide * p.DeltaSlide * 0.000001

	if p.WaveType == WaveSquare {
		s.squareDuty = 0.5 - p.SquareDuty/2
		s.dutySweep = -p.DutySweep * 0.00005
	}

	if p.ChangeAmount > 0 {
		s.changeAmount = 1 - p.ChangeAmount*p.ChangeAmount*0.9
	} else {
		s.changeAmount = 1 + p.ChangeAmount*p.ChangeAmount*10
	}
	s.changeTime = 0
	if p.ChangeSpeed == 1 {
		s.changeLimit = 0
	} else {
		s.changeLimit = (1-p.ChangeSpeed)*(1-p.ChangeSpeed)*20000 + 32
	}
}

// totalReset performs a full reset and returns the envelope length in
// samples.
func (s *Synth) totalReset() int {
	s.reset()
	p := &s.Params

	s.envelopeLength0 = p.AttackTime * p.AttackTime * 100000
	s.envelopeLength1 = p.SustainTime * p.SustainTime * 100000
	s.envelopeLength2 = p.DecayTime*p.DecayTime*100000 + 10

	return int(s.envelopeLength0 + s.envelopeLength1 + s.envelopeLength2)
}

// Render synthesizes the full effect and returns mono PCM samples.
// Rendering is deterministic: noise uses a fixed-seed generator.
func (s *Synth) Render() []int16 {
	length := s.totalReset()
	buffer := make([]int16, length)

	p := &s.Params

	filtersEnabled := p.LpFilterCutoff != 1 || p.HpFilterCutoff != 0
	hpFilterCutoff := p.HpFilterCutoff * p.HpFilterCutoff * 0.1
	hpFilterDeltaCutoff := 1 + p.HpFilterCutoffSweep*0.0003
	lpFilterCutoff := p.LpFilterCutoff * p.LpFilterCutoff * p.LpFilterCutoff * 0.1
	lpFilterDeltaCutoff := 1 + p.LpFilterCutoffSweep*0.0001
	lpFilterOn := p.LpFilterCutoff != 1
	masterVolume := p.MasterVolume * p.MasterVolume
	minFrequency := p.MinFrequency
	phaserEnabled := p.PhaserOffset != 0 || p.PhaserSweep != 0
	phaserDeltaOffset := p.PhaserSweep * p.PhaserSweep * p.PhaserSweep * 0.2

	phaserOffset := p.PhaserOffset * p.PhaserOffset
	if p.PhaserOffset < 0 {
		phaserOffset *= -1020
	} else {
		phaserOffset *= 1020
	}

	var repeatLimit int
	if p.RepeatSpeed != 0 {
		repeatLimit = int((1-p.RepeatSpeed)*(1-p.RepeatSpeed)*20000) + 32
	}

	sustainPunch := p.SustainPunch
	vibratoAmplitude := p.VibratoDepth / 2
	vibratoSpeed := p.VibratoSpeed * p.VibratoSpeed * 0.01
	waveType := p.WaveType

	envelopeLength := s.envelopeLength0
	envelopeOverLength0 := 1 / s.envelopeLength0
	envelopeOverLength1 := 1 / s.envelopeLength1
	envelopeOverLength2 := 1 / s.envelopeLength2

	lpFilterDamping := 5 / (1 + p.LpFilterResonance*p.LpFilterResonance*20) * (0.01 + lpFilterCutoff)
	if lpFilterDamping > 0.8 {
		lpFilterDamping = 0.8
	}
	lpFilterDamping = 1 - lpFilterDamping

	finished := false
	envelopeStage := 0
	envelopeTime := 0.0
	envelopeVolume := 0.0
	hpFilterPos := 0.0
	lpFilterDeltaPos := 0.0
	lpFilterOldPos := 0.0
	lpFilterPos := 0.0
	phase := 0.0
	phaserInt := 0
	phaserPos := 0
	repeatTime := 0

	for i := range s.phaserBuffer {
		s.phaserBuffer[i] = 0
	}

	// Fixed-seed LCG keeps noise reproducible run to run.
	randSeed := uint32(12345)
	nextNoise := func() float64 {
		randSeed = randSeed*1103515245 + 12345
		return float64(randSeed)/float64(1<<31) - 1
	}
	for i := range s.noiseBuffer {
		s.noiseBuffer[i] = nextNoise()
	}

	period := s.period
	maxPeriod := s.maxPeriod
	slide := s.slide
	deltaSlide := s.deltaSlide
	changeAmount := s.changeAmount
	changeTime := s.changeTime
	changeLimit := s.changeLimit
	squareDuty := s.squareDuty
	dutySweep := s.dutySweep

	for i := 0; i < length; i++ {
		if finished {
			return buffer[:i]
		}

		if repeatLimit != 0 {
			repeatTime++
			if repeatTime >= repeatLimit {
				repeatTime = 0
				s.reset()
				period = s.period
				maxPeriod = s.maxPeriod
				slide = s.slide
				deltaSlide = s.deltaSlide
				changeAmount = s.changeAmount
				changeTime = s.changeTime
				changeLimit = s.changeLimit
				squareDuty = s.squareDuty
				dutySweep = s.dutySweep
			}
		}

		if changeLimit != 0 {
			changeTime++
			if changeTime >= changeLimit {
				changeLimit = 0
				period *= changeAmount
			}
		}

		slide += deltaSlide
		period *= slide

		if period > maxPeriod {
			period = maxPeriod
			if minFrequency > 0 {
				finished = true
			}
		}

		periodTemp := period

		if vibratoAmplitude > 0 {
			periodTemp *= 1 + math.Sin(float64(i)*vibratoSpeed)*vibratoAmplitude
		}

		if periodTemp < 8 {
			periodTemp = 8
		}
		periodTemp = float64(int(periodTemp))

		if waveType == WaveSquare {
			squareDuty += dutySweep
			if squareDuty < 0 {
				squareDuty = 0
			}
			if squareDuty > 0.5 {
				squareDuty = 0.5
			}
		}

		envelopeTime++
		if envelopeTime > envelopeLength {
			envelopeTime = 0
			envelopeStage++
			if envelopeStage == 1 {
				envelopeLength = s.envelopeLength1
			} else if envelopeStage == 2 {
				envelopeLength = s.envelopeLength2
			}
		}

		switch envelopeStage {
		case 0:
			envelopeVolume = envelopeTime * envelopeOverLength0
		case 1:
			envelopeVolume = 1 + (1-envelopeTime*envelopeOverLength1)*2*sustainPunch
		case 2:
			envelopeVolume = 1 - envelopeTime*envelopeOverLength2
		default:
			envelopeVolume = 0
			finished = true
		}

		if phaserEnabled {
			phaserOffset += phaserDeltaOffset
			phaserInt = int(math.Abs(phaserOffset))
			if phaserInt > 1023 {
				phaserInt = 1023
			}
		}

		if filtersEnabled && hpFilterDeltaCutoff != 1 {
			hpFilterCutoff *= hpFilterDeltaCutoff
			if hpFilterCutoff < 0.00001 {
				hpFilterCutoff = 0.00001
			}
			if hpFilterCutoff > 0.1 {
				hpFilterCutoff = 0.1
			}
		}

		// 8x oversampling.
		superSample := 0.0
		for j := 0; j < 8; j++ {
			phase++
			if phase >= periodTemp {
				phase = math.Mod(phase, periodTemp)
				if waveType == WaveNoise {
					for n := range s.noiseBuffer {
						s.noiseBuffer[n] = nextNoise()
					}
				}
			}

			var sample float64
			switch waveType {
			case WaveSquare:
				if phase/periodTemp < squareDuty {
					sample = 0.5
				} else {
					sample = -0.5
				}
			case WaveSawtooth:
				sample = 1 - (phase/periodTemp)*2
			case WaveSine:
				// Polynomial sine approximation.
				pos := phase / periodTemp
				if pos > 0.5 {
					pos = (pos - 1) * 6.28318531
				} else {
					pos = pos * 6.28318531
				}
				if pos < 0 {
					sample = 1.27323954*pos + 0.405284735*pos*pos
				} else {
					sample = 1.27323954*pos - 0.405284735*pos*pos
				}
				if sample < 0 {
					sample = 0.225*(sample*-sample-sample) + sample
				} else {
					sample = 0.225*(sample*sample-sample) + sample
				}
			case WaveNoise:
				idx := int(math.Abs(phase*32/periodTemp)) % 32
				sample = s.noiseBuffer[idx]
			}

			if filtersEnabled {
				lpFilterOldPos = lpFilterPos
				lpFilterCutoff *= lpFilterDeltaCutoff
				if lpFilterCutoff < 0 {
					lpFilterCutoff = 0
				}
				if lpFilterCutoff > 0.1 {
					lpFilterCutoff = 0.1
				}

				if lpFilterOn {
					lpFilterDeltaPos += (sample - lpFilterPos) * lpFilterCutoff
					lpFilterDeltaPos *= lpFilterDamping
				} else {
					lpFilterPos = sample
					lpFilterDeltaPos = 0
				}
				lpFilterPos += lpFilterDeltaPos

				hpFilterPos += lpFilterPos - lpFilterOldPos
				hpFilterPos *= 1 - hpFilterCutoff
				sample = hpFilterPos
			}

			if phaserEnabled {
				s.phaserBuffer[phaserPos&1023] = sample
				sample += s.phaserBuffer[(phaserPos-phaserInt+1024)&1023]
				phaserPos++
			}

			superSample += sample
		}

		superSample *= 0.125 * envelopeVolume * masterVolume

		if superSample >= 1 {
			buffer[i] = 32767
		} else if superSample <= -1 {
			buffer[i] = -32768
		} else {
			buffer[i] = int16(superSample * 32767)
		}
	}

	return buffer
}
