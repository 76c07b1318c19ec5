package noise

import (
	"math"
	"math/rand/v2"
	"sync/atomic"

	"chirpbench/internal/dsp"
)

// silentPowerFloor is the mean-square power below which a waveform is treated
// as silent and left unmodified. Matches an RMS amplitude of 1e-10.
const silentPowerFloor = 1e-20

// Synthesizer produces noise-corrupted copies of waveforms at a requested
// SNR. Every AddNoise call draws from an independent random source so
// concurrent trials never share or correlate noise streams.
type Synthesizer struct {
	newSource func() *rand.Rand
}

// New returns a synthesizer that seeds each call from fresh process-level
// randomness. Two calls with identical inputs produce different noise.
func New() *Synthesizer {
	return &Synthesizer{
		newSource: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
	}
}

// NewSeeded returns a synthesizer whose noise is a deterministic function of
// seed and the call sequence number. Used by statistical tests.
func NewSeeded(seed uint64) *Synthesizer {
	var calls atomic.Uint64
	return &Synthesizer{
		newSource: func() *rand.Rand {
			return rand.New(rand.NewPCG(seed, calls.Add(1)))
		},
	}
}

// AddNoise returns a copy of w with zero-mean Gaussian noise added so that
// the ratio of signal power to noise power equals snrDB decibels. The input
// is never mutated and the output has the same length. A silent waveform is
// returned as a plain copy: zero signal power implies zero noise power.
// Samples are clipped to the float PCM range [-1, 1] after the noise is
// applied.
func (s *Synthesizer) AddNoise(w []float64, snrDB float64) []float64 {
	out := make([]float64, len(w))
	signalPower := dsp.MeanSquare(w)
	if signalPower < silentPowerFloor {
		copy(out, w)
		return out
	}

	noisePower := signalPower / dsp.PowerFromDB(snrDB)
	sigma := math.Sqrt(noisePower)
	rng := s.newSource()
	for i, sample := range w {
		out[i] = dsp.Clip(sample + sigma*rng.NormFloat64())
	}
	return out
}
