package noise_test

import (
	"math"
	"testing"

	"chirpbench/internal/dsp"
	"chirpbench/internal/noise"
)

func TestAddNoisePreservesLength(t *testing.T) {
	synth := noise.NewSeeded(1)
	for _, n := range []int{1, 17, 4800} {
		w := dsp.AppendTone(nil, 1500, 0.3, n)
		for _, snr := range []float64{40, 0, -100} {
			out := synth.AddNoise(w, snr)
			if len(out) != n {
				t.Fatalf("length changed at snr %v: got %d want %d", snr, len(out), n)
			}
		}
	}
}

func TestAddNoiseDoesNotMutateInput(t *testing.T) {
	w := dsp.AppendTone(nil, 1000, 0.5, 480)
	orig := make([]float64, len(w))
	copy(orig, w)

	noise.NewSeeded(2).AddNoise(w, 0)

	for i := range w {
		if w[i] != orig[i] {
			t.Fatalf("input sample %d mutated: got %v want %v", i, w[i], orig[i])
		}
	}
}

func TestAddNoiseSilentWaveformStaysSilent(t *testing.T) {
	w := make([]float64, 1024)
	out := noise.NewSeeded(3).AddNoise(w, -20)
	for i, s := range out {
		if s != 0 {
			t.Fatalf("sample %d of silent waveform became %v", i, s)
		}
	}
}

func TestAddNoiseAchievesTargetSNR(t *testing.T) {
	// Measure the injected noise power against the clean signal. 20 dB keeps
	// the noisy samples far from the clip boundary so the measurement is not
	// biased by clipping. The estimate over ~5 s of audio is tight; allow
	// +/- 0.5 dB.
	w := dsp.AppendTone(nil, 2000, 0.25, 240000)
	signalPower := dsp.MeanSquare(w)

	const target = 20.0
	out := noise.NewSeeded(4).AddNoise(w, target)

	diff := make([]float64, len(w))
	for i := range w {
		diff[i] = out[i] - w[i]
	}
	noisePower := dsp.MeanSquare(diff)
	measured := dsp.PowerDB(signalPower / noisePower)
	if math.Abs(measured-target) > 0.5 {
		t.Fatalf("measured SNR %.2f dB, want %.2f +/- 0.5 dB", measured, target)
	}
}

func TestAddNoiseClipsToPCMRange(t *testing.T) {
	w := dsp.AppendTone(nil, 1000, 0.9, 48000)
	out := noise.New().AddNoise(w, -10)
	for i, s := range out {
		if s > 1 || s < -1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestSeededSynthesizerIsReproducible(t *testing.T) {
	w := dsp.AppendTone(nil, 1500, 0.25, 4800)
	a := noise.NewSeeded(9).AddNoise(w, 10)
	b := noise.NewSeeded(9).AddNoise(w, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs diverge at sample %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestFreshSynthesizerDrawsIndependentNoise(t *testing.T) {
	w := dsp.AppendTone(nil, 1500, 0.25, 4800)
	synth := noise.New()
	a := synth.AddNoise(w, 10)
	b := synth.AddNoise(w, 10)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two fresh AddNoise calls produced identical noise")
	}
}
