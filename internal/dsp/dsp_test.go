package dsp_test

import (
	"math"
	"testing"

	"chirpbench/internal/dsp"
)

func TestMeanSquareConstantSignal(t *testing.T) {
	w := make([]float64, 100)
	for i := range w {
		w[i] = 0.5
	}
	if got := dsp.MeanSquare(w); math.Abs(got-0.25) > 1e-12 {
		t.Fatalf("mean square of constant 0.5 signal: got %v want 0.25", got)
	}
	if got := dsp.RMS(w); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("rms: got %v want 0.5", got)
	}
}

func TestMeanSquareEmpty(t *testing.T) {
	if got := dsp.MeanSquare(nil); got != 0 {
		t.Fatalf("mean square of empty waveform: got %v want 0", got)
	}
}

func TestSineTonePower(t *testing.T) {
	// A sine at amplitude A has power A^2/2 when averaged over whole cycles.
	n := 480 // exactly 10 cycles at 1 kHz
	w := dsp.AppendTone(nil, 1000, 0.8, n)
	if len(w) != n {
		t.Fatalf("tone length: got %d want %d", len(w), n)
	}
	want := 0.8 * 0.8 / 2
	if got := dsp.MeanSquare(w); math.Abs(got-want) > 1e-9 {
		t.Fatalf("sine power: got %v want %v", got, want)
	}
}

func TestGoertzelDetectsOnBinTone(t *testing.T) {
	const n = 512
	const k = 40
	w := dsp.AppendTone(nil, dsp.BinFreq(k, n), 0.25, n)

	// Power at the tone bin is (A*N/2)^2; adjacent bins are orthogonal over
	// the window and carry essentially nothing.
	want := math.Pow(0.25*float64(n)/2, 2)
	got := dsp.GoertzelPower(w, k)
	if math.Abs(got-want)/want > 1e-6 {
		t.Fatalf("on-bin power: got %v want %v", got, want)
	}
	for _, other := range []int{k - 1, k + 1, k + 7} {
		if leak := dsp.GoertzelPower(w, other); leak > want*1e-9 {
			t.Fatalf("bin %d leakage %v exceeds tolerance (signal %v)", other, leak, want)
		}
	}
}

func TestPowerDBRoundTrip(t *testing.T) {
	for _, db := range []float64{-20, -3, 0, 10, 40} {
		lin := dsp.PowerFromDB(db)
		if got := dsp.PowerDB(lin); math.Abs(got-db) > 1e-9 {
			t.Fatalf("dB round trip for %v: got %v", db, got)
		}
	}
}

func TestClip(t *testing.T) {
	cases := map[float64]float64{-2: -1, -1: -1, 0: 0, 0.5: 0.5, 1.5: 1}
	for in, want := range cases {
		if got := dsp.Clip(in); got != want {
			t.Fatalf("clip(%v): got %v want %v", in, got, want)
		}
	}
}

func TestRange(t *testing.T) {
	min, max := dsp.Range([]float64{0.2, -0.7, 0.4, 0})
	if min != -0.7 || max != 0.4 {
		t.Fatalf("range: got (%v, %v) want (-0.7, 0.4)", min, max)
	}
}
