package dsp

import "math"

// GoertzelPower returns the squared DFT magnitude of window at integer bin k
// (frequency k*SampleRate/len(window)). For a full-scale sine exactly on bin
// k with amplitude A, the returned power is (A*N/2)^2 where N is the window
// length.
func GoertzelPower(window []float64, k int) float64 {
	n := len(window)
	if n == 0 {
		return 0
	}
	coeff := 2 * math.Cos(2*math.Pi*float64(k)/float64(n))
	var s1, s2 float64
	for _, x := range window {
		s0 := x + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}
	return s1*s1 + s2*s2 - coeff*s1*s2
}

// BinFreq returns the center frequency of bin k for a window of n samples.
func BinFreq(k, n int) float64 {
	return float64(k) * SampleRate / float64(n)
}
