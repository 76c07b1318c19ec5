package dsp

import "math"

// AppendTone appends n samples of a sine tone at the given bin-aligned
// frequency and amplitude to dst and returns the extended slice. The tone
// starts at zero phase; symbols are detected non-coherently so phase
// continuity across symbols is not required.
func AppendTone(dst []float64, freq, amplitude float64, n int) []float64 {
	omega := 2 * math.Pi * freq / SampleRate
	for i := 0; i < n; i++ {
		dst = append(dst, amplitude*math.Sin(omega*float64(i)))
	}
	return dst
}
