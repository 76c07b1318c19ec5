package dsp

import "math"

// SampleRate is the fixed rate, in Hz, of every waveform in this repository.
const SampleRate = 48000.0

// MeanSquare returns the mean squared sample amplitude of w, i.e. the signal
// power. An empty waveform has zero power.
func MeanSquare(w []float64) float64 {
	if len(w) == 0 {
		return 0
	}
	var sum float64
	for _, s := range w {
		sum += s * s
	}
	return sum / float64(len(w))
}

// RMS returns the root-mean-square amplitude of w.
func RMS(w []float64) float64 {
	return math.Sqrt(MeanSquare(w))
}

// Range returns the minimum and maximum sample values of w. Both are zero for
// an empty waveform.
func Range(w []float64) (min, max float64) {
	if len(w) == 0 {
		return 0, 0
	}
	min, max = w[0], w[0]
	for _, s := range w[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}

// PowerDB converts a linear power ratio to decibels.
func PowerDB(power float64) float64 {
	return 10 * math.Log10(power)
}

// PowerFromDB converts decibels to a linear power ratio.
func PowerFromDB(db float64) float64 {
	return math.Pow(10, db/10)
}

// Clip limits v to the float PCM range [-1, 1].
func Clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Duration returns the length of w in seconds at the fixed sample rate.
func Duration(w []float64) float64 {
	return float64(len(w)) / SampleRate
}
