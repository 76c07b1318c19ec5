// Package noise corrupts waveforms with additive white Gaussian noise scaled
// to a target signal-to-noise ratio.
package noise
