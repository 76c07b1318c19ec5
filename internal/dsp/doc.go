// Package dsp provides the waveform primitives shared by the modem and the
// noise synthesizer: power and amplitude measurement, decibel conversion,
// tone synthesis, and single-bin spectral magnitude via the Goertzel
// recurrence.
//
// Waveforms are plain []float64 sample slices in the nominal [-1, 1] float
// PCM range at a fixed sample rate. Helpers never mutate their inputs.
package dsp
