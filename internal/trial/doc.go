// Package trial defines the codec contract and runs a single round-trip
// trial: encode a message under a protocol, corrupt the waveform at a target
// SNR, decode, and compare against the original.
//
// Every trial yields exactly one Verdict. Codec failures never escape as
// errors; they are classified into the verdict's outcome so a sweep can keep
// going regardless of what individual cells do.
package trial
