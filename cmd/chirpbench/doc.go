// Command chirpbench measures how resilient the data-over-sound codec is to
// additive white Gaussian noise. It encodes a test message under each
// configured protocol, corrupts the waveform at a sweep of SNR levels,
// attempts to decode, and prints a protocol-vs-SNR pass/fail matrix.
package main
