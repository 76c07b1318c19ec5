// Package modem implements the data-over-sound codec measured by the
// harness: a 16-tone FSK scheme at 48 kHz with three profiles trading
// airtime against noise robustness.
//
// Each 4-bit nibble is sent as a single tone chosen from a bank of sixteen
// frequencies aligned to exact DFT bins of the profile's symbol window, so a
// clean symbol concentrates all of its energy in one Goertzel bin. Robust
// profiles use longer windows and repeat each symbol, which narrows the noise
// bandwidth per tone and buys the decoder non-coherent combining gain.
//
// Frame layout, in nibbles: marker (2), payload length (2), payload (2 per
// byte), CRC-8 of the payload (2). The decoder auto-detects the profile by
// attempting each one and accepting the first frame whose marker and CRC
// check out.
package modem
