package modem

import (
	"fmt"
	"strings"

	"chirpbench/internal/dsp"
	"chirpbench/internal/trial"
)

// profile fixes the transmission parameters of one protocol.
type profile struct {
	symbolLen  int // samples per symbol window
	repeat     int // consecutive windows carrying the same symbol
	maxPayload int // payload capacity in bytes
}

// span is the total number of samples occupied by one symbol.
func (p profile) span() int {
	return p.symbolLen * p.repeat
}

// baseBin is the DFT bin of nibble zero. Fixed at symbolLen/16 so every
// profile's tone bank starts at 3 kHz regardless of window length.
func (p profile) baseBin() int {
	return p.symbolLen / 16
}

// protocolOrder is the decode scan order and the canonical listing order.
var protocolOrder = []trial.Protocol{
	trial.ProtocolFast,
	trial.ProtocolNormal,
	trial.ProtocolRobust,
}

var profiles = map[trial.Protocol]profile{
	trial.ProtocolFast:   {symbolLen: 128, repeat: 1, maxPayload: 128},
	trial.ProtocolNormal: {symbolLen: 512, repeat: 1, maxPayload: 128},
	trial.ProtocolRobust: {symbolLen: 1024, repeat: 2, maxPayload: 64},
}

// Protocols returns the supported protocols in canonical order.
func Protocols() []trial.Protocol {
	out := make([]trial.Protocol, len(protocolOrder))
	copy(out, protocolOrder)
	return out
}

// ParseProtocol resolves a configuration string to a protocol identifier.
func ParseProtocol(name string) (trial.Protocol, error) {
	p := trial.Protocol(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := profiles[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
	}
	return p, nil
}

// Info describes a protocol's transmission parameters for reporting.
type Info struct {
	Protocol   trial.Protocol
	SymbolLen  int
	Repeat     int
	MaxPayload int
	BitRate    float64 // payload bits per second on the air
	ToneLow    float64 // lowest tone frequency, Hz
	ToneHigh   float64 // highest tone frequency, Hz
}

// ProtocolInfo returns the parameters of a protocol, or false if unknown.
func ProtocolInfo(p trial.Protocol) (Info, bool) {
	prof, ok := profiles[p]
	if !ok {
		return Info{}, false
	}
	return Info{
		Protocol:   p,
		SymbolLen:  prof.symbolLen,
		Repeat:     prof.repeat,
		MaxPayload: prof.maxPayload,
		BitRate:    4 * dsp.SampleRate / float64(prof.span()),
		ToneLow:    dsp.BinFreq(prof.baseBin(), prof.symbolLen),
		ToneHigh:   dsp.BinFreq(prof.baseBin()+toneCount-1, prof.symbolLen),
	}, true
}
