package modem

import (
	"errors"
	"fmt"

	"chirpbench/internal/dsp"
	"chirpbench/internal/trial"
)

// defaultVolume is the tone amplitude in float PCM units. Kept well under
// full scale so moderate noise does not immediately clip.
const defaultVolume = 0.25

var (
	ErrUnknownProtocol = errors.New("unknown protocol")
	ErrMessageEmpty    = errors.New("message is empty")
	ErrMessageTooLong  = errors.New("message exceeds protocol capacity")
	ErrNoSignal        = errors.New("no recoverable signal")
)

// Modem implements trial.Codec.
type Modem struct {
	volume float64
}

// New constructs a modem. A zero volume selects the default amplitude;
// otherwise volume must lie in (0, 1].
func New(volume float64) (*Modem, error) {
	if volume == 0 {
		volume = defaultVolume
	}
	if volume < 0 || volume > 1 {
		return nil, fmt.Errorf("modem volume %v outside (0, 1]", volume)
	}
	return &Modem{volume: volume}, nil
}

// Encode renders message as a waveform under the given protocol. It fails
// when the protocol is unknown, the message is empty, or the message exceeds
// the profile's payload capacity.
func (m *Modem) Encode(message []byte, protocol trial.Protocol) ([]float64, error) {
	prof, ok := profiles[protocol]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProtocol, protocol)
	}
	if len(message) == 0 {
		return nil, ErrMessageEmpty
	}
	if len(message) > prof.maxPayload {
		return nil, fmt.Errorf("%w: %d bytes, %s allows %d", ErrMessageTooLong, len(message), protocol, prof.maxPayload)
	}

	nibbles := frameNibbles(message)
	out := make([]float64, 0, len(nibbles)*prof.span())
	for _, nibble := range nibbles {
		freq := dsp.BinFreq(prof.baseBin()+int(nibble), prof.symbolLen)
		for r := 0; r < prof.repeat; r++ {
			out = dsp.AppendTone(out, freq, m.volume, prof.symbolLen)
		}
	}
	return out, nil
}

// Decode attempts to recover a message from waveform, auto-detecting the
// protocol by scanning each profile in canonical order. It returns
// ErrNoSignal when no profile yields a frame with a valid marker and CRC.
func (m *Modem) Decode(waveform []float64) ([]byte, error) {
	if len(waveform) == 0 {
		return nil, ErrNoSignal
	}
	for _, protocol := range protocolOrder {
		if payload, ok := demodulate(profiles[protocol], waveform); ok {
			return payload, nil
		}
	}
	return nil, ErrNoSignal
}
