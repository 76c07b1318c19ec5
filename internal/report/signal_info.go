package report

import (
	"chirpbench/internal/dsp"
	"chirpbench/internal/trial"
)

// SignalInfo describes the clean (pre-noise) encoding of the message under
// one protocol, for the report's info block.
type SignalInfo struct {
	Protocol  trial.Protocol
	RMS       float64
	MinSample float64
	MaxSample float64
	Samples   int
	Seconds   float64
	// EncodeErr is set when the codec rejected the message for this protocol;
	// the other fields are then zero.
	EncodeErr error
}

// CollectSignalInfo encodes the message once per protocol and measures the
// clean waveforms. Encode failures are recorded per protocol, not returned.
func CollectSignalInfo(codec trial.Codec, message []byte, protocols []trial.Protocol) []SignalInfo {
	infos := make([]SignalInfo, 0, len(protocols))
	for _, protocol := range protocols {
		info := SignalInfo{Protocol: protocol}
		waveform, err := codec.Encode(message, protocol)
		if err != nil {
			info.EncodeErr = err
		} else {
			info.RMS = dsp.RMS(waveform)
			info.MinSample, info.MaxSample = dsp.Range(waveform)
			info.Samples = len(waveform)
			info.Seconds = dsp.Duration(waveform)
		}
		infos = append(infos, info)
	}
	return infos
}
