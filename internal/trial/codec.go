package trial

// Protocol identifies a named transmission profile of the codec, trading
// transfer speed against noise robustness.
type Protocol string

const (
	ProtocolFast   Protocol = "fast"
	ProtocolNormal Protocol = "normal"
	ProtocolRobust Protocol = "robust"
)

// Codec is the data-over-sound capability under measurement. Encode renders a
// message as a waveform under the given protocol; Decode recovers a message
// from a (possibly corrupted) waveform or reports that none is recoverable.
// Implementations may be lossy; the evaluator treats them as opaque.
type Codec interface {
	Encode(message []byte, protocol Protocol) ([]float64, error)
	Decode(waveform []float64) ([]byte, error)
}
