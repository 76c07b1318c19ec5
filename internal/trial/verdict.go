package trial

// Outcome classifies how a trial ended.
type Outcome string

const (
	// OutcomeOK means the decoded message matched the original byte-for-byte.
	OutcomeOK Outcome = "ok"
	// OutcomeEncodeFailure means the codec could not represent the message
	// under the chosen protocol (for example, over capacity).
	OutcomeEncodeFailure Outcome = "encode_failure"
	// OutcomeDecodeFailure means no recoverable message was found in the
	// corrupted waveform.
	OutcomeDecodeFailure Outcome = "decode_failure"
	// OutcomeMismatch means decode produced a message that differs from the
	// original. The garbled bytes are kept for diagnostics.
	OutcomeMismatch Outcome = "mismatch"
)

// Verdict records the result of one round-trip trial.
type Verdict struct {
	Protocol Protocol
	SNRLevel float64
	Outcome  Outcome
	// Decoded holds the decoder's output when one was produced, including a
	// mismatched decode. Nil on encode or decode failure.
	Decoded []byte
	// Err carries the underlying codec error on encode/decode failure.
	Err error
}

// Success reports whether the decoded message matched the original exactly.
func (v Verdict) Success() bool {
	return v.Outcome == OutcomeOK
}
