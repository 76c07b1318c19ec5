package trial

import (
	"bytes"
	"log/slog"

	"chirpbench/internal/logging"
	"chirpbench/internal/noise"
)

// WaveformSink receives the corrupted waveform of a completed trial, for
// example to persist it as a WAV artifact. Sink errors never influence the
// verdict; an implementation failure is logged and dropped.
type WaveformSink interface {
	Persist(verdict Verdict, waveform []float64) error
}

// Evaluator runs round-trip trials against a codec.
type Evaluator struct {
	codec  Codec
	synth  *noise.Synthesizer
	sink   WaveformSink
	logger *slog.Logger
}

// NewEvaluator builds an evaluator. sink may be nil to skip waveform
// persistence; logger may be nil for silent operation.
func NewEvaluator(codec Codec, synth *noise.Synthesizer, sink WaveformSink, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Evaluator{codec: codec, synth: synth, sink: sink, logger: logger}
}

// RunTrial performs one encode -> corrupt -> decode round trip and returns
// its verdict. It never returns an error: every codec failure is folded into
// the verdict's outcome so callers can sweep without per-cell error handling.
func (e *Evaluator) RunTrial(message []byte, protocol Protocol, snrDB float64) Verdict {
	verdict := Verdict{Protocol: protocol, SNRLevel: snrDB}

	clean, err := e.codec.Encode(message, protocol)
	if err != nil {
		verdict.Outcome = OutcomeEncodeFailure
		verdict.Err = Wrap(ErrEncode, protocol, "encode", err)
		e.logger.Debug("encode failed",
			logging.String(logging.FieldProtocol, string(protocol)),
			logging.Float64(logging.FieldSNR, snrDB),
			logging.Error(err))
		return verdict
	}

	corrupted := e.synth.AddNoise(clean, snrDB)

	decoded, err := e.codec.Decode(corrupted)
	switch {
	case err != nil:
		verdict.Outcome = OutcomeDecodeFailure
		verdict.Err = Wrap(ErrDecode, protocol, "decode", err)
	case bytes.Equal(decoded, message):
		verdict.Outcome = OutcomeOK
		verdict.Decoded = decoded
	default:
		verdict.Outcome = OutcomeMismatch
		verdict.Decoded = decoded
	}

	e.logger.Debug("trial complete",
		logging.String(logging.FieldProtocol, string(protocol)),
		logging.Float64(logging.FieldSNR, snrDB),
		logging.String("outcome", string(verdict.Outcome)))

	e.persist(verdict, corrupted)
	return verdict
}

// persist fans the corrupted waveform out to the sink. Read-only with respect
// to the verdict: failures are logged and dropped.
func (e *Evaluator) persist(verdict Verdict, waveform []float64) {
	if e.sink == nil {
		return
	}
	if err := e.sink.Persist(verdict, waveform); err != nil {
		e.logger.Warn("waveform persistence failed",
			logging.String(logging.FieldProtocol, string(verdict.Protocol)),
			logging.Float64(logging.FieldSNR, verdict.SNRLevel),
			logging.Error(err))
	}
}
