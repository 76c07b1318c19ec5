package artifacts

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"chirpbench/internal/dsp"
)

// writeWAV stores a float waveform as 16-bit mono PCM at the fixed sample
// rate, clipping to full scale during conversion.
func writeWAV(path string, waveform []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(f, int(dsp.SampleRate), 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(dsp.SampleRate)},
		Data:           make([]int, len(waveform)),
		SourceBitDepth: 16,
	}
	for i, s := range waveform {
		buf.Data[i] = int(dsp.Clip(s) * 32767)
	}

	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
