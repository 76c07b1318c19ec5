package artifacts_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/wav"

	"chirpbench/internal/artifacts"
	"chirpbench/internal/dsp"
	"chirpbench/internal/testsupport"
	"chirpbench/internal/trial"
)

func openStore(t *testing.T) *artifacts.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithArtifacts())
	store, err := artifacts.Open(cfg.Artifacts.Dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return store
}

func TestPersistWritesWAVAndManifestRow(t *testing.T) {
	store := openStore(t)
	waveform := dsp.AppendTone(nil, 3000, 0.25, 4800)
	verdict := trial.Verdict{
		Protocol: trial.ProtocolFast,
		SNRLevel: -10,
		Outcome:  trial.OutcomeOK,
		Decoded:  []byte("hello"),
	}

	if err := store.Persist(verdict, waveform); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	entries, err := store.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d manifest rows, want 1", len(entries))
	}
	e := entries[0]
	if e.Protocol != trial.ProtocolFast || e.SNRLevel != -10 || e.Outcome != trial.OutcomeOK {
		t.Fatalf("manifest row mismatch: %+v", e)
	}
	if e.Decoded != "hello" {
		t.Fatalf("decoded: got %q", e.Decoded)
	}
	if !strings.Contains(filepath.Base(e.WAVPath), "OK_fast_snr-10") {
		t.Fatalf("wav name should key by status, protocol and SNR: %s", e.WAVPath)
	}

	f, err := os.Open(e.WAVPath)
	if err != nil {
		t.Fatalf("open wav: %v", err)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("persisted file is not a valid WAV")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("read wav: %v", err)
	}
	if len(buf.Data) != len(waveform) {
		t.Fatalf("wav has %d samples, want %d", len(buf.Data), len(waveform))
	}
	if buf.Format.SampleRate != 48000 || buf.Format.NumChannels != 1 {
		t.Fatalf("wav format: %+v", buf.Format)
	}
}

func TestPersistSequencesRepeatedTrials(t *testing.T) {
	store := openStore(t)
	w := dsp.AppendTone(nil, 3000, 0.25, 480)
	v := trial.Verdict{Protocol: trial.ProtocolRobust, SNRLevel: 0, Outcome: trial.OutcomeDecodeFailure}

	for i := 0; i < 3; i++ {
		if err := store.Persist(v, w); err != nil {
			t.Fatalf("Persist #%d: %v", i, err)
		}
	}

	entries, err := store.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d rows, want 3", len(entries))
	}
	seen := map[int]bool{}
	for _, e := range entries {
		if e.Outcome != trial.OutcomeDecodeFailure {
			t.Fatalf("outcome: %s", e.Outcome)
		}
		if !strings.HasPrefix(filepath.Base(e.WAVPath), "FAIL_") {
			t.Fatalf("failed trial should carry FAIL prefix: %s", e.WAVPath)
		}
		if seen[e.Seq] {
			t.Fatalf("duplicate sequence %d", e.Seq)
		}
		seen[e.Seq] = true
		if _, err := os.Stat(e.WAVPath); err != nil {
			t.Fatalf("wav missing: %v", err)
		}
	}
}

func TestOpenCreatesDistinctRunDirectories(t *testing.T) {
	root := t.TempDir()
	a, err := artifacts.Open(root)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	defer a.Close()
	b, err := artifacts.Open(root)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer b.Close()

	if a.Dir() == b.Dir() {
		t.Fatalf("two runs share a directory: %s", a.Dir())
	}
	if a.RunID() == b.RunID() {
		t.Fatalf("two runs share an id: %s", a.RunID())
	}
}
