package artifacts

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"chirpbench/internal/trial"
)

//go:embed schema.sql
var schemaSQL string

// Store writes one run's trial artifacts: WAV files plus a SQLite manifest.
// It implements trial.WaveformSink and is safe for concurrent use by sweep
// workers.
type Store struct {
	runID string
	dir   string
	db    *sql.DB
	lock  *flock.Flock

	mu   sync.Mutex
	seqs map[cellKey]int
}

type cellKey struct {
	protocol trial.Protocol
	snr      float64
}

// Open creates a run-scoped artifact directory under root and initializes
// the manifest database inside it. The directory is flock-guarded so two
// concurrent runs cannot interleave writes into the same run directory.
func Open(root string) (*Store, error) {
	runID := fmt.Sprintf("%s-%s", time.Now().UTC().Format("20060102-150405"), shortID())
	dir := filepath.Join(root, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, ".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock artifact directory: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("artifact directory %s is locked by another run", dir)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "manifest.db"))
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open manifest db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("create manifest schema: %w", err)
	}

	return &Store{runID: runID, dir: dir, db: db, lock: lock, seqs: make(map[cellKey]int)}, nil
}

// RunID returns the identifier of this run's artifact directory.
func (s *Store) RunID() string {
	return s.runID
}

// Dir returns the run-scoped artifact directory.
func (s *Store) Dir() string {
	return s.dir
}

// Close flushes the manifest and releases the directory lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var firstErr error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			firstErr = err
		}
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Persist writes the corrupted waveform of one trial as a WAV file and
// records it in the manifest.
func (s *Store) Persist(verdict trial.Verdict, waveform []float64) error {
	seq := s.nextSeq(verdict.Protocol, verdict.SNRLevel)

	name := fmt.Sprintf("%s_%s_snr%s_t%d.wav",
		statusLabel(verdict), verdict.Protocol, formatSNR(verdict.SNRLevel), seq)
	path := filepath.Join(s.dir, name)
	if err := writeWAV(path, waveform); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}

	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO trial_artifacts (protocol, snr_db, seq, outcome, decoded, wav_path, created_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(verdict.Protocol),
		verdict.SNRLevel,
		seq,
		string(verdict.Outcome),
		nullableString(string(verdict.Decoded)),
		path,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert manifest row: %w", err)
	}
	return nil
}

// Entry is one manifest row.
type Entry struct {
	Protocol trial.Protocol
	SNRLevel float64
	Seq      int
	Outcome  trial.Outcome
	Decoded  string
	WAVPath  string
}

// Entries returns the manifest rows of this run ordered by protocol, SNR and
// trial sequence.
func (s *Store) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT protocol, snr_db, seq, outcome, COALESCE(decoded, ''), wav_path
         FROM trial_artifacts ORDER BY protocol, snr_db DESC, seq`)
	if err != nil {
		return nil, fmt.Errorf("query manifest: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var protocol, outcome string
		if err := rows.Scan(&protocol, &e.SNRLevel, &e.Seq, &outcome, &e.Decoded, &e.WAVPath); err != nil {
			return nil, fmt.Errorf("scan manifest row: %w", err)
		}
		e.Protocol = trial.Protocol(protocol)
		e.Outcome = trial.Outcome(outcome)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) nextSeq(protocol trial.Protocol, snr float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := cellKey{protocol: protocol, snr: snr}
	s.seqs[key]++
	return s.seqs[key]
}

func statusLabel(v trial.Verdict) string {
	if v.Success() {
		return "OK"
	}
	return "FAIL"
}

// formatSNR renders an SNR level for a file name, e.g. 40, -10, 7.5.
func formatSNR(level float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", level), "0"), ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func shortID() string {
	return strings.SplitN(uuid.New().String(), "-", 2)[0]
}
