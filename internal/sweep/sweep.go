package sweep

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"chirpbench/internal/logging"
	"chirpbench/internal/trial"
)

// Config fixes the inputs of one sweep. Message, Protocols and SNRLevels are
// read-only for the duration of the run.
type Config struct {
	Message   []byte
	Protocols []trial.Protocol
	SNRLevels []float64
	// TrialsPerCell repeats each (protocol, SNR) combination; zero means one.
	TrialsPerCell int
	// Workers bounds trial parallelism; zero means GOMAXPROCS.
	Workers int
}

func (c Config) validate() error {
	if len(c.Message) == 0 {
		return trial.Wrap(trial.ErrConfiguration, "", "empty message", nil)
	}
	if len(c.Protocols) == 0 {
		return trial.Wrap(trial.ErrConfiguration, "", "empty protocol list", nil)
	}
	if len(c.SNRLevels) == 0 {
		return trial.Wrap(trial.ErrConfiguration, "", "empty SNR level list", nil)
	}
	return nil
}

func (c Config) trialsPerCell() int {
	if c.TrialsPerCell < 1 {
		return 1
	}
	return c.TrialsPerCell
}

func (c Config) workers() int {
	if c.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

// job describes one trial; it carries everything a worker needs so cells
// share no mutable state.
type job struct {
	key   Key
	index int
}

type result struct {
	key     Key
	verdict trial.Verdict
}

// Run evaluates every (protocol, SNR level) combination TrialsPerCell times
// and returns the completed matrix. Configuration problems abort before any
// trial executes; per-trial failures never do: the evaluator folds them into
// verdicts and the sweep always completes all cells. ctx only gates job
// dispatch; verdicts already produced are always collected.
func Run(ctx context.Context, cfg Config, evaluator *trial.Evaluator, logger *slog.Logger) (*Matrix, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	trials := cfg.trialsPerCell()
	total := len(cfg.Protocols) * len(cfg.SNRLevels) * trials
	logger.Info("sweep started",
		logging.Int("protocols", len(cfg.Protocols)),
		logging.Int("snr_levels", len(cfg.SNRLevels)),
		logging.Int("trials_per_cell", trials),
		logging.Int("workers", cfg.workers()))

	jobs := make(chan job)
	results := make(chan result, total)

	var wg sync.WaitGroup
	for w := 0; w < cfg.workers(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				verdict := evaluator.RunTrial(cfg.Message, j.key.Protocol, j.key.SNRLevel)
				results <- result{key: j.key, verdict: verdict}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, protocol := range cfg.Protocols {
			for _, level := range cfg.SNRLevels {
				for i := 0; i < trials; i++ {
					select {
					case jobs <- job{key: Key{Protocol: protocol, SNRLevel: level}, index: i}:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	matrix := &Matrix{cells: make(map[Key]Cell, len(cfg.Protocols)*len(cfg.SNRLevels))}
	for r := range results {
		matrix.insert(r.key, r.verdict)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("sweep complete", logging.Int("cells", matrix.Len()))
	return matrix, nil
}
