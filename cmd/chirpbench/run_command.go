package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chirpbench/internal/artifacts"
	"chirpbench/internal/logging"
	"chirpbench/internal/modem"
	"chirpbench/internal/noise"
	"chirpbench/internal/report"
	"chirpbench/internal/sweep"
	"chirpbench/internal/trial"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var saveWaveforms bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the noise-resilience sweep and print the summary matrix",
		Long: `Encodes the configured message under every configured protocol, corrupts
each waveform with white Gaussian noise at every configured SNR level,
attempts to decode, and prints a pass/fail matrix plus per-protocol
statistics. The exit status reflects only whether the sweep itself ran;
failed cells are results, not errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			protocols := make([]trial.Protocol, 0, len(cfg.Sweep.Protocols))
			for _, name := range cfg.Sweep.Protocols {
				p, err := modem.ParseProtocol(name)
				if err != nil {
					return err
				}
				protocols = append(protocols, p)
			}

			codec, err := modem.New(cfg.Sweep.Volume)
			if err != nil {
				return err
			}

			var sink trial.WaveformSink
			if cfg.Artifacts.Enabled || saveWaveforms {
				store, err := artifacts.Open(cfg.Artifacts.Dir)
				if err != nil {
					return fmt.Errorf("open artifact store: %w", err)
				}
				defer func() {
					if err := store.Close(); err != nil {
						logger.Warn("close artifact store", logging.Error(err))
					}
				}()
				logger.Info("persisting corrupted waveforms",
					logging.String(logging.FieldRunID, store.RunID()),
					logging.String("dir", store.Dir()))
				sink = store
			}

			evaluator := trial.NewEvaluator(codec, noise.New(), sink, logger)
			matrix, err := sweep.Run(cmd.Context(), sweep.Config{
				Message:       []byte(cfg.Sweep.Message),
				Protocols:     protocols,
				SNRLevels:     cfg.Sweep.SNRLevels,
				TrialsPerCell: cfg.Sweep.TrialsPerCell,
				Workers:       cfg.Sweep.Workers,
			}, evaluator, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Message: %q\n\n", cfg.Sweep.Message)
			printSignalInfo(out, codec, []byte(cfg.Sweep.Message), protocols)

			rep := report.Build(matrix, protocols, cfg.Sweep.SNRLevels)
			printMatrix(out, rep)
			printStats(out, rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&saveWaveforms, "save-waveforms", false, "Write each corrupted waveform to the artifact directory")
	return cmd
}
