package config

const (
	defaultMessage       = "hello chirpbench"
	defaultTrialsPerCell = 1
	defaultArtifactDir   = "~/.local/share/chirpbench/artifacts"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

func defaultProtocols() []string {
	return []string{"fast", "normal", "robust"}
}

func defaultSNRLevels() []float64 {
	return []float64{40, 30, 20, 15, 10, 5, 0, -5, -10}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Sweep: Sweep{
			Message:       defaultMessage,
			Protocols:     defaultProtocols(),
			SNRLevels:     defaultSNRLevels(),
			TrialsPerCell: defaultTrialsPerCell,
		},
		Artifacts: Artifacts{
			Enabled: false,
			Dir:     defaultArtifactDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
