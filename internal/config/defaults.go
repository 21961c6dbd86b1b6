package config

const (
	defaultDatabaseDir        = "~/.local/share/stylus"
	defaultLogDir             = "~/.local/share/stylus/logs"
	defaultInsertThreshold    = 0.6
	defaultAutoMergeThreshold = 0.92
	defaultReconcileThreshold = 0.15
	defaultMaxCandidates      = 5
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DatabaseDir: defaultDatabaseDir,
			LogDir:      defaultLogDir,
		},
		Matching: Matching{
			InsertThreshold:    defaultInsertThreshold,
			AutoMergeThreshold: defaultAutoMergeThreshold,
			ReconcileThreshold: defaultReconcileThreshold,
			MaxCandidates:      defaultMaxCandidates,
		},
		Normalize: Normalize{
			FoldDiacritics: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
