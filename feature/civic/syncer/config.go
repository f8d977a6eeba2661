package syncer

// Config holds the settings of sync runs.
type Config struct {
	// DataDir is the root of the record files when Source is fs.
	DataDir string `mapstructure:"data_dir" default:"data"`
	// Source selects where record files are read from: fs or bucket.
	Source string `mapstructure:"source" default:"fs"`
	// BucketPrefix is the key prefix of the record files when Source is bucket.
	BucketPrefix string `mapstructure:"bucket_prefix" default:""`
	// MetadataFile is the local path of the jurisdiction catalog.
	MetadataFile string `mapstructure:"metadata_file" default:"jurisdictions.toml"`
	// SettingsFile is read from the record source root. Empty skips party seeding.
	SettingsFile string `mapstructure:"settings_file" default:"settings.yml"`
	// CacheSize bounds the reference lookup cache.
	CacheSize int `mapstructure:"cache_size" default:"128"`
	// Purge deletes missing entities unless a run overrides it.
	Purge bool `mapstructure:"purge" default:"false"`
	// MetricsFile receives a Prometheus textfile after each run when set.
	MetricsFile string `mapstructure:"metrics_file" default:""`
}

// Record sources.
const (
	SourceFS     = "fs"
	SourceBucket = "bucket"
)

// IsValidSource checks if the configured source is known.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFS, SourceBucket:
		return true
	default:
		return false
	}
}
