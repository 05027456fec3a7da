package config

// Config holds app configuration
type Config struct {
	// DocVersion is the document version tag written into the archive
	// header ("0500", or "0700" for documents carrying bitmaps)
	DocVersion string `mapstructure:"doc_version"`

	// DocName is the document name embedded in the problem wrapper.
	// Empty means the calculator default.
	DocName string `mapstructure:"doc_name"`

	InputFile  string `mapstructure:"input"`
	OutputFile string `mapstructure:"output"`

	DryRun       bool   `mapstructure:"dry_run"`
	LogLevel     string `mapstructure:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir"`
}
