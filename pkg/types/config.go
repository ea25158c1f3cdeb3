package types

// CatalogConfig holds settings for the catalog store.
type CatalogConfig struct {
	// Path is the SQLite database file (default "papers.db").
	Path string `json:"path" yaml:"path"`
}

// LogRotationConfig holds rotation settings for the log file.
type LogRotationConfig struct {
	// MaxSize is the maximum size in megabytes before rotation (default 10).
	MaxSize int `json:"max_size" yaml:"max_size"`

	// MaxBackups is the number of rotated files to retain (default 3).
	MaxBackups int `json:"max_backups" yaml:"max_backups"`

	// MaxAge is the maximum age in days of a rotated file (default 28).
	MaxAge int `json:"max_age" yaml:"max_age"`

	// Compress gzips rotated files.
	Compress bool `json:"compress" yaml:"compress"`
}

// LogConfig holds settings for application logging.
type LogConfig struct {
	// Level is the minimum level emitted: debug, info, warn, or error
	// (default "info").
	Level string `json:"level" yaml:"level"`

	// File is an optional log file path. Empty writes to stderr only.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// Rotation configures rotation of File.
	Rotation LogRotationConfig `json:"rotation" yaml:"rotation"`
}

// Config groups all application configuration.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Log     LogConfig     `json:"log" yaml:"log"`
}
