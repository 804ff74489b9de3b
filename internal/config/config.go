package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// StaticDir is the directory served as the web frontend. Static serving
	// is skipped entirely when the directory does not exist.
	StaticDir string `mapstructure:"static_dir"`

	// CORSAllowedOrigins configures the CORS middleware. The practice page
	// is served from the same origin, so the permissive default only matters
	// for external tooling hitting the API directly.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"required,min=1"`
}

// CatalogConfig locates the word data the catalog is built from.
type CatalogConfig struct {
	// DataDir holds one JSON word list per syllable count, named
	// "<count>_syllable.json".
	DataDir string `mapstructure:"data_dir" validate:"required"`
}

// StorageConfig contains the filesystem paths used for session records and
// the word review log.
type StorageConfig struct {
	// PerformanceDir is the root of the date-partitioned session record tree.
	PerformanceDir string `mapstructure:"performance_dir" validate:"required"`

	// ReviewLogPath is the append-only log of words flagged for review.
	ReviewLogPath string `mapstructure:"review_log_path" validate:"required"`
}
