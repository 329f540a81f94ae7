package config

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`
}

// DefaultConfig holds the defaults of Config, keyed by conf tag.
var DefaultConfig = map[string]any{
	"log_level":  "info",
	"log_format": "production",
}
