package server

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// DefaultConfig holds the defaults of HttpConfig, keyed by conf tag.
var DefaultConfig = map[string]any{
	"host": "localhost",
	"port": 8080,
	"h2c":  false,
}
