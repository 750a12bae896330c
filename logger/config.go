package logger

// Config defines logging configuration
type Config struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // json or console
	Development bool   `yaml:"development"`

	// Dir and File select a log file; empty File logs to stderr
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

// DefaultConfig logs info and above as console text into logs/sacrifices.log
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Dir:    DefaultDir,
		File:   DefaultFile,
	}
}

// DevelopmentConfig returns development configuration
func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
		Dir:         DefaultDir,
		File:        DefaultFile,
	}
}
