package config

import "github.com/rs/zerolog"

// LogFormat selects the log encoding.
type LogFormat int

const (
	LogTextFormat LogFormat = iota
	LogJSONFormat
)

func (f LogFormat) String() string {
	if f == LogJSONFormat {
		return "json"
	}
	return "text"
}

type LoggingConfig struct {
	Format LogFormat     `koanf:"format,string"`
	Level  zerolog.Level `koanf:"level,string"`
}
