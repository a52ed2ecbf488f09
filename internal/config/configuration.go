package config

import (
	"errors"
	"time"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/rs/zerolog"
)

// ErrConfiguration marks every load or validation failure.
var ErrConfiguration = errors.New("configuration error")

// Output formats for decoded tokens.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Configuration is the resolved gojwt setup.
type Configuration struct {
	Algorithm string        `koanf:"algorithm" validate:"required,oneof=HS256 HS384 HS512"`
	Key       string        `koanf:"key"`
	KeyFile   string        `koanf:"key_file" validate:"excluded_with=Key"`
	Output    string        `koanf:"output" validate:"required,oneof=text json yaml"`
	TTL       time.Duration `koanf:"ttl" validate:"gte=0"`
	UseNumber bool          `koanf:"use_number"`
	Log       LoggingConfig `koanf:"log"`
}

// Default returns the configuration used when neither a file nor the
// environment provides a value.
func Default() Configuration {
	return Configuration{
		Algorithm: goJWT.HS256,
		Output:    OutputText,
		Log: LoggingConfig{
			Format: LogTextFormat,
			Level:  zerolog.WarnLevel,
		},
	}
}
