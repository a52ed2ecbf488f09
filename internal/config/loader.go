package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the prefix of environment overrides, e.g. GOJWT_KEY or
// GOJWT_LOG_LEVEL.
const DefaultEnvPrefix = "GOJWT_"

type opts struct {
	configFile string
	envPrefix  string
}

// Option customizes Load.
type Option func(*opts)

// WithConfigFile reads the given YAML file. An empty path skips the file.
func WithConfigFile(path string) Option {
	return func(o *opts) { o.configFile = path }
}

// WithEnvPrefix overrides DefaultEnvPrefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *opts) { o.envPrefix = prefix }
}

// Load resolves defaults, the optional file and the environment into a
// validated Configuration.
func Load(options ...Option) (*Configuration, error) {
	o := opts{envPrefix: DefaultEnvPrefix}
	for _, opt := range options {
		opt(&o)
	}

	parser := koanf.New(".")

	if err := parser.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to load defaults: %w", ErrConfiguration, err)
	}

	if len(o.configFile) != 0 {
		raw, err := os.ReadFile(o.configFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}

		if err := parser.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: failed to load yaml config from %s: %w", ErrConfiguration, o.configFile, err)
		}
	}

	if err := parser.Load(envProvider(o.envPrefix), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to parse environment variables: %w", ErrConfiguration, err)
	}

	var conf Configuration

	err := parser.UnmarshalWithConf("", &conf, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				logLevelDecodeHookFunc,
				logFormatDecodeHookFunc,
			),
			Metadata:         nil,
			Result:           &conf,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	if err := validate(&conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

// envProvider maps PREFIX_LOG_LEVEL to log.level; a double underscore
// keeps a literal one, so PREFIX_KEY__FILE maps to key_file.
func envProvider(prefix string) *env.Env {
	return env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
			tmp = strings.ReplaceAll(tmp, "_", ".")

			return strings.ReplaceAll(tmp, `\:\`, "_"), val
		},
	})
}

// ReadKey returns the signing key from Key or, when set, the contents of
// KeyFile with one final line ending ("\n" or "\r\n") removed. Text keys
// are used as their UTF-8 bytes.
func (c *Configuration) ReadKey() ([]byte, error) {
	if len(c.KeyFile) != 0 {
		key, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("%w: reading key file: %w", ErrConfiguration, err)
		}
		return trimLineEnding(key), nil
	}

	return []byte(c.Key), nil
}

func trimLineEnding(b []byte) []byte {
	if b, ok := bytes.CutSuffix(b, []byte("\r\n")); ok {
		return b
	}
	b, _ = bytes.CutSuffix(b, []byte("\n"))
	return b
}
