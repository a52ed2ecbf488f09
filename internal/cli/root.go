// Package cli implements the gojwt command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/MrEthical07/goJWT/internal/config"
	"github.com/MrEthical07/goJWT/internal/logging"
)

// Flag names shared by several commands.
const (
	flagConfig    = "config"
	flagAlgorithm = "alg"
	flagKey       = "key"
	flagKeyFile   = "key-file"
	flagOutput    = "output"
)

// ErrNoInput is returned when a command needs a token or claims and got
// neither an argument nor stdin data.
var ErrNoInput = errors.New("no input given")

// now is replaced in tests.
var now = time.Now

// NewRootCommand assembles gojwt and its subcommands.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "gojwt",
		Short:         "Encode, decode and inspect HMAC-signed JSON Web Tokens",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP(flagConfig, "c", "", "Path to a YAML configuration file")

	root.AddCommand(
		NewEncodeCommand(),
		NewDecodeCommand(),
		NewHeaderCommand(),
	)

	return root
}

// runtime is what every subcommand needs after flags and configuration are
// resolved.
type runtime struct {
	conf   *config.Configuration
	logger zerolog.Logger
	codec  *goJWT.Codec
}

// newRuntime loads the configuration, lets explicitly set flags override it
// and builds a codec.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)

	conf, err := config.Load(config.WithConfigFile(configPath))
	if err != nil {
		return nil, err
	}

	if err := applyFlagOverrides(cmd, conf); err != nil {
		return nil, err
	}

	logger := logging.NewLogger(conf.Log, cmd.ErrOrStderr())

	codec, err := goJWT.New().
		WithConfig(codecConfig(conf)).
		WithLogger(logger).
		Build()
	if err != nil {
		return nil, err
	}

	return &runtime{conf: conf, logger: logger, codec: codec}, nil
}

func codecConfig(conf *config.Configuration) goJWT.Config {
	cfg := goJWT.DefaultConfig()
	cfg.DefaultAlgorithm = conf.Algorithm
	cfg.Serializer.UseNumber = conf.UseNumber

	return cfg
}

func applyFlagOverrides(cmd *cobra.Command, conf *config.Configuration) error {
	flags := cmd.Flags()

	if f := flags.Lookup(flagAlgorithm); f != nil && f.Changed {
		conf.Algorithm = f.Value.String()
	}

	if f := flags.Lookup(flagKey); f != nil && f.Changed {
		conf.Key = f.Value.String()
		conf.KeyFile = ""
	}

	if f := flags.Lookup(flagKeyFile); f != nil && f.Changed {
		conf.KeyFile = f.Value.String()
		conf.Key = ""
	}

	if f := flags.Lookup(flagOutput); f != nil && f.Changed {
		switch out := f.Value.String(); out {
		case config.OutputText, config.OutputJSON, config.OutputYAML:
			conf.Output = out
		default:
			return fmt.Errorf("%w: unsupported output format %q", config.ErrConfiguration, out)
		}
	}

	return nil
}

// readInput returns args[0] unless it is absent or "-", in which case stdin
// is read. Surrounding whitespace is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}

	in := strings.TrimSpace(string(data))
	if len(in) == 0 {
		return "", ErrNoInput
	}

	return in, nil
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagKey, "", "Shared secret (overrides GOJWT_KEY)")
	cmd.Flags().String(flagKeyFile, "", "File holding the shared secret; one final line ending is removed")
	cmd.MarkFlagsMutuallyExclusive(flagKey, flagKeyFile)
}

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(flagOutput, "o", config.OutputText, "Output format: text, json or yaml")
}
