package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrEthical07/goJWT/internal/config"
)

// NewHeaderCommand represents "gojwt header".
func NewHeaderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "header [TOKEN|-]",
		Short:   "Print a token's header without verifying it",
		Example: "  gojwt header -o json \"$TOKEN\"",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runHeader,
	}

	addOutputFlag(cmd)

	return cmd
}

func runHeader(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	raw, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	h, err := rt.codec.DecodeHeader(raw)
	if err != nil {
		return err
	}

	if rt.conf.Output == config.OutputText {
		return writeHeaderText(cmd.OutOrStdout(), h)
	}

	return writeStructured(cmd.OutOrStdout(), rt.conf.Output, h.Fields())
}
