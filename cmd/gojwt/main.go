// Command gojwt encodes, decodes and inspects HMAC-signed JSON Web Tokens.
package main

import (
	"os"

	"github.com/MrEthical07/goJWT/internal/cli"
)

var version = "dev"

func main() {
	cmd := cli.NewRootCommand(version)

	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
