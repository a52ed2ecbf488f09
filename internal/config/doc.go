// Package config loads the gojwt command line configuration from defaults,
// an optional YAML file and GOJWT_* environment variables, in that order of
// precedence, and validates the result.
package config
