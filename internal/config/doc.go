// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, STOREFRONT_ environment variables
// and command-line flags. It provides type-safe access to the settings of
// the server, the record stores and the metrics endpoint.
package config
