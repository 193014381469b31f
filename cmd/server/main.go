// Package main implements the entry point for the storefront API server,
// a CRUD backend for cars, orders, products and users held in memory.
package main

import "os"

// Build information, set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
