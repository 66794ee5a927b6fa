// Package main provides the ecolite CLI tool for validating and inspecting
// the ECO-lite chess opening catalog.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
