// Package main is the entry point for the vbmetrics CLI tool, which imports
// volleyball scout files and computes player/team skill statistics.
package main

import "github.com/vbstats/go-vb-metrics/cmd"

func main() {
	cmd.Execute()
}
