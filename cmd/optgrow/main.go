// Command optgrow solves the stochastic optimal-growth model from the
// command line: it builds the model from a YAML file and/or flags,
// runs the memoized value-function iteration, optionally derives the
// greedy policy, and renders plots of both.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
