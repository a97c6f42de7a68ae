// Command trisolve solves 15-hole triangular peg solitaire: it explores
// every reachable configuration from a chosen starting hole, classifies
// each as won or lost, stores the results in an embedded database, and
// answers queries about configurations and their solving sequences.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
