// Command interviewctl runs the scorer, the chunker and resume ingestion from the shell.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
