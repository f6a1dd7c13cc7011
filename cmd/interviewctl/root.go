package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

const appName = "interviewctl"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "interviewctl scores answers, chunks resumes and indexes them without the HTTP server",
		SilenceUsage: true,
	}
	root.AddCommand(newScoreCmd(), newChunkCmd(), newIngestCmd())
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
