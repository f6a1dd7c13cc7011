package main

import (
	"virtual-interviewer/internal/scoring"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var candidate, ideal string

	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Print recall, precision and F1 of a candidate answer against an ideal answer",
		Example: `  interviewctl score --candidate "I used Python and Django" --ideal "Python Django REST"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scores, err := scoring.ScoreAnswer(candidate, ideal)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), scores)
		},
	}

	cmd.Flags().StringVar(&candidate, "candidate", "", "candidate answer")
	cmd.Flags().StringVar(&ideal, "ideal", "", "ideal answer")
	_ = cmd.MarkFlagRequired("ideal")
	return cmd
}
