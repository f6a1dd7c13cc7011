package main

import (
	"fmt"

	"virtual-interviewer/internal/adapter/extractor"
	"virtual-interviewer/internal/chunker"

	"github.com/spf13/cobra"
)

type chunkOutput struct {
	File     string   `json:"file"`
	Count    int      `json:"count"`
	Chunks   []string `json:"chunks"`
	Verified *bool    `json:"verified,omitempty"`
}

func newChunkCmd() *cobra.Command {
	var (
		file, strategy, licenseKey string
		size, overlap              int
		verify                     bool
	)

	cmd := &cobra.Command{
		Use:     "chunk",
		Short:   "Extract a resume file and print its chunks as JSON",
		Example: `  interviewctl chunk --file cv.pdf --size 500 --overlap 50 --verify`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := chunker.New(strategy, size, overlap)
			if err != nil {
				return err
			}
			ex, err := extractor.New(licenseKey)
			if err != nil {
				return err
			}
			text, err := ex.Extract(cmd.Context(), file)
			if err != nil {
				return err
			}
			chunks, err := c.Split(text)
			if err != nil {
				return err
			}

			out := chunkOutput{File: file, Count: len(chunks), Chunks: chunks}
			if verify {
				if _, ok := c.(chunker.Window); !ok {
					return fmt.Errorf("--verify needs the %s strategy", chunker.StrategyWindow)
				}
				ok := chunker.Reconstruct(chunks, overlap) == text
				out.Verified = &ok
				if !ok {
					_ = writeJSON(cmd.OutOrStdout(), out)
					return fmt.Errorf("chunks of %s do not reconstruct the extracted text", file)
				}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "resume file (.pdf, .docx or .txt)")
	cmd.Flags().IntVar(&size, "size", 1000, "chunk size in characters")
	cmd.Flags().IntVar(&overlap, "overlap", 100, "characters shared by consecutive chunks")
	cmd.Flags().StringVar(&strategy, "strategy", chunker.StrategyWindow, "window or recursive")
	cmd.Flags().BoolVar(&verify, "verify", false, "check that the chunks reassemble into the text")
	cmd.Flags().StringVar(&licenseKey, "unioffice-key", "", "unioffice metered license key")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
