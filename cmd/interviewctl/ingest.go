package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"virtual-interviewer/internal/app"
	"virtual-interviewer/internal/config"
	"virtual-interviewer/internal/logger"
	"virtual-interviewer/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newIngestCmd() *cobra.Command {
	var (
		file    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Store a resume, index its chunks and print the resume id",
		Long: `Copies the file into the upload directory, records it in the database and
embeds its chunks into the vector store, using the same configuration as the API.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := logger.Initialize(cfg.Logger); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			deps, err := app.Build(ctx, cfg, false)
			if err != nil {
				return err
			}
			defer func() {
				if err := deps.Close(); err != nil {
					logger.Get().Warn("closing resources", zap.Error(err))
				}
			}()

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening %s: %w", file, err)
			}
			defer f.Close()

			resume, err := deps.Resumes.Store(ctx, filepath.Base(file), f)
			if err != nil {
				return err
			}
			res, err := deps.Resumes.Extract(ctx, service.ResumeRef{ResumeID: resume.ID})
			if err != nil {
				return err
			}

			logger.Get().Info("resume ingested",
				zap.String("resume_id", res.ResumeID),
				zap.Int("chunks", res.Chunks))
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"resume_id": res.ResumeID,
				"file_path": resume.FilePath,
				"chunks":    res.Chunks,
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "resume file (.pdf, .docx or .txt)")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall deadline")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
