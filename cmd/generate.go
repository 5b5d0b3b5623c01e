package main

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/sitegen-cli/internal/batch"
	"github.com/sells-group/sitegen-cli/pkg/anthropic"
)

var (
	generateOut     string
	generateModel   string
	generateVerbose bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <input>...",
	Short: "Generate section documents offline for human review",
	Long:  "Runs the batch content pipeline for one or more inputs (free text, inline JSON, or a file path). Each input yields up to six section files in the output directory. Partial output is reported, not backfilled.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if cfg.Anthropic.Key == "" {
			return eris.New("batch generation requires an API key (SITEGEN_ANTHROPIC_KEY)")
		}

		modelID := generateModel
		if modelID == "" {
			modelID = cfg.Anthropic.Model
		}
		outDir := generateOut
		if outDir == "" {
			outDir = cfg.Batch.OutputDir
		}

		p := batch.New(anthropic.NewClient(cfg.Anthropic.Key), modelID,
			cfg.Anthropic.MaxTokens, cfg.Anthropic.Temperature)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Batch.MaxConcurrent)

		var mu sync.Mutex
		for i, arg := range args {
			dir := outDir
			if len(args) > 1 {
				dir = filepath.Join(outDir, fmt.Sprintf("input-%d", i+1))
			}
			g.Go(func() error {
				report, err := p.Run(gctx, arg, dir)
				if err != nil {
					return err
				}
				if generateVerbose {
					zap.L().Info("batch input processed",
						zap.String("out_dir", dir),
						zap.Strings("files", report.Written),
					)
				}
				mu.Lock()
				cmd.Printf("%d/%d files written to %s\n", len(report.Written), report.Expected, dir)
				mu.Unlock()
				return nil
			})
		}
		return g.Wait()
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output directory (default from config)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "model identifier (default from config)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "log per-file details")
	rootCmd.AddCommand(generateCmd)
}
