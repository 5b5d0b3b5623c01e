package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var previewOut string

var previewCmd = &cobra.Command{
	Use:   "preview <record.json>",
	Short: "Generate the merged site configuration without deploying",
	Long:  "Runs normalization, synthesis, and merge for a record file, then writes the full merged configuration as JSON. No workspace is created and nothing is published.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		raw, err := readRecord(args[0])
		if err != nil {
			return err
		}

		env, err := initPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		siteCfg := env.buildConfig(ctx, raw)

		out := cmd.OutOrStdout()
		if previewOut != "" {
			f, err := os.Create(previewOut)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			out = f
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(siteCfg)
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewOut, "out", "", "write the configuration to a file instead of stdout")
	rootCmd.AddCommand(previewCmd)
}
